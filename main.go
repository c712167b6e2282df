package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"notedesk/internal/cli"
	"notedesk/internal/config"
	"notedesk/internal/logs"
	"notedesk/internal/notes/remote"
	"notedesk/internal/notes/service"
	"notedesk/internal/tui"
)

func main() {
	// Parse CLI flags
	apiFlag := flag.String("api-base-url", "", "Note service base URL")
	flag.StringVar(apiFlag, "api", "", "Note service base URL (shorthand)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{APIBaseURL: *apiFlag})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	if err := logs.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid log level %q: %v\n", cfg.LogLevel, err)
	}

	svc := service.NewSyncService(remote.NewHTTPClient(cfg.APIBaseURL, nil))

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		runner := cli.Runner{
			Svc:        svc,
			TimeFormat: cfg.TimeFormat,
			Out:        os.Stdout,
			ErrOut:     os.Stderr,
		}
		exitCode := runner.Run(args)
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Info().Str("api_base_url", cfg.APIBaseURL).Msg("starting app in TUI mode")
	p := tea.NewProgram(tui.NewAppModel(cfg, svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		logs.Close()
		os.Exit(1)
	}
}
