package cli

import (
	"fmt"
	"io"

	"notedesk/internal/notes/service"
)

// Runner executes CLI commands against a note service, writing to out and errOut.
type Runner struct {
	Svc        service.SyncService
	TimeFormat string
	Out        io.Writer
	ErrOut     io.Writer
}

// Run executes the CLI with the given arguments.
// The first argument should be the namespace ("note" or "help").
func (r Runner) Run(args []string) int {
	if len(args) == 0 {
		r.printUsage()
		return 1
	}

	namespace := args[0]
	subArgs := args[1:]

	switch namespace {
	case "note", "notes", "n":
		return r.runNoteCommand(subArgs)
	case "help", "-h", "--help":
		r.printUsage()
		return 0
	default:
		fmt.Fprintf(r.ErrOut, "Unknown command: %s\n", namespace)
		r.printUsage()
		return 1
	}
}

func (r Runner) runNoteCommand(args []string) int {
	if len(args) == 0 {
		r.printNoteUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return r.runAdd(cmdArgs)
	case "list", "ls", "l":
		return r.runList(cmdArgs)
	case "help", "-h", "--help":
		r.printNoteUsage()
		return 0
	default:
		fmt.Fprintf(r.ErrOut, "Unknown note command: %s\n", command)
		r.printNoteUsage()
		return 1
	}
}

func (r Runner) printUsage() {
	fmt.Fprintln(r.Out, `notedesk - Terminal client for a remote note service

Usage: notedesk [flags] [command] [arguments]

Commands:
  note        Note commands (list, add)

Flags:
  -api, --api-base-url <url>   Note service base URL

Running notedesk without arguments launches the interactive TUI.
Use "notedesk note help" for note subcommands.`)
}

func (r Runner) printNoteUsage() {
	fmt.Fprintln(r.Out, `notedesk note - Note commands

Usage: notedesk note <command> [arguments]

Commands:
  list, ls, l List all notes in server order
              notedesk note list

  add, a      Add a new note
              notedesk note add "Remember to water the plants"

  help        Show this help message`)
}
