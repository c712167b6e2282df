package logs

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const logFileName = "debug.log"

var (
	Logger  zerolog.Logger
	logFile *os.File
	mu      sync.Mutex
)

// The TUI owns stdout, so until Initialize is called everything is discarded.
func init() {
	Logger = newLogger(io.Discard)
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("app", "notedesk").Caller().Logger()
}

// Initialize points the logger at <logDir>/debug.log.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, logFileName)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Logger.Error().Err(err).Str("path", logPath).Msg("failed to open log file")
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = newLogger(f)

	Logger.Info().Str("path", logPath).Msg("logger initialized")

	return nil
}

// SetLevel parses a zerolog level name ("debug", "info", ...) and applies it globally.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger = newLogger(io.Discard)
		return err
	}
	return nil
}
