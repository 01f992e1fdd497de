package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("beamgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
beamgrid - energize a grid of mirrors and splitters.

Usage:
  beamgrid [options] [GRID_PATH]

Arguments:
  GRID_PATH
    Text file with one grid row per line using . / \ | -
    Reads stdin when omitted.

Output:
  Two lines: cells energized from the start beam, then the best count
  over every boundary entry.

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", runtime.GOMAXPROCS(0), "Number of concurrent workers for the entry-point search.")
	rowFlag := flagSet.Int("row", 0, "Start row of the single-entry beam.")
	colFlag := flagSet.Int("col", 0, "Start column of the single-entry beam.")
	dirFlag := flagSet.String("dir", "Right", "Start direction: Up, Right, Down, Left (or U, R, D, L).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one GRID_PATH, got %d", flagSet.NArg())}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	dir, err := beam.ParseDirection(*dirFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid dir: must be Up, Right, Down or Left"}
	}

	config, err := app.NewConfig(app.Config{
		InputPath: flagSet.Arg(0),
		LogFormat: logFormat,
		LogLevel:  logLevel,
		Workers:   *workersFlag,
		Start:     beam.New(*rowFlag, *colFlag, dir),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
