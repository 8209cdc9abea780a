package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/bomres/internal/app"
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

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("bomres", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
bomres - resolves a flattened BOM export into system components and
cumulative usage.

Usage:
  bomres [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to a BOM export: .csv, .csv.gz, .xlsx, a .zip archive
    containing one, or a directory to scan.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the BOM export file or directory.")
	iFlag := flagSet.String("i", "", "Path to the BOM export file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to the HCL resolver configuration file.")
	patternFlag := flagSet.String("pattern", "", "Primary termination prefixes, pipe-delimited. Overrides the configuration file.")
	sheetFlag := flagSet.String("sheet", "", "Workbook sheet name. Defaults to the first sheet.")
	outputFlag := flagSet.String("output", "", "Path for the resolved CSV. Defaults to stdout.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", path)

	if path == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:  path,
		ConfigPath: *configFlag,
		Pattern:    *patternFlag,
		Sheet:      *sheetFlag,
		OutputPath: *outputFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
