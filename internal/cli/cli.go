package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/modforge/internal/app"
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
	flagSet := flag.NewFlagSet("modforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
modforge - Deferred registration and asset generation for moddable game engines.

Usage:
  modforge [options] [PACK_PATH]

Arguments:
  PACK_PATH
    Path to a content pack directory (pack.yaml plus .hcl content files).

Options:
`)
		flagSet.PrintDefaults()
	}

	packFlag := flagSet.String("pack", "", "Path to the content pack directory.")
	pFlag := flagSet.String("p", "", "Path to the content pack directory (shorthand).")
	outFlag := flagSet.String("out", "generated", "Root directory for generated assets.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	livesyncFlag := flagSet.String("livesync-url", "", "Optional dev server URL to publish results to.")
	livesyncInsecureFlag := flagSet.Bool("livesync-insecure", false, "Skip TLS verification for the dev server connection.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *packFlag != "" {
		path = *packFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
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

	config, err := app.NewConfig(app.Config{
		PackPath:         path,
		OutputDir:        *outFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		LivesyncURL:      *livesyncFlag,
		LivesyncInsecure: *livesyncInsecureFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
