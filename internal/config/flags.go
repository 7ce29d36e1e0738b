package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-title form title
//	-log-level log level (debug, info, warn, error)
//	-log-file log file path
//	-number-kind number kind of the numeric validator (int8 ... float64)
//	-radix radix used to parse integer kinds
//	-field-width width of single-line inputs
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var title string
	var logLevel, logFile string
	var numberKind string
	var radix int
	var fieldWidth int
	var jsonConfigPath string

	fs := flag.NewFlagSet("formdemo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&title, "title", "", "Form title")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&numberKind, "number-kind", "", "Number kind (int8, int16, int32, int64, float32, float64)")
	fs.IntVar(&radix, "radix", 0, "Radix of integer kinds (2..36)")
	fs.IntVar(&fieldWidth, "field-width", 0, "Width of single-line inputs")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Title: title,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Numeric: Numeric{
			Kind:  numberKind,
			Radix: radix,
		},
		UI: UI{
			FieldWidth: fieldWidth,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
