package config

import (
	"errors"
	"flag"
	"fmt"
)

// ErrInvalidFlag wraps errors caused by malformed command-line flags.
var ErrInvalidFlag = errors.New("invalid flag")

// parseFlags defines the global flags on fs, parses args, and records
// every explicitly set flag as a flag-sourced value.
func parseFlags(cws *ConfigWithSources, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("projman", flag.ContinueOnError)
	}
	cfg := cws.Config

	fs.StringVar(&cfg.DataFile, "data", cfg.DataFile, "Path to data file")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Exit with status 3 when a user, project or task is not found")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFlag, err)
	}

	// Map flag names to source field names
	flagToSource := map[string]string{
		"data":           "data_file",
		"strict":         "strict",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
	}
	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagToSource[f.Name]; ok {
			cws.Sources[field] = SourceFlag
		}
	})

	return nil
}
