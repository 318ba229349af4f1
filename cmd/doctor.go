package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/nibzard/projman/internal/config"
)

// errDoctorFailed is returned when any doctor check fails.
var errDoctorFailed = errors.New("doctor checks failed")

// doctorCommand reports where configuration came from and checks the data
// file against the bundled schema.
func doctorCommand(_ context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example projman.toml and exit")
	if _, err := e.parseArgs(lookupCommand("doctor"), fs, args); err != nil {
		return err
	}
	if *example {
		fmt.Fprint(e.out, config.ExampleConfig())
		return nil
	}
	cfg := e.cfg.Config

	fmt.Fprintln(e.out, "Projman Doctor")
	fmt.Fprintln(e.out, "==============")
	fmt.Fprintln(e.out)

	fmt.Fprintln(e.out, "Config:")
	if len(e.cfg.Files) == 0 {
		fmt.Fprintln(e.out, "  Files: none (using defaults)")
	}
	for _, f := range e.cfg.Files {
		fmt.Fprintf(e.out, "  File: %s\n", f)
	}
	if active := e.cfg.GetConfigFile(); active != "" {
		fmt.Fprintf(e.out, "  Active: %s\n", active)
	}
	printSetting(e, "data_file", cfg.DataFile)
	printSetting(e, "strict", cfg.Strict)
	printSetting(e, "log_level", cfg.LogLevel)
	printSetting(e, "log_format", cfg.LogFormat)
	for _, w := range e.cfg.Warnings {
		fmt.Fprintf(e.out, "  ⚠️  %s\n", w)
	}
	fmt.Fprintln(e.out)

	fmt.Fprintf(e.out, "Data file: %s\n", e.store.Path())
	result, err := e.store.Validate()
	if err != nil {
		fmt.Fprintf(e.out, "  ❌ Error: %v\n", err)
		return errors.Join(errDoctorFailed, err)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(e.out, "  ⚠️  %s\n", w)
	}
	if !result.Valid {
		for _, verr := range result.Errors {
			fmt.Fprintf(e.out, "  ❌ %v\n", verr)
		}
		return errDoctorFailed
	}
	if result.Exists {
		users, err := e.store.Load()
		if err != nil {
			fmt.Fprintf(e.out, "  ❌ Error: %v\n", err)
			return errors.Join(errDoctorFailed, err)
		}
		var projects, tasks int
		for _, u := range users {
			projects += len(u.Projects)
			for _, p := range u.Projects {
				tasks += len(p.Tasks)
			}
		}
		fmt.Fprintf(e.out, "  ✅ OK (%d users, %d projects, %d tasks)\n", len(users), projects, tasks)
	}

	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, "All checks passed.")
	return nil
}

func printSetting(e *env, name string, value any) {
	source := e.cfg.Sources[name]
	if source == "" {
		source = config.SourceDefault
	}
	fmt.Fprintf(e.out, "  %s = %v (%s)\n", name, value, source)
}
