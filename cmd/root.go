// Package cmd implements the CLI command structure for projman.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/nibzard/projman/internal/config"
	"github.com/nibzard/projman/internal/logging"
	"github.com/nibzard/projman/internal/store"
	"github.com/nibzard/projman/internal/tracker"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ErrUsage is wrapped by errors caused by malformed invocations.
var ErrUsage = errors.New("usage error")

// Exit codes
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUsage       = 2
	ExitNotFound    = 3
	ExitInterrupted = 130
)

// command is one entry of the command table.
type command struct {
	name    string
	params  []string
	flags   string // extra usage text for command-specific flags
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

func (c command) usage() string {
	parts := []string{c.name}
	if c.flags != "" {
		parts = append(parts, c.flags)
	}
	for _, p := range c.params {
		parts = append(parts, "<"+p+">")
	}
	return strings.Join(parts, " ")
}

// env carries everything a command handler needs.
type env struct {
	cfg    *config.ConfigWithSources
	store  *store.Store
	logger *log.Logger
	out    io.Writer
	errOut io.Writer
}

// commands builds the command table.
func commands() []command {
	return []command{
		{name: "create_user", params: []string{"name"}, summary: "Create a new user", run: createUserCommand},
		{name: "list_users", summary: "List all users", run: listUsersCommand},
		{name: "add_project", params: []string{"user", "project"}, summary: "Add a project to a user", run: addProjectCommand},
		{name: "list_projects", params: []string{"user"}, summary: "List projects for a user", run: listProjectsCommand},
		{name: "add_task", params: []string{"project", "task"}, flags: "[-user name]", summary: "Add a task to a project", run: addTaskCommand},
		{name: "list_tasks", params: []string{"project"}, summary: "List tasks of a project", run: listTasksCommand},
		{name: "complete_task", params: []string{"task"}, summary: "Mark a task as complete", run: completeTaskCommand},
		{name: "tui", summary: "Browse users, projects and tasks in a terminal UI", run: tuiCommand},
		{name: "doctor", flags: "[-example]", summary: "Check configuration and data file validity", run: doctorCommand},
		{name: "version", summary: "Show version information", run: versionCommand},
		{name: "help", summary: "Show this help message"},
	}
}

// Run executes the projman CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	table := commands()

	// Create a flag set for global options
	fs := flag.NewFlagSet("projman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(stderr, fs, table)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, config.ErrInvalidFlag) {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(stdout, fs, table)
		return nil
	}
	if *showVersion {
		fmt.Fprintf(stdout, "projman version %s\n", Version)
		return nil
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(stdout, fs, table)
		return nil
	}

	name := remaining[0]
	var selected *command
	for i := range table {
		if table[i].name == name {
			selected = &table[i]
			break
		}
	}
	if selected == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n", name)
		printUsage(stderr, fs, table)
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, name)
	}
	if selected.run == nil {
		printUsage(stdout, fs, table)
		return nil
	}

	cfg := cws.Config
	logger := logging.NewFromConfig(stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	for _, w := range cws.Warnings {
		logger.Warn(w)
	}
	logger.Debug("running command", "command", name, "data_file", cfg.DataFile)

	if err := ctx.Err(); err != nil {
		return err
	}

	e := &env{
		cfg:    cws,
		store:  store.New(cfg.DataFile, store.WithLogger(logger)),
		logger: logger,
		out:    stdout,
		errOut: stderr,
	}
	return selected.run(ctx, e, remaining[1:])
}

// parseArgs parses command-specific flags registered on fs and checks the
// number of positional arguments against c.params.
func (e *env) parseArgs(c command, fs *flag.FlagSet, args []string) ([]string, error) {
	if fs == nil {
		fs = flag.NewFlagSet(c.name, flag.ContinueOnError)
	}
	fs.SetOutput(e.errOut)
	fs.Usage = func() {
		fmt.Fprintf(e.errOut, "Usage: projman %s\n", c.usage())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUsage, c.name, err)
	}

	rest := fs.Args()
	if len(rest) != len(c.params) {
		fmt.Fprintf(e.errOut, "Usage: projman %s\n", c.usage())
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrUsage, c.name, len(c.params), len(rest))
	}
	return rest, nil
}

// notFound prints a not-found notice. In strict mode the lookup error is
// returned so the command fails.
func (e *env) notFound(err error, format string, args ...any) error {
	fmt.Fprintf(e.out, format+"\n", args...)
	e.logger.Debug("lookup failed", "err", err)
	if e.cfg.Config.Strict {
		return err
	}
	return nil
}

// lookupCommand returns the command table entry named name.
func lookupCommand(name string) command {
	for _, c := range commands() {
		if c.name == name {
			return c
		}
	}
	panic("cmd: unknown command " + name)
}

// ExitCode maps an error returned by Run to a process exit status.
func ExitCode(ctx context.Context, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case ctx != nil && ctx.Err() != nil:
		return ExitInterrupted
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, tracker.ErrNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}

// versionCommand prints version information.
func versionCommand(_ context.Context, e *env, args []string) error {
	if _, err := e.parseArgs(lookupCommand("version"), nil, args); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "projman version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer, fs *flag.FlagSet, table []command) {
	fmt.Fprintln(w, "projman - track users, their projects, and tasks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  projman [options] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range table {
		fmt.Fprintf(tw, "  %s\t%s\n", c.usage(), c.summary)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
