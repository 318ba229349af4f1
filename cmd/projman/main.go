// Command projman is the CLI entrypoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nibzard/projman/cmd"
)

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Run the CLI
	err := cmd.Run(ctx, os.Args[1:])
	code := cmd.ExitCode(ctx, err)
	switch code {
	case cmd.ExitOK:
		return
	case cmd.ExitInterrupted:
		fmt.Fprintf(os.Stderr, "\nInterrupted\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	cancel()
	os.Exit(code)
}
