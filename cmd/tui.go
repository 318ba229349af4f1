package cmd

import (
	"context"

	"github.com/nibzard/projman/internal/ui"
)

// tuiCommand opens the read-only terminal browser.
func tuiCommand(ctx context.Context, e *env, args []string) error {
	if _, err := e.parseArgs(lookupCommand("tui"), nil, args); err != nil {
		return err
	}
	return ui.RunTUI(ctx, e.store)
}
