package actions

import (
	"easygit.dev/easygit/internal/output"
	"easygit.dev/easygit/internal/runtime"
)

// BranchOptions specifies options for the branch command
type BranchOptions struct {
	Name     string
	Checkout bool // Switch to the new branch after creating it
}

// BranchArgs returns the argument vector that creates a branch. With checkout
// the branch is created and switched to in one step.
func BranchArgs(name string, checkout bool) []string {
	if checkout {
		return []string{"checkout", "-b", name}
	}
	return []string{"branch", name}
}

// BranchAction creates a branch at HEAD
func BranchAction(ctx *runtime.Context, opts BranchOptions) error {
	if _, err := run(ctx, BranchArgs(opts.Name, opts.Checkout)...); err != nil {
		return err
	}
	if opts.Checkout {
		ctx.Splog.Info("Created and checked out %s.", output.ColorBranchName(opts.Name, true))
	} else {
		ctx.Splog.Info("Created %s.", output.ColorBranchName(opts.Name, false))
	}
	return nil
}
