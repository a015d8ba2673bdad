package actions

import (
	"fmt"

	easygiterrors "easygit.dev/easygit/internal/errors"
	"easygit.dev/easygit/internal/git"
	"easygit.dev/easygit/internal/output"
	"easygit.dev/easygit/internal/runtime"
)

// CheckoutOptions specifies options for the checkout command
type CheckoutOptions struct {
	Name     string   // Optional: branch to checkout directly
	Prompter Prompter // Used to pick a branch when Name is empty
}

// CheckoutArgs returns the argument vector that switches to name
func CheckoutArgs(name string) []string {
	return []string{"checkout", name}
}

// CheckoutAction switches the working tree to a branch
func CheckoutAction(ctx *runtime.Context, opts CheckoutOptions) error {
	name := opts.Name
	if name == "" {
		var err error
		name, err = selectBranch(ctx, opts.Prompter)
		if err != nil {
			return err
		}
	}

	if _, err := run(ctx, CheckoutArgs(name)...); err != nil {
		return err
	}
	ctx.Splog.Debug("checked out %s", output.ColorBranchName(name, false))
	return nil
}

func selectBranch(ctx *runtime.Context, prompter Prompter) (string, error) {
	if !ctx.Interactive || prompter == nil {
		return "", fmt.Errorf("%w: %w", easygiterrors.ErrBranchRequired, easygiterrors.ErrInteractiveDisabled)
	}

	names := LocalBranchNames(ctx)
	if len(names) == 0 {
		return "", easygiterrors.ErrBranchRequired
	}

	current, _ := ctx.CurrentBranch()
	return prompter.Select("Checkout a branch:", names, current)
}

// LocalBranchNames lists the branches of the repository. When the refs cannot
// be read it falls back to the branch sections of the repository configuration.
func LocalBranchNames(ctx *runtime.Context) []string {
	names, err := git.ListBranches(ctx.WorkDir)
	if err == nil && len(names) > 0 {
		return names
	}
	if err != nil {
		ctx.Splog.Debug("listing branches: %v", err)
	}

	cfg, err := ctx.Configuration()
	if err != nil {
		return nil
	}
	names = make([]string, 0, len(cfg.Branches))
	for _, b := range cfg.Branches {
		names = append(names, b.Name)
	}
	return names
}
