// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/git"
	"easygit.dev/easygit/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	return fn(ctx)
}

// CompleteBranches is a helper for cobra.ValidArgsFunction that returns the
// local branch names of the repository the command runs in.
func CompleteBranches(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	dir := ""
	if ctx, err := runtime.GetContext(cmd.Context()); err == nil {
		dir = ctx.WorkDir
	}
	branches, err := git.ListBranches(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}

// CompleteRemotes returns the remote names declared in the repository configuration
func CompleteRemotes(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	cfg, err := ctx.Configuration()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(cfg.Remotes))
	for _, r := range cfg.Remotes {
		names = append(names, r.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
