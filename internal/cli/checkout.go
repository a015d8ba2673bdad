package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout [branch]",
		Short: "Switch to a branch. If no branch is provided, opens an interactive selector.",
		Long: `Switch to a branch. If no branch is provided, opens an interactive selector.

The selector lists local branches with the current one preselected.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.CheckoutOptions{Prompter: actions.NewTerminalPrompter()}
			if len(args) > 0 {
				opts.Name = args[0]
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CheckoutAction(ctx, opts)
			})
		},
	}
}
