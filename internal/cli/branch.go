package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	var checkout bool

	cmd := &cobra.Command{
		Use:               "branch <name>",
		Short:             "Create a branch at the current commit",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.BranchAction(ctx, actions.BranchOptions{Name: args[0], Checkout: checkout})
			})
		},
	}

	cmd.Flags().BoolVarP(&checkout, "checkout", "c", false, "Switch to the new branch")

	return cmd
}
