package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push [remote]",
		Short: "Push the current branch",
		Long: `Push the current branch.

The first push of a branch sets the remote as its upstream.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteRemotes,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.PushOptions{}
			if len(args) > 0 {
				opts.Remote = args[0]
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.PushAction(ctx, opts)
			})
		},
	}
}
