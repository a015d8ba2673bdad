package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull [remote]",
		Short: "Pull the current branch",
		Long: `Pull the current branch.

Without a remote, the branch's upstream is used, falling back to the default remote.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteRemotes,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.PullOptions{}
			if len(args) > 0 {
				opts.Remote = args[0]
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.PullAction(ctx, opts)
			})
		},
	}
}
