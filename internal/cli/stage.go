package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newStageCmd creates the stage command
func newStageCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stage [paths...]",
		Aliases: []string{"add"},
		Short:   "Stage files for the next commit",
		Long: `Stage files for the next commit.

Without paths, every modified or untracked file is staged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.StageAction(ctx, actions.StageOptions{Paths: args})
			})
		},
	}
}
