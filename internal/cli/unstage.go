package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newUnstageCmd creates the unstage command
func newUnstageCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unstage [paths...]",
		Aliases: []string{"remove", "rm"},
		Short:   "Remove files from the staging area, keeping their changes",
		Long: `Remove files from the staging area, keeping their changes.

Without paths, everything staged is unstaged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.UnstageAction(ctx, actions.UnstageOptions{Paths: args})
			})
		},
	}
}
