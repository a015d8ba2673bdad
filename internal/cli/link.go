package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newLinkCmd creates the link command
func newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <url> [name]",
		Short: "Register a remote repository",
		Long: `Register a remote repository.

The remote is named after the default remote (origin) unless a name is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.LinkOptions{URL: args[0]}
			if len(args) > 1 {
				opts.Name = args[1]
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.LinkAction(ctx, opts)
			})
		},
	}
}
