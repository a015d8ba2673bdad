package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"show-config"},
		Short:   "Show the remotes and branches easygit found in .git/config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ShowConfigAction(ctx, actions.ShowConfigOptions{YAML: asYAML})
			})
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print as YAML")

	return cmd
}
