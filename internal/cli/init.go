package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "init",
		Short:       "Create an empty git repository in the current directory",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoRepository: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.InitAction(ctx)
			})
		},
	}
}
