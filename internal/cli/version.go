package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show easygit version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoRepository: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "easygit %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
