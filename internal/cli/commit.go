package cli

import (
	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/cli/common"
	"easygit.dev/easygit/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var amend bool

	cmd := &cobra.Command{
		Use:     "commit [message...]",
		Aliases: []string{"save"},
		Short:   "Commit staged changes",
		Long: `Commit staged changes.

The message words are joined with spaces, so quoting is optional:

  easygit commit fix the login redirect

Without a message easygit asks for one, or with --ammend keeps the previous message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CommitAction(ctx, actions.CommitOptions{
					Message:  args,
					Amend:    amend,
					Prompter: actions.NewTerminalPrompter(),
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&amend, "ammend", "a", false, "Amend the previous commit")
	cmd.Flags().BoolVar(&amend, "amend", false, "Amend the previous commit")
	_ = cmd.Flags().MarkHidden("amend")

	return cmd
}
