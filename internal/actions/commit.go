package actions

import (
	"fmt"
	"strings"

	easygiterrors "easygit.dev/easygit/internal/errors"
	"easygit.dev/easygit/internal/runtime"
)

// CommitOptions specifies options for the commit command
type CommitOptions struct {
	// Message words are joined with single spaces into one commit message
	Message []string
	Amend   bool
	// Prompter asks for a message when none is given in an interactive session
	Prompter Prompter
}

// CommitArgs returns the argument vector that records a commit. The message
// is passed as one argument so git never sees shell quoting. An empty message
// with amend keeps the existing one.
func CommitArgs(message string, amend bool) []string {
	args := []string{"commit"}
	if amend {
		args = append(args, "--amend")
		if message == "" {
			return append(args, "--no-edit")
		}
	}
	return append(args, "-m", message)
}

// CommitAction records the staged changes
func CommitAction(ctx *runtime.Context, opts CommitOptions) error {
	message := strings.TrimSpace(strings.Join(opts.Message, " "))

	if message == "" && !opts.Amend {
		var err error
		message, err = promptCommitMessage(ctx, opts.Prompter)
		if err != nil {
			return err
		}
	}

	_, err := run(ctx, CommitArgs(message, opts.Amend)...)
	return err
}

func promptCommitMessage(ctx *runtime.Context, prompter Prompter) (string, error) {
	if !ctx.Interactive || prompter == nil {
		return "", fmt.Errorf("%w: %w", easygiterrors.ErrEmptyCommitMessage, easygiterrors.ErrInteractiveDisabled)
	}
	message, err := prompter.Text("Commit message:", "")
	if err != nil {
		return "", err
	}
	if message == "" {
		return "", easygiterrors.ErrEmptyCommitMessage
	}
	return message, nil
}
