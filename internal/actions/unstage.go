package actions

import (
	"easygit.dev/easygit/internal/runtime"
)

// UnstageOptions specifies options for the unstage command
type UnstageOptions struct {
	Paths []string
}

// UnstageArgs returns the argument vector that unstages paths
func UnstageArgs(paths []string) []string {
	return append([]string{"reset"}, paths...)
}

// UnstageAction removes the given paths from the index, keeping working tree changes
func UnstageAction(ctx *runtime.Context, opts UnstageOptions) error {
	_, err := run(ctx, UnstageArgs(opts.Paths)...)
	return err
}
