package actions

import (
	"easygit.dev/easygit/internal/runtime"
)

// InitArgs returns the argument vector that creates a repository
func InitArgs() []string {
	return []string{"init"}
}

// InitAction initializes a new git repository in the working directory
func InitAction(ctx *runtime.Context) error {
	_, err := run(ctx, InitArgs()...)
	return err
}
