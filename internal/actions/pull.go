package actions

import (
	"easygit.dev/easygit/internal/runtime"
)

// PullOptions specifies options for the pull command
type PullOptions struct {
	Remote string // Optional: defaults to the branch's upstream, then the default remote
}

// PullArgs returns the argument vector that pulls branch from remote
func PullArgs(remote, branch string) []string {
	return []string{"pull", remote, branch}
}

// PullAction pulls the current branch
func PullAction(ctx *runtime.Context, opts PullOptions) error {
	branch, err := requireCurrentBranch(ctx)
	if err != nil {
		return err
	}

	remote := opts.Remote
	if remote == "" {
		cfg, err := ctx.Configuration()
		if err != nil {
			return err
		}
		if b, ok := cfg.Branch(branch); ok {
			remote = b.Remote
		}
	}

	_, err = run(ctx, PullArgs(ctx.DefaultRemote(remote), branch)...)
	return err
}
