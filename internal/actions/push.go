package actions

import (
	"easygit.dev/easygit/internal/runtime"
)

// PushOptions specifies options for the push command
type PushOptions struct {
	Remote string // Optional: defaults to the configured default remote
}

// PushArgs returns the argument vector that pushes branch to remote.
// setUpstream adds -u so git records the remote as the branch's upstream.
func PushArgs(remote, branch string, setUpstream bool) []string {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "-u")
	}
	return append(args, remote, branch)
}

// PushAction pushes the current branch, tracking the remote only when the
// branch has no upstream recorded in the repository configuration
func PushAction(ctx *runtime.Context, opts PushOptions) error {
	branch, err := requireCurrentBranch(ctx)
	if err != nil {
		return err
	}

	cfg, err := ctx.Configuration()
	if err != nil {
		return err
	}

	remote := ctx.DefaultRemote(opts.Remote)
	setUpstream := !cfg.HasUpstream(branch)
	if setUpstream {
		ctx.Splog.Debug("%s has no upstream, pushing with -u", branch)
	}

	_, err = run(ctx, PushArgs(remote, branch, setUpstream)...)
	return err
}
