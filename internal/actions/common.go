package actions

import (
	"errors"

	easygiterrors "easygit.dev/easygit/internal/errors"
	"easygit.dev/easygit/internal/git"
	"easygit.dev/easygit/internal/output"
	"easygit.dev/easygit/internal/runtime"
)

// run invokes git with args and reports the outcome: stdout to standard
// output; git's progress on stderr dimmed after a success; the captured
// stderr highlighted after a failure.
func run(ctx *runtime.Context, args ...string) (git.Result, error) {
	result, err := ctx.Runner.Run(ctx, args...)
	ctx.Splog.Out(result.Stdout)
	if err != nil {
		return result, fail(ctx, err)
	}
	if result.Stderr != "" {
		ctx.Splog.Stderr(output.ColorDim(result.Stderr))
	}
	return result, nil
}

// fail prints err as highlighted text and returns it unchanged
func fail(ctx *runtime.Context, err error) error {
	var gitErr *easygiterrors.GitCommandError
	if errors.As(err, &gitErr) && gitErr.Stderr != "" {
		ctx.Splog.Error(output.ColorError(gitErr.Stderr))
		return err
	}
	ctx.Splog.Error(output.ColorError(err.Error()))
	return err
}

// requireCurrentBranch asks git for the checked-out branch and fails on a detached HEAD
func requireCurrentBranch(ctx *runtime.Context) (string, error) {
	branch, err := ctx.CurrentBranch()
	if err != nil {
		return "", fail(ctx, err)
	}
	if branch == "" {
		return "", easygiterrors.ErrNotOnBranch
	}
	return branch, nil
}
