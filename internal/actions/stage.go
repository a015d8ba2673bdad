package actions

import (
	"easygit.dev/easygit/internal/git"
	"easygit.dev/easygit/internal/runtime"
)

// StageOptions specifies options for the stage command
type StageOptions struct {
	Paths []string // Empty means every file with unstaged or untracked changes
}

// StageArgs returns the argument vector that stages paths
func StageArgs(paths []string) []string {
	return append([]string{"add"}, paths...)
}

// StageAction stages the given paths, or everything unstaged when no paths are given
func StageAction(ctx *runtime.Context, opts StageOptions) error {
	paths := opts.Paths
	if len(paths) == 0 {
		unstaged, err := git.UnstagedFiles(ctx, ctx.Runner)
		if err != nil {
			return fail(ctx, err)
		}
		if len(unstaged) == 0 {
			ctx.Splog.Info("Nothing to stage.")
			return nil
		}
		// status paths are relative to the repository root, not to WorkDir
		paths = make([]string, 0, len(unstaged))
		for _, path := range unstaged {
			paths = append(paths, git.RootPathspec(path))
		}
	}

	if _, err := run(ctx, StageArgs(paths)...); err != nil {
		return err
	}

	for _, path := range paths {
		ctx.Splog.Debug("staged %s", path)
	}
	return nil
}
