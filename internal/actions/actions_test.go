package actions_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"easygit.dev/easygit/internal/actions"
	"easygit.dev/easygit/internal/config"
	easygiterrors "easygit.dev/easygit/internal/errors"
	"easygit.dev/easygit/internal/gitconfig"
	"easygit.dev/easygit/internal/output"
	"easygit.dev/easygit/internal/runtime"
	"easygit.dev/easygit/testhelpers"
)

func TestInitAction(t *testing.T) {
	t.Run("prints git output", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().
			On(testhelpers.FakeResponse{Stdout: "Initialized empty Git repository"}, "init")
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.InitAction(env.Ctx))
		require.Equal(t, [][]string{{"init"}}, runner.Invocations())
		require.Equal(t, "Initialized empty Git repository\n", env.Out.String())
	})

	t.Run("reports a missing git executable", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().
			On(testhelpers.FakeResponse{SpawnErr: errors.New("executable file not found")}, "init")
		env := newTestEnv(t, runner, "")

		err := actions.InitAction(env.Ctx)
		require.ErrorIs(t, err, easygiterrors.ErrSpawn)
		require.Equal(t, easygiterrors.ExitSpawnError, easygiterrors.ExitCode(err))
		require.Contains(t, env.Err.String(), "executable file not found")
	})
}

func TestStageAction(t *testing.T) {
	t.Run("stages the given paths", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.StageAction(env.Ctx, actions.StageOptions{Paths: []string{"a.go", "docs/b.md"}}))
		require.Equal(t, [][]string{{"add", "a.go", "docs/b.md"}}, runner.Invocations())
	})

	t.Run("stages everything unstaged when no paths are given", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().
			On(testhelpers.FakeResponse{Stdout: " M a.go\x00?? new.txt\x00M  staged.go\x00"}, "status", "--porcelain", "-z")
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.StageAction(env.Ctx, actions.StageOptions{}))
		require.Equal(t, [][]string{
			{"status", "--porcelain", "-z"},
			{"add", ":(top,literal)a.go", ":(top,literal)new.txt"},
		}, runner.Invocations())
	})

	t.Run("does nothing when the tree is clean", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.StageAction(env.Ctx, actions.StageOptions{}))
		require.Equal(t, [][]string{{"status", "--porcelain", "-z"}}, runner.Invocations())
		require.Equal(t, "Nothing to stage.\n", env.Out.String())
	})

	t.Run("propagates a failing status query", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().
			On(testhelpers.FakeResponse{Stderr: "fatal: not a git repository", ExitCode: 128}, "status", "--porcelain", "-z")
		env := newTestEnv(t, runner, "")

		err := actions.StageAction(env.Ctx, actions.StageOptions{})
		require.Error(t, err)
		require.Equal(t, 128, easygiterrors.ExitCode(err))
		require.Contains(t, env.Err.String(), "fatal: not a git repository")
		require.Len(t, runner.Invocations(), 1)
	})
}

func TestStageActionFromSubdirectory(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.WriteFile("sub/f.txt", "nested"))
	require.NoError(t, scene.Repo.WriteFile("top.txt", "top"))
	require.NoError(t, scene.Repo.CreateChange("changed", "1", true))

	var out, errOut bytes.Buffer
	splog, err := output.NewSplogWithOptions(output.SplogOptions{Out: &out, Err: &errOut})
	require.NoError(t, err)
	ctx := runtime.NewContext(context.Background(), runtime.Options{
		Settings: config.Defaults(),
		Splog:    splog,
		WorkDir:  filepath.Join(scene.Dir, "sub"),
	})

	require.NoError(t, actions.StageAction(ctx, actions.StageOptions{}), errOut.String())

	staged, err := scene.Repo.StagedFiles()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"1_test.txt", "sub/f.txt", "top.txt"}, staged)
}

func TestUnstageAction(t *testing.T) {
	runner := testhelpers.NewFakeRunner()
	env := newTestEnv(t, runner, "")

	require.NoError(t, actions.UnstageAction(env.Ctx, actions.UnstageOptions{Paths: []string{"a.go"}}))
	require.Equal(t, [][]string{{"reset", "a.go"}}, runner.Invocations())
}

func TestCommitAction(t *testing.T) {
	t.Run("joins message words", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.CommitAction(env.Ctx, actions.CommitOptions{Message: []string{"fix", "the", "bug"}}))
		require.Equal(t, [][]string{{"commit", "-m", "fix the bug"}}, runner.Invocations())
	})

	t.Run("amends", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.CommitAction(env.Ctx, actions.CommitOptions{Message: []string{"reworded"}, Amend: true}))
		require.Equal(t, [][]string{{"commit", "--amend", "-m", "reworded"}}, runner.Invocations())
	})

	t.Run("amends without a message keeps the old one", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.CommitAction(env.Ctx, actions.CommitOptions{Amend: true}))
		require.Equal(t, [][]string{{"commit", "--amend", "--no-edit"}}, runner.Invocations())
	})

	t.Run("fails without a message when not interactive", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")
		prompter := &fakePrompter{text: "ignored"}

		err := actions.CommitAction(env.Ctx, actions.CommitOptions{Prompter: prompter})
		require.ErrorIs(t, err, easygiterrors.ErrEmptyCommitMessage)
		require.Equal(t, 0, prompter.textCalls)
		require.Empty(t, runner.Invocations())
	})

	t.Run("prompts for a message when interactive", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")
		env.Ctx.Interactive = true
		prompter := &fakePrompter{text: "typed at the prompt"}

		require.NoError(t, actions.CommitAction(env.Ctx, actions.CommitOptions{Message: []string{"  "}, Prompter: prompter}))
		require.Equal(t, 1, prompter.textCalls)
		require.Equal(t, [][]string{{"commit", "-m", "typed at the prompt"}}, runner.Invocations())
	})

	t.Run("an empty answer is still an empty message", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")
		env.Ctx.Interactive = true

		err := actions.CommitAction(env.Ctx, actions.CommitOptions{Prompter: &fakePrompter{}})
		require.ErrorIs(t, err, easygiterrors.ErrEmptyCommitMessage)
		require.Empty(t, runner.Invocations())
	})

	t.Run("propagates git's exit status", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().
			On(testhelpers.FakeResponse{Stdout: "nothing to commit, working tree clean", ExitCode: 1}, "commit", "-m", "wip")
		env := newTestEnv(t, runner, "")

		err := actions.CommitAction(env.Ctx, actions.CommitOptions{Message: []string{"wip"}})
		require.Equal(t, 1, easygiterrors.ExitCode(err))
		require.Equal(t, "nothing to commit, working tree clean\n", env.Out.String())
	})
}

func TestLinkAction(t *testing.T) {
	t.Run("uses the default remote name", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.LinkAction(env.Ctx, actions.LinkOptions{URL: "git@host:a/b.git"}))
		require.Equal(t, [][]string{{"remote", "add", "origin", "git@host:a/b.git"}}, runner.Invocations())
		require.Contains(t, env.Out.String(), "Linked origin to git@host:a/b.git.")
	})

	t.Run("uses an explicit remote name", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.LinkAction(env.Ctx, actions.LinkOptions{URL: "https://x/y.git", Name: "mirror"}))
		require.Equal(t, [][]string{{"remote", "add", "mirror", "https://x/y.git"}}, runner.Invocations())
	})

	t.Run("follows a configured default remote", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")
		env.Ctx.Settings.DefaultRemote = "github"

		require.NoError(t, actions.LinkAction(env.Ctx, actions.LinkOptions{URL: "u"}))
		require.Equal(t, [][]string{{"remote", "add", "github", "u"}}, runner.Invocations())
	})
}

func TestPushAction(t *testing.T) {
	t.Run("sets upstream for a branch without a remote", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().WithCurrentBranch("feature")
		env := newTestEnv(t, runner, trackedConfig)

		require.NoError(t, actions.PushAction(env.Ctx, actions.PushOptions{}))
		require.Equal(t, [][]string{{"push", "-u", "origin", "feature"}}, runner.Invocations())
	})

	t.Run("sets upstream for a branch without a section", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().WithCurrentBranch("brand-new")
		env := newTestEnv(t, runner, trackedConfig)

		require.NoError(t, actions.PushAction(env.Ctx, actions.PushOptions{}))
		require.Equal(t, [][]string{{"push", "-u", "origin", "brand-new"}}, runner.Invocations())
	})

	t.Run("plain push for a tracked branch", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().WithCurrentBranch("main")
		env := newTestEnv(t, runner, trackedConfig)

		require.NoError(t, actions.PushAction(env.Ctx, actions.PushOptions{}))
		require.Equal(t, [][]string{{"push", "origin", "main"}}, runner.Invocations())
	})

	t.Run("pushes to an explicit remote", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().WithCurrentBranch("main")
		env := newTestEnv(t, runner, trackedConfig)

		require.NoError(t, actions.PushAction(env.Ctx, actions.PushOptions{Remote: "upstream"}))
		require.Equal(t, [][]string{{"push", "upstream", "main"}}, runner.Invocations())
	})

	t.Run("prints git progress dimmed on success", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().
			WithCurrentBranch("main").
			On(testhelpers.FakeResponse{Stderr: "To github.com:example/app.git"}, "push", "origin", "main")
		env := newTestEnv(t, runner, trackedConfig)

		require.NoError(t, actions.PushAction(env.Ctx, actions.PushOptions{}))
		require.Equal(t, "To github.com:example/app.git\n", env.Err.String())
	})

	t.Run("fails on a detached HEAD without pushing", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().WithCurrentBranch("")
		env := newTestEnv(t, runner, trackedConfig)

		err := actions.PushAction(env.Ctx, actions.PushOptions{})
		require.ErrorIs(t, err, easygiterrors.ErrNotOnBranch)
		require.Empty(t, runner.Invocations())
	})

	t.Run("fails when the configuration cannot be read", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().WithCurrentBranch("main")
		env := newTestEnv(t, runner, "")
		env.Ctx.ConfigPath = filepath.Join(t.TempDir(), "missing", "config")

		err := actions.PushAction(env.Ctx, actions.PushOptions{})
		require.ErrorIs(t, err, easygiterrors.ErrConfigRead)
		require.Empty(t, runner.Invocations())
	})

	t.Run("propagates a rejected push", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().
			WithCurrentBranch("main").
			On(testhelpers.FakeResponse{Stderr: "! [rejected] main -> main (fetch first)", ExitCode: 1}, "push", "origin", "main")
		env := newTestEnv(t, runner, trackedConfig)

		err := actions.PushAction(env.Ctx, actions.PushOptions{})
		require.Equal(t, 1, easygiterrors.ExitCode(err))
		require.True(t, easygiterrors.Reported(err))
		require.Contains(t, env.Err.String(), "[rejected]")
	})
}

func TestPullAction(t *testing.T) {
	tests := []struct {
		name    string
		current string
		remote  string
		want    []string
	}{
		{"uses the recorded upstream", "fork-work", "", []string{"pull", "upstream", "fork-work"}},
		{"falls back to the default remote", "feature", "", []string{"pull", "origin", "feature"}},
		{"unknown branch uses the default remote", "brand-new", "", []string{"pull", "origin", "brand-new"}},
		{"explicit remote wins", "fork-work", "origin", []string{"pull", "origin", "fork-work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testhelpers.NewFakeRunner().WithCurrentBranch(tt.current)
			env := newTestEnv(t, runner, trackedConfig)

			require.NoError(t, actions.PullAction(env.Ctx, actions.PullOptions{Remote: tt.remote}))
			require.Equal(t, [][]string{tt.want}, runner.Invocations())
		})
	}

	t.Run("fails on a detached HEAD", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, trackedConfig)

		require.ErrorIs(t, actions.PullAction(env.Ctx, actions.PullOptions{}), easygiterrors.ErrNotOnBranch)
		require.Empty(t, runner.Invocations())
	})
}

func TestBranchAction(t *testing.T) {
	t.Run("creates a branch", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.BranchAction(env.Ctx, actions.BranchOptions{Name: "feature"}))
		require.Equal(t, [][]string{{"branch", "feature"}}, runner.Invocations())
		require.Equal(t, "Created feature.\n", env.Out.String())
	})

	t.Run("creates and checks out a branch", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, "")

		require.NoError(t, actions.BranchAction(env.Ctx, actions.BranchOptions{Name: "feature", Checkout: true}))
		require.Equal(t, [][]string{{"checkout", "-b", "feature"}}, runner.Invocations())
		require.Equal(t, "Created and checked out feature (current).\n", env.Out.String())
	})

	t.Run("reports an existing branch", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().
			On(testhelpers.FakeResponse{Stderr: "fatal: a branch named 'feature' already exists", ExitCode: 128}, "branch", "feature")
		env := newTestEnv(t, runner, "")

		err := actions.BranchAction(env.Ctx, actions.BranchOptions{Name: "feature"})
		require.Equal(t, 128, easygiterrors.ExitCode(err))
		require.Empty(t, env.Out.String())
		require.Contains(t, env.Err.String(), "already exists")
	})
}

func TestCheckoutAction(t *testing.T) {
	t.Run("checks out the named branch", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, trackedConfig)

		require.NoError(t, actions.CheckoutAction(env.Ctx, actions.CheckoutOptions{Name: "main"}))
		require.Equal(t, [][]string{{"checkout", "main"}}, runner.Invocations())
	})

	t.Run("requires a name when not interactive", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, trackedConfig)

		err := actions.CheckoutAction(env.Ctx, actions.CheckoutOptions{Prompter: &fakePrompter{selected: "main"}})
		require.ErrorIs(t, err, easygiterrors.ErrBranchRequired)
		require.Empty(t, runner.Invocations())
	})

	t.Run("selects from known branches when interactive", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().WithCurrentBranch("main")
		env := newTestEnv(t, runner, trackedConfig)
		env.Ctx.Interactive = true
		prompter := &fakePrompter{selected: "fork-work"}

		require.NoError(t, actions.CheckoutAction(env.Ctx, actions.CheckoutOptions{Prompter: prompter}))
		require.Equal(t, []string{"main", "feature", "fork-work"}, prompter.selectOptions)
		require.Equal(t, "main", prompter.selectDefault)
		require.Equal(t, [][]string{{"checkout", "fork-work"}}, runner.Invocations())
	})

	t.Run("a cancelled selection runs nothing", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner()
		env := newTestEnv(t, runner, trackedConfig)
		env.Ctx.Interactive = true

		err := actions.CheckoutAction(env.Ctx, actions.CheckoutOptions{Prompter: &fakePrompter{err: actions.ErrPromptCancelled}})
		require.ErrorIs(t, err, actions.ErrPromptCancelled)
		require.Empty(t, runner.Invocations())
	})
}

func TestShowConfigAction(t *testing.T) {
	t.Run("lists remotes and branches", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().WithCurrentBranch("main")
		env := newTestEnv(t, runner, trackedConfig)

		require.NoError(t, actions.ShowConfigAction(env.Ctx, actions.ShowConfigOptions{}))
		out := env.Out.String()
		require.Contains(t, out, "origin git@github.com:example/app.git")
		require.Contains(t, out, "upstream https://github.com/upstream/app.git")
		require.Contains(t, out, "main (current) → origin")
		require.Contains(t, out, "  feature\n")
		require.Empty(t, runner.Invocations())
	})

	t.Run("prints yaml", func(t *testing.T) {
		runner := testhelpers.NewFakeRunner().WithCurrentBranch("feature")
		env := newTestEnv(t, runner, trackedConfig)

		require.NoError(t, actions.ShowConfigAction(env.Ctx, actions.ShowConfigOptions{YAML: true}))

		var decoded gitconfig.Configuration
		require.NoError(t, yaml.Unmarshal(env.Out.Bytes(), &decoded))
		require.Equal(t, []gitconfig.Remote{
			{Name: "origin", URL: "git@github.com:example/app.git"},
			{Name: "upstream", URL: "https://github.com/upstream/app.git"},
		}, decoded.Remotes)
		current, ok := decoded.CurrentBranch()
		require.True(t, ok)
		require.Equal(t, "feature", current.Name)
		require.NotContains(t, env.Out.String(), "remote: \"\"", "an absent upstream is omitted")
	})

	t.Run("shows empty sections", func(t *testing.T) {
		env := newTestEnv(t, testhelpers.NewFakeRunner(), "[core]\n\tbare = false\n")

		require.NoError(t, actions.ShowConfigAction(env.Ctx, actions.ShowConfigOptions{}))
		require.Contains(t, env.Out.String(), "Remotes\n  (none)\n")
		require.Contains(t, env.Out.String(), "Branches\n  (none)\n")
	})
}
