package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"easygit.dev/easygit/internal/git"
)

func TestParseUnstagedPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{"empty", "", []string{}},
		{"modified in worktree", " M main.go\x00", []string{"main.go"}},
		{"untracked", "?? notes.txt\x00", []string{"notes.txt"}},
		{"fully staged is skipped", "M  staged.go\x00A  added.go\x00", []string{}},
		{"staged and modified again", "MM both.go\x00", []string{"both.go"}},
		{"deleted in worktree", " D gone.go\x00", []string{"gone.go"}},
		{"rename keeps the new path", "RM new.go\x00old.go\x00 M a.go\x00", []string{"new.go", "a.go"}},
		{"staged rename is skipped with its original path", "R  new.go\x00old.go\x00", []string{}},
		{"arrow in an untracked name", "?? a -> b.txt\x00", []string{"a -> b.txt"}},
		{"paths are not quoted", "?? with space.txt\x00?? café.txt\x00", []string{"with space.txt", "café.txt"}},
		{"short entries are ignored", "M\x00??\x00 M a\x00", []string{"a"}},
		{"nested path", "?? sub/f.txt\x00", []string{"sub/f.txt"}},
		{
			"mixed",
			" M a.go\x00M  b.go\x00?? dir/c.go\x00AM d.go\x00",
			[]string{"a.go", "dir/c.go", "d.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, git.ParseUnstagedPaths(tt.output))
		})
	}
}

func TestRootPathspec(t *testing.T) {
	require.Equal(t, ":(top,literal)sub/f.txt", git.RootPathspec("sub/f.txt"))
	require.Equal(t, ":(top,literal)*.go", git.RootPathspec("*.go"))
}
