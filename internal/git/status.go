package git

import (
	"context"
	"fmt"
	"strings"
)

// CurrentBranch returns the checked-out branch as reported by git.
// Returns an empty string on a detached HEAD.
func CurrentBranch(ctx context.Context, r Runner) (string, error) {
	result, err := r.Run(ctx, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return strings.TrimSpace(result.Stdout), nil
}

// StatusArgs is the argument vector of the status query used to find unstaged files.
// Paths in its output are relative to the repository root.
var StatusArgs = []string{"status", "--porcelain", "-z"}

// UnstagedFiles returns the paths that have unstaged or untracked changes, relative to the repository root
func UnstagedFiles(ctx context.Context, r Runner) ([]string, error) {
	result, err := r.Run(ctx, StatusArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return ParseUnstagedPaths(result.Stdout), nil
}

// ParseUnstagedPaths extracts paths from git status --porcelain -z output
// Format: XY PATH, entries separated by NUL
// X = staged status, Y = working tree status
// Renames and copies are followed by an extra entry holding the original path.
// Entries whose working tree column is blank are already fully staged and are skipped.
func ParseUnstagedPaths(output string) []string {
	paths := []string{}
	entries := strings.Split(output, "\x00")

	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if len(entry) < 4 {
			continue
		}

		stagedChar, workingChar := entry[0], entry[1]
		if stagedChar == 'R' || stagedChar == 'C' {
			i++ // skip the original path
		}
		if workingChar == ' ' {
			continue
		}

		paths = append(paths, entry[3:])
	}

	return paths
}

// RootPathspec anchors path at the repository root so it resolves the same from any subdirectory
func RootPathspec(path string) string {
	return ":(top,literal)" + path
}
