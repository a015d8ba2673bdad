// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Running git with an argument vector and capturing stdout, stderr and exit status
//   - Repo state queries (current branch, unstaged files)
//   - Repository discovery and local branch listing via go-git
//
// This package should be the only place where the git executable is spawned.
package git
