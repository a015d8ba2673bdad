// Package errors provides sentinel errors and custom error types for the easygit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit statuses used when the failure did not come from git itself.
const (
	ExitFailure    = 1
	ExitSpawnError = 127
)

// Sentinel errors for common conditions
var (
	// ErrConfigRead indicates that the repository configuration file could not be read
	ErrConfigRead = errors.New("could not read configuration")

	// ErrSpawn indicates that the git executable could not be started
	ErrSpawn = errors.New("could not start git")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrEmptyCommitMessage indicates that commit was called without a message
	ErrEmptyCommitMessage = errors.New("commit message is empty")

	// ErrBranchRequired indicates that a branch name was needed but none was given
	ErrBranchRequired = errors.New("a branch name is required")

	// ErrInteractiveDisabled indicates that a prompt was needed but the session is not interactive
	ErrInteractiveDisabled = errors.New("interactive prompts are disabled")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s %s exited with status %d", e.Command, strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, exitCode int, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// SpawnError represents a failure to start the git executable at all
type SpawnError struct {
	Executable string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("could not start %s: %v", e.Executable, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrSpawn
func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawn
}

// NewSpawnError creates a new SpawnError
func NewSpawnError(executable string, err error) *SpawnError {
	return &SpawnError{Executable: executable, Err: err}
}

// ExitCode maps an error returned by a command to the process exit status.
// git's own exit status is propagated verbatim.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var gitErr *GitCommandError
	if errors.As(err, &gitErr) && gitErr.ExitCode > 0 {
		return gitErr.ExitCode
	}
	if errors.Is(err, ErrSpawn) {
		return ExitSpawnError
	}
	return ExitFailure
}

// Reported reports whether the error's details were already shown to the user
// (git's stderr, or the spawn failure, is printed by the action that ran it).
func Reported(err error) bool {
	var gitErr *GitCommandError
	return errors.As(err, &gitErr) || errors.Is(err, ErrSpawn)
}
