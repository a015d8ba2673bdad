// Package git provides a wrapper around the git executable for repository operations.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	easygiterrors "easygit.dev/easygit/internal/errors"
)

// DefaultExecutable is the git binary looked up on PATH when none is configured
const DefaultExecutable = "git"

// Result is the captured outcome of one git invocation
type Result struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes git with an argument vector.
// Production code uses CommandRunner; tests use testhelpers.FakeRunner.
type Runner interface {
	Run(ctx context.Context, args ...string) (Result, error)
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	executable string
	workingDir string
}

// RunnerOption configures a CommandRunner
type RunnerOption func(*CommandRunner)

// WithExecutable sets a custom path to the git binary.
func WithExecutable(path string) RunnerOption {
	return func(r *CommandRunner) {
		if path != "" {
			r.executable = path
		}
	}
}

// WithWorkingDir runs git in dir instead of the process working directory.
func WithWorkingDir(dir string) RunnerOption {
	return func(r *CommandRunner) {
		r.workingDir = dir
	}
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(opts ...RunnerOption) *CommandRunner {
	r := &CommandRunner{executable: DefaultExecutable}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Executable returns the git binary this runner invokes
func (r *CommandRunner) Executable() string {
	return r.executable
}

// WorkingDir returns the directory git runs in ("" means the current directory)
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes git and blocks until it exits. There is no default timeout:
// only ctx can cancel the process.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.executable, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Args:   args,
		Stdout: trimTrailingNewline(stdout.String()),
		Stderr: trimTrailingNewline(stderr.String()),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode < 0 {
			// killed by a signal
			result.ExitCode = easygiterrors.ExitFailure
		}
		return result, easygiterrors.NewGitCommandError(r.executable, args, result.Stdout, result.Stderr, result.ExitCode, err)
	}

	result.ExitCode = easygiterrors.ExitSpawnError
	return result, easygiterrors.NewSpawnError(r.executable, err)
}

// trimTrailingNewline drops the final line break git prints, keeping any
// other leading or trailing whitespace intact.
func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Compile-time check that CommandRunner implements Runner.
var _ Runner = (*CommandRunner)(nil)
