package testhelpers

import (
	"context"
	"strings"
	"sync"

	easygiterrors "easygit.dev/easygit/internal/errors"
	"easygit.dev/easygit/internal/git"
)

// FakeResponse is what FakeRunner returns for one argument vector
type FakeResponse struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// SpawnErr simulates git not being startable at all
	SpawnErr error
}

// FakeRunner implements git.Runner without spawning processes.
// It records every argument vector it is asked to run.
type FakeRunner struct {
	mu        sync.Mutex
	Calls     [][]string
	Responses map[string]FakeResponse
}

// NewFakeRunner creates a FakeRunner where every command succeeds with no output
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]FakeResponse)}
}

// On registers the response for an exact argument vector
func (f *FakeRunner) On(resp FakeResponse, args ...string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[key(args)] = resp
	return f
}

// WithCurrentBranch makes "git branch --show-current" report name
func (f *FakeRunner) WithCurrentBranch(name string) *FakeRunner {
	return f.On(FakeResponse{Stdout: name}, "branch", "--show-current")
}

// Run records args and returns the registered response
func (f *FakeRunner) Run(_ context.Context, args ...string) (git.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	recorded := append([]string(nil), args...)
	f.Calls = append(f.Calls, recorded)

	resp := f.Responses[key(args)]
	result := git.Result{Args: recorded, Stdout: resp.Stdout, Stderr: resp.Stderr, ExitCode: resp.ExitCode}

	if resp.SpawnErr != nil {
		result.ExitCode = easygiterrors.ExitSpawnError
		return result, easygiterrors.NewSpawnError("git", resp.SpawnErr)
	}
	if resp.ExitCode != 0 {
		return result, easygiterrors.NewGitCommandError("git", recorded, resp.Stdout, resp.Stderr, resp.ExitCode, nil)
	}
	return result, nil
}

// Invocations returns the recorded calls without the current-branch queries
func (f *FakeRunner) Invocations() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	calls := [][]string{}
	for _, call := range f.Calls {
		if key(call) == key([]string{"branch", "--show-current"}) {
			continue
		}
		calls = append(calls, call)
	}
	return calls
}

func key(args []string) string {
	return strings.Join(args, "\x00")
}

// Compile-time check that FakeRunner implements git.Runner.
var _ git.Runner = (*FakeRunner)(nil)
