// Package runtime provides a context type that holds the git runner, settings
// and logger for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"context"
	"errors"

	"easygit.dev/easygit/internal/config"
	"easygit.dev/easygit/internal/git"
	"easygit.dev/easygit/internal/gitconfig"
	"easygit.dev/easygit/internal/output"
)

// Context provides access to the runner, settings and output for commands
type Context struct {
	context.Context

	Runner   git.Runner
	Settings *config.Settings
	Splog    *output.Splog

	// WorkDir is where git runs; empty means the process working directory
	WorkDir string
	// ConfigPath overrides where the repository configuration is read from
	ConfigPath string
	// Interactive reports whether prompts may be shown
	Interactive bool

	configuration *gitconfig.Configuration
	currentBranch *string
}

// Options configure NewContext
type Options struct {
	Runner      git.Runner
	Settings    *config.Settings
	Splog       *output.Splog
	WorkDir     string
	ConfigPath  string
	Interactive bool
}

// NewContext creates a new context; nil fields fall back to defaults
func NewContext(ctx context.Context, opts Options) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Settings == nil {
		opts.Settings = config.Defaults()
	}
	if opts.Splog == nil {
		opts.Splog = output.NewSplog()
	}
	if opts.Runner == nil {
		opts.Runner = git.NewCommandRunner(
			git.WithExecutable(opts.Settings.GitPath),
			git.WithWorkingDir(opts.WorkDir),
		)
	}
	return &Context{
		Context:     ctx,
		Runner:      &loggingRunner{runner: opts.Runner, splog: opts.Splog},
		Settings:    opts.Settings,
		Splog:       opts.Splog,
		WorkDir:     opts.WorkDir,
		ConfigPath:  opts.ConfigPath,
		Interactive: opts.Interactive,
	}
}

// CurrentBranch asks git for the checked-out branch, once per context
func (c *Context) CurrentBranch() (string, error) {
	if c.currentBranch != nil {
		return *c.currentBranch, nil
	}
	name, err := git.CurrentBranch(c, c.Runner)
	if err != nil {
		return "", err
	}
	c.currentBranch = &name
	return name, nil
}

// Configuration reads and parses the repository configuration on first use
func (c *Context) Configuration() (*gitconfig.Configuration, error) {
	if c.configuration != nil {
		return c.configuration, nil
	}
	path := c.configPath()
	cfg, err := gitconfig.Load(path, c.CurrentBranch)
	if err != nil {
		return nil, err
	}
	c.Splog.Debug("read %d remotes and %d branches from %s", len(cfg.Remotes), len(cfg.Branches), path)
	c.configuration = cfg
	return cfg, nil
}

// CheckConfiguration fails when the repository configuration cannot be read.
// Unlike Configuration it never runs git.
func (c *Context) CheckConfiguration() error {
	if c.configuration != nil {
		return nil
	}
	return gitconfig.Check(c.configPath())
}

func (c *Context) configPath() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return git.ConfigPath(c.WorkDir)
}

// DefaultRemote returns name, or the configured default remote when name is empty
func (c *Context) DefaultRemote(name string) string {
	return c.Settings.RemoteOrDefault(name)
}

// loggingRunner records every invocation to the splog
type loggingRunner struct {
	runner git.Runner
	splog  *output.Splog
}

func (r *loggingRunner) Run(ctx context.Context, args ...string) (git.Result, error) {
	result, err := r.runner.Run(ctx, args...)
	r.splog.Command(args, result.ExitCode)
	if err != nil {
		r.splog.Debug("git %v failed: %v", args, err)
	}
	return result, err
}

type contextKey struct{}

// Attach returns a copy of parent that carries c
func Attach(parent context.Context, c *Context) context.Context {
	return context.WithValue(parent, contextKey{}, c)
}

// GetContext returns the Context attached to ctx by the root command
func GetContext(ctx context.Context) (*Context, error) {
	if ctx != nil {
		if c, ok := ctx.Value(contextKey{}).(*Context); ok && c != nil {
			return c, nil
		}
	}
	return nil, errors.New("easygit context not initialized")
}
