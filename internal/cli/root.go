package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"easygit.dev/easygit/internal/config"
	"easygit.dev/easygit/internal/output"
	"easygit.dev/easygit/internal/runtime"
)

// annotationNoRepository marks commands that run without reading the repository configuration
const annotationNoRepository = "easygit/no-repository"

// rootOptions hold the global flags
type rootOptions struct {
	cwd        string
	gitPath    string
	configFile string
	debug      bool
	noColor    bool
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "easygit",
		Short: "easygit is a friendlier front end for everyday git commands",
		Long: `easygit is a friendlier front end for everyday git commands.

Each command runs the matching git command and reprints its output. easygit
reads the repository's .git/config to fill in defaults, such as tracking the
remote on the first push of a branch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupContext(cmd, opts)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cwd, "cwd", "C", "", "Run as if easygit was started in this directory")
	flags.StringVar(&opts.gitPath, "git-path", config.DefaultGitPath, "Path to the git executable")
	flags.StringVar(&opts.configFile, "config", "", "Settings file (default $XDG_CONFIG_HOME/easygit/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "Write debug logging to the console")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newInitCmd(),
		newStageCmd(),
		newUnstageCmd(),
		newCommitCmd(),
		newLinkCmd(),
		newPushCmd(),
		newBranchCmd(),
		newCheckoutCmd(),
		newPullCmd(),
		newConfigCmd(),
		newCompletionCmd(),
		newVersionCmd(version, commit, date),
	)

	return rootCmd
}

// CloseLog closes the log file opened for cmd, the command returned by ExecuteC.
// It is a no-op when cmd never got as far as opening one.
func CloseLog(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return nil
	}
	return ctx.Splog.Close()
}

// setupContext loads settings, opens the log and attaches the runtime context to cmd.
// Commands that work on a repository fail here when its configuration cannot be read.
func setupContext(cmd *cobra.Command, opts *rootOptions) error {
	if opts.cwd != "" {
		info, err := os.Stat(opts.cwd)
		if err != nil {
			return fmt.Errorf("cannot use %s as working directory: %w", opts.cwd, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("cannot use %s as working directory: not a directory", opts.cwd)
		}
	}

	settings, err := config.Load(config.LoadOptions{File: opts.configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	if settings.NoColor {
		output.DisableColors()
	}

	debug := opts.debug || os.Getenv("DEBUG") != ""
	splog, err := output.NewSplogWithOptions(output.SplogOptions{
		Out:         cmd.OutOrStdout(),
		Err:         cmd.ErrOrStderr(),
		Debug:       debug,
		LogFilePath: output.GetLogFilePath(settings.LogFile),
	})
	if err != nil {
		splog, _ = output.NewSplogWithOptions(output.SplogOptions{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr(), Debug: debug})
		splog.Debug("file logging disabled: %v", err)
	}
	if settings.File != "" {
		splog.Debug("using settings from %s", settings.File)
	}

	ctx := runtime.NewContext(cmd.Context(), runtime.Options{
		Settings:    settings,
		Splog:       splog,
		WorkDir:     opts.cwd,
		Interactive: output.IsInteractive(),
	})
	cmd.SetContext(runtime.Attach(cmd.Context(), ctx))

	if !needsRepository(cmd) {
		return nil
	}
	// parsed on first use; reading it here keeps failures ahead of any git call
	return ctx.CheckConfiguration()
}

func needsRepository(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd, "help":
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoRepository] == "true" {
			return false
		}
	}
	return cmd.HasParent()
}
