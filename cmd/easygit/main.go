package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	easygiterrors "easygit.dev/easygit/internal/errors"
	"easygit.dev/easygit/internal/cli"
	"easygit.dev/easygit/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd(version, commit, date)
	cmd, err := rootCmd.ExecuteContextC(ctx)
	stop()
	// PersistentPostRun is skipped on failure, so the log is closed here
	_ = cli.CloseLog(cmd)

	if err != nil {
		// git's own stderr has already been shown by the command
		if !easygiterrors.Reported(err) {
			fmt.Fprintln(os.Stderr, output.ColorError(err.Error()))
		}
		os.Exit(easygiterrors.ExitCode(err))
	}
}
