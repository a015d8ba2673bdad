package actions

import (
	"easygit.dev/easygit/internal/output"
	"easygit.dev/easygit/internal/runtime"
)

// LinkOptions specifies options for the link command
type LinkOptions struct {
	URL  string
	Name string // Optional: defaults to the configured default remote
}

// LinkArgs returns the argument vector that registers a remote
func LinkArgs(name, url string) []string {
	return []string{"remote", "add", name, url}
}

// LinkAction registers url as a remote of the repository
func LinkAction(ctx *runtime.Context, opts LinkOptions) error {
	name := ctx.DefaultRemote(opts.Name)
	if _, err := run(ctx, LinkArgs(name, opts.URL)...); err != nil {
		return err
	}
	ctx.Splog.Info("Linked %s to %s.", output.ColorRemoteName(name), opts.URL)
	return nil
}
