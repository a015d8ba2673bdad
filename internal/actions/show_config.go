package actions

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"easygit.dev/easygit/internal/gitconfig"
	"easygit.dev/easygit/internal/output"
	"easygit.dev/easygit/internal/runtime"
)

// ShowConfigOptions specifies options for the config command
type ShowConfigOptions struct {
	YAML bool
}

// ShowConfigAction prints the remotes and branches read from the repository configuration
func ShowConfigAction(ctx *runtime.Context, opts ShowConfigOptions) error {
	cfg, err := ctx.Configuration()
	if err != nil {
		return err
	}

	if opts.YAML {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		_, err = ctx.Splog.Writer().Write(data)
		return err
	}

	printConfiguration(ctx, cfg)
	return nil
}

func printConfiguration(ctx *runtime.Context, cfg *gitconfig.Configuration) {
	ctx.Splog.Info("%s", output.ColorHeader("Remotes"))
	if len(cfg.Remotes) == 0 {
		ctx.Splog.Info("  %s", output.ColorDim("(none)"))
	}
	for _, r := range cfg.Remotes {
		ctx.Splog.Info("  %s %s", output.ColorRemoteName(r.Name), r.URL)
	}

	ctx.Splog.Newline()
	ctx.Splog.Info("%s", output.ColorHeader("Branches"))
	if len(cfg.Branches) == 0 {
		ctx.Splog.Info("  %s", output.ColorDim("(none)"))
	}
	for _, b := range cfg.Branches {
		line := "  " + output.ColorBranchName(b.Name, b.Current)
		if b.Remote != "" {
			line += " " + output.ColorDim("→ ") + output.ColorRemoteName(b.Remote)
		}
		ctx.Splog.Info("%s", line)
	}
}
