// Package config manages easygit's own settings.
//
// It handles:
//   - Built-in defaults (the default remote name and git executable)
//   - The optional settings file (config.yaml under $XDG_CONFIG_HOME/easygit or ~/.config/easygit)
//   - EASYGIT_* environment variables and command-line flag overrides
//
// The repository's .git/config is read by package gitconfig, not here.
package config
