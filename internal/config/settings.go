package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultRemoteName is the remote used when a command is not given one
const DefaultRemoteName = "origin"

// DefaultGitPath is the git executable looked up on PATH
const DefaultGitPath = "git"

// EnvPrefix prefixes every environment variable easygit reads (EASYGIT_DEFAULT_REMOTE, ...)
const EnvPrefix = "EASYGIT"

// Setting keys
const (
	KeyDefaultRemote = "default_remote"
	KeyGitPath       = "git_path"
	KeyNoColor       = "no_color"
	KeyLogFile       = "log_file"
)

// Settings are easygit's own preferences. They never come from the repository's .git/config.
type Settings struct {
	DefaultRemote string `mapstructure:"default_remote" yaml:"default_remote"`
	GitPath       string `mapstructure:"git_path" yaml:"git_path"`
	NoColor       bool   `mapstructure:"no_color" yaml:"no_color"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`

	// File is the settings file that was read, empty when none was found
	File string `mapstructure:"-" yaml:"-"`
}

// LoadOptions controls where settings are read from
type LoadOptions struct {
	// File is an explicit settings file; when empty the default locations are searched
	File string
	// Flags are bound over file and environment values (git-path, no-color)
	Flags *pflag.FlagSet
}

// Defaults returns the settings used when nothing is configured
func Defaults() *Settings {
	return &Settings{
		DefaultRemote: DefaultRemoteName,
		GitPath:       DefaultGitPath,
	}
}

// SearchPaths returns the directories searched for config.yaml, in order
func SearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "easygit"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "easygit"))
	}
	return paths
}

// Load layers defaults, the settings file, EASYGIT_* environment variables and flags.
// A missing settings file is not an error; an unreadable or malformed one is.
func Load(opts LoadOptions) (*Settings, error) {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault(KeyDefaultRemote, defaults.DefaultRemote)
	v.SetDefault(KeyGitPath, defaults.GitPath)
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyLogFile, "")

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		for _, p := range SearchPaths() {
			v.AddConfigPath(p)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.Flags != nil {
		if err := bindFlag(v, opts.Flags, KeyGitPath, "git-path"); err != nil {
			return nil, err
		}
		if err := bindFlag(v, opts.Flags, KeyNoColor, "no-color"); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	settings.File = v.ConfigFileUsed()

	if settings.DefaultRemote == "" {
		settings.DefaultRemote = DefaultRemoteName
	}
	if settings.GitPath == "" {
		settings.GitPath = DefaultGitPath
	}
	if os.Getenv("NO_COLOR") != "" {
		settings.NoColor = true
	}

	return settings, nil
}

// RemoteOrDefault returns name, or the configured default remote when name is empty
func (s *Settings) RemoteOrDefault(name string) string {
	if name != "" {
		return name
	}
	if s == nil || s.DefaultRemote == "" {
		return DefaultRemoteName
	}
	return s.DefaultRemote
}

func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) error {
	flag := flags.Lookup(name)
	if flag == nil {
		return nil
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind --%s: %w", name, err)
	}
	return nil
}
