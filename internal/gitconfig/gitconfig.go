// Package gitconfig reads the remotes and branches declared in a repository's
// .git/config. It understands only the small subset easygit needs to pick
// default arguments; unrecognized lines are skipped rather than rejected.
package gitconfig

import (
	"fmt"
	"os"

	easygiterrors "easygit.dev/easygit/internal/errors"
)

// Remote is a [remote "NAME"] section
type Remote struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Branch is a [branch "NAME"] section. Remote is empty when the branch has no upstream.
type Branch struct {
	Name    string `yaml:"name"`
	Remote  string `yaml:"remote,omitempty"`
	Current bool   `yaml:"current"`
}

// Configuration holds the sections in file order. Duplicate names are kept as separate entries.
type Configuration struct {
	Remotes  []Remote `yaml:"remotes"`
	Branches []Branch `yaml:"branches"`
}

// Remote returns the first remote with the given name
func (c *Configuration) Remote(name string) (Remote, bool) {
	for _, r := range c.Remotes {
		if r.Name == name {
			return r, true
		}
	}
	return Remote{}, false
}

// Branch returns the first branch with the given name
func (c *Configuration) Branch(name string) (Branch, bool) {
	for _, b := range c.Branches {
		if b.Name == name {
			return b, true
		}
	}
	return Branch{}, false
}

// CurrentBranch returns the branch flagged as checked out, if it has a section
func (c *Configuration) CurrentBranch() (Branch, bool) {
	for _, b := range c.Branches {
		if b.Current {
			return b, true
		}
	}
	return Branch{}, false
}

// HasUpstream reports whether the named branch records a remote it tracks
func (c *Configuration) HasUpstream(name string) bool {
	b, ok := c.Branch(name)
	return ok && b.Remote != ""
}

// CurrentBranchFunc asks the external tool which branch is checked out
type CurrentBranchFunc func() (string, error)

// Load reads the file at path and parses it. currentBranch is called at most
// once, and only if the file declares a branch section; an error from it is
// treated as "no branch checked out".
func Load(path string, currentBranch CurrentBranchFunc) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", easygiterrors.ErrConfigRead, path, err)
	}
	return parse(string(data), currentBranch), nil
}

// Check reports whether the file at path can be read, without parsing it
func Check(path string) error {
	if _, err := os.ReadFile(path); err != nil {
		return fmt.Errorf("%w at %s: %w", easygiterrors.ErrConfigRead, path, err)
	}
	return nil
}

// Parse parses configuration text, flagging the branch named current.
func Parse(text string, current string) *Configuration {
	return parse(text, func() (string, error) { return current, nil })
}
