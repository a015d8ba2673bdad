package git

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// ConfigRelPath is where git keeps the repository configuration, relative to the repository root
var ConfigRelPath = filepath.Join(".git", "config")

// openRepo opens the repository containing dir, following .git files of linked worktrees and submodules
func openRepo(dir string) (*gogit.Repository, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return repo, nil
}

// FindRepoRoot returns the root directory of the Git repository containing dir.
// An empty dir means the current working directory.
func FindRepoRoot(dir string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	// Get the worktree to find the root
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// CommonDir returns the git directory holding the shared configuration of the
// repository containing dir. For a linked worktree this is the main repository's
// git directory, found through the commondir file.
func CommonDir(dir string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", fmt.Errorf("repository at %s is not stored on disk", dir)
	}
	gitDir := storage.Filesystem().Root()

	data, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gitDir, nil
		}
		return "", fmt.Errorf("failed to read commondir: %w", err)
	}
	common := strings.TrimSpace(string(data))
	if !filepath.IsAbs(common) {
		common = filepath.Join(gitDir, common)
	}
	return filepath.Clean(common), nil
}

// ConfigPath returns the path of the configuration file for the repository containing dir.
// Outside a repository it falls back to the fixed relative path, so reading it
// reports a missing configuration rather than a discovery failure.
func ConfigPath(dir string) string {
	common, err := CommonDir(dir)
	if err != nil {
		if dir == "" {
			return ConfigRelPath
		}
		return filepath.Join(dir, ConfigRelPath)
	}
	return filepath.Join(common, "config")
}

// ListBranches returns all local branch names of the repository containing dir, sorted
func ListBranches(dir string) ([]string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return nil, err
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Strings(names)
	return names, nil
}
