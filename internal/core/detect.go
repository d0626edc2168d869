package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/ghexplorer/internal/giturl"
	"gopkg.in/ini.v1"
)

// ErrNoRepository is returned when the directory has no usable origin remote.
var ErrNoRepository = errors.New("no GitHub repository detected")

// DetectFullName returns "owner/name" for the GitHub origin remote of the
// git repository rooted at dir.
func DetectFullName(dir string) (string, error) {
	gitDir := filepath.Join(dir, ".git")

	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a git repository", ErrNoRepository, dir)
	}

	cfg, err := ini.Load(filepath.Join(gitDir, "config"))
	if err != nil {
		return "", fmt.Errorf("failed to read git config: %w", err)
	}

	origin := cfg.Section(`remote "origin"`).Key("url").String()
	if origin == "" {
		return "", fmt.Errorf("%w: no origin remote in %s", ErrNoRepository, dir)
	}

	repo, err := giturl.ParseRepository(origin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoRepository, err)
	}

	return repo.FullName(), nil
}
