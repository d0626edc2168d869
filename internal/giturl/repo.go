package giturl

import (
	"errors"
	"fmt"
	"strings"
)

const defaultHost = "github.com"

var (
	// ErrNotGitHub is returned for URLs that point at another host.
	ErrNotGitHub = errors.New("not a GitHub URL")

	// ErrInvalidPath is returned when a URL has no owner/repo part.
	ErrInvalidPath = errors.New("invalid path: expected owner/repo")
)

// Repository is a GitHub repository reference.
type Repository struct {
	Owner string
	Name  string
}

// FullName returns the "owner/repo" string
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// ParseRepository parses a GitHub repository reference.
// Supports multiple formats:
//   - "github.com/owner/repo"
//   - "https://github.com/owner/repo"
//   - "https://github.com/owner/repo/blob/main/file.go#L10"
//   - "git@github.com:owner/repo.git"
//   - "ssh://git@github.com/owner/repo.git"
func ParseRepository(arg string) (Repository, error) {
	arg = strings.TrimSpace(arg)
	shown := Sanitize(arg)

	var host, path string

	// Check if it's a URL (contains ":" but not a Windows path)
	if strings.Contains(arg, ":") && !strings.Contains(arg, "\\") {
		u, err := Parse(arg)
		if err != nil {
			return Repository{}, fmt.Errorf("invalid URL %q: %w", shown, err)
		}

		host, path = u.Hostname(), u.Path
	} else {
		// HOST/OWNER/REPO
		host, path, _ = strings.Cut(arg, "/")
	}

	host = strings.ToLower(strings.TrimPrefix(host, "www."))
	if host != defaultHost {
		return Repository{}, fmt.Errorf("%w: %q", ErrNotGitHub, shown)
	}

	owner, name, err := ownerRepo(path)
	if err != nil {
		return Repository{}, fmt.Errorf("invalid repository URL %q: %w", shown, err)
	}

	return Repository{Owner: owner, Name: name}, nil
}
