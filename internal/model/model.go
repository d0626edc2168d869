package model

import "strings"

// Owner is the account that owns a project.
type Owner struct {
	// Login is the account name (e.g., "facebook")
	Login string `json:"login"`

	// AvatarURL points to the owner's avatar image
	AvatarURL string `json:"avatar_url"`
}

// Project is a saved remote repository.
type Project struct {
	// FullName is "<owner>/<name>" and identifies the project
	FullName string `json:"full_name"`

	// Description may be empty
	Description string `json:"description"`

	// Owner of the project
	Owner Owner `json:"owner"`
}

// Name returns the repository part of FullName.
func (p Project) Name() string {
	_, name, ok := strings.Cut(p.FullName, "/")
	if !ok {
		return p.FullName
	}

	return name
}

// SameProject reports whether p and other share a full name. GitHub names
// are case-insensitive.
func (p Project) SameProject(fullName string) bool {
	return strings.EqualFold(p.FullName, fullName)
}

// ProjectDetail is the extended view of a project shown by the detail screen.
type ProjectDetail struct {
	Project

	HTMLURL         string `json:"html_url"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	OpenIssuesCount int    `json:"open_issues_count"`
}
