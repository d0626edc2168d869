package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGitConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "config"), []byte(content), 0o644))

	return dir
}

func TestDetectFullName(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		want    string
		wantErr bool
	}{
		{
			name: "https origin",
			config: `[core]
	repositoryformatversion = 0
[remote "origin"]
	url = https://github.com/facebook/react.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`,
			want: "facebook/react",
		},
		{
			name: "ssh origin",
			config: `[remote "origin"]
	url = git@github.com:golang/go.git
`,
			want: "golang/go",
		},
		{
			name: "only upstream remote",
			config: `[remote "upstream"]
	url = https://github.com/a/b.git
`,
			wantErr: true,
		},
		{
			name: "non github origin",
			config: `[remote "origin"]
	url = https://gitlab.com/a/b.git
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFullName(writeGitConfig(t, tt.config))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoRepository)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFullName_NotARepository(t *testing.T) {
	_, err := DetectFullName(t.TempDir())
	assert.ErrorIs(t, err, ErrNoRepository)
}
