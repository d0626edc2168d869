package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	c := New()

	assert.Equal(t, "https://api.github.com/", c.GetAPIURL())
	assert.Equal(t, "bolt", c.GetStorage())
	assert.Equal(t, model.DuplicateReject, c.GetDuplicatePolicy())
	assert.Equal(t, model.PersistFail, c.GetPersistMode())
	assert.Equal(t, slog.LevelWarn, c.GetLogLevel())
	assert.Equal(t, "text", c.GetLogFormat())
	assert.Empty(t, c.GetToken())
}

func TestEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GHEXPLORER_API_URL", "http://localhost:9999/")
	t.Setenv("GHEXPLORER_STORAGE", "SQLite")
	t.Setenv("GHEXPLORER_DATA_DIR", dir)
	t.Setenv("GHEXPLORER_DUPLICATES", "replace")
	t.Setenv("GHEXPLORER_PERSIST_ERRORS", "log")
	t.Setenv("GHEXPLORER_LOG_LEVEL", "DEBUG")
	t.Setenv("GHEXPLORER_LOG_FORMAT", "json")

	c := New()

	assert.Equal(t, "http://localhost:9999/", c.GetAPIURL())
	assert.Equal(t, "sqlite", c.GetStorage())
	assert.Equal(t, model.DuplicateReplace, c.GetDuplicatePolicy())
	assert.Equal(t, model.PersistLog, c.GetPersistMode())
	assert.Equal(t, slog.LevelDebug, c.GetLogLevel())
	assert.Equal(t, "json", c.GetLogFormat())

	got, err := c.GetDataDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestTokenFallback(t *testing.T) {
	tests := []struct {
		name      string
		own, gh1  string
		gh2       string
		wantToken string
	}{
		{name: "own wins", own: "a", gh1: "b", gh2: "c", wantToken: "a"},
		{name: "GITHUB_TOKEN", gh1: "b", gh2: "c", wantToken: "b"},
		{name: "GH_TOKEN", gh2: "c", wantToken: "c"},
		{name: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GHEXPLORER_TOKEN", tt.own)
			t.Setenv("GITHUB_TOKEN", tt.gh1)
			t.Setenv("GH_TOKEN", tt.gh2)

			assert.Equal(t, tt.wantToken, New().GetToken())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing default file is fine", func(t *testing.T) {
		c := New()
		c.Set(KeyDataDir, t.TempDir())

		require.NoError(t, c.Load(""))
		assert.Empty(t, c.File())
	})

	t.Run("file in data dir", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
			[]byte("duplicates: allow\nlog_level: error\n"), 0o600))

		c := New()
		c.Set(KeyDataDir, dir)

		require.NoError(t, c.Load(""))
		assert.Equal(t, model.DuplicateAllow, c.GetDuplicatePolicy())
		assert.Equal(t, slog.LevelError, c.GetLogLevel())
		assert.Equal(t, filepath.Join(dir, "config.yaml"), c.File())
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		c := New()
		assert.Error(t, c.Load(filepath.Join(t.TempDir(), "nope.yaml")))
	})
}

func TestBindFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("storage", "bolt", "")
	fs.String("log-level", "warn", "")
	fs.String("unrelated", "", "")

	c := New()
	require.NoError(t, c.BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"--storage=sqlite", "--log-level=info"}))

	assert.Equal(t, "sqlite", c.GetStorage())
	assert.Equal(t, slog.LevelInfo, c.GetLogLevel())
}

func TestSettingsMasksToken(t *testing.T) {
	t.Setenv("GHEXPLORER_TOKEN", "ghp_secret")

	s := New().Settings()

	assert.Equal(t, "(set)", s[KeyToken])
	assert.Equal(t, "warn", s[KeyLogLevel])
	assert.NotContains(t, s[KeyToken], "ghp_secret")
}

func TestSetupLog(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer

	c := New()
	c.Set(KeyLogLevel, "info")
	c.Set(KeyLogFormat, "json")

	logger := SetupLog(c, &buf)
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":"v"`)
}
