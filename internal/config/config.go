package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/inovacc/ghexplorer/internal/application"
	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyAPIURL        = "api_url"
	KeyToken         = "token"
	KeyStorage       = "storage"
	KeyDataDir       = "data_dir"
	KeyDuplicates    = "duplicates"
	KeyPersistErrors = "persist_errors"
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
)

const configFileName = "config"

type Config struct{ v *viper.Viper }

// New returns a Config reading GHEXPLORER_* environment variables on top of
// the built-in defaults.
func New() *Config {
	vv := viper.New()
	vv.SetEnvPrefix(application.EnvPrefix)
	vv.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vv.AutomaticEnv()

	vv.SetDefault(KeyAPIURL, "https://api.github.com/")
	vv.SetDefault(KeyStorage, "bolt")
	vv.SetDefault(KeyDuplicates, model.DuplicateReject.String())
	vv.SetDefault(KeyPersistErrors, model.PersistFail.String())
	vv.SetDefault(KeyLogLevel, "warn")
	vv.SetDefault(KeyLogFormat, "text")

	return &Config{v: vv}
}

// Load reads the config file. An explicit path must exist; otherwise
// config.yaml in the data directory is used when present.
func (c *Config) Load(path string) error {
	if path != "" {
		c.v.SetConfigFile(path)
	} else {
		c.v.SetConfigName(configFileName)
		c.v.SetConfigType("yaml")

		dir, err := c.GetDataDir()
		if err != nil {
			return err
		}

		c.v.AddConfigPath(dir)
	}

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

// File returns the config file in use, or "" when none was read.
func (c *Config) File() string { return c.v.ConfigFileUsed() }

// BindFlags binds every flag in fs whose name matches a setting key
// (dashes are accepted in place of underscores).
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	var errs []error

	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !c.isKey(key) {
			return
		}

		if err := c.v.BindPFlag(key, f); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %s: %w", f.Name, err))
		}
	})

	return errors.Join(errs...)
}

func (c *Config) isKey(key string) bool {
	switch key {
	case KeyAPIURL, KeyToken, KeyStorage, KeyDataDir, KeyDuplicates,
		KeyPersistErrors, KeyLogLevel, KeyLogFormat:
		return true
	}

	return false
}

func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

// GetAPIURL returns the REST API base URL.
func (c *Config) GetAPIURL() string { return c.v.GetString(KeyAPIURL) }

// GetToken returns the static API token. GITHUB_TOKEN and GH_TOKEN are used
// when GHEXPLORER_TOKEN is not set.
func (c *Config) GetToken() string {
	if t := c.v.GetString(KeyToken); t != "" {
		return t
	}

	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t
	}

	return os.Getenv("GH_TOKEN")
}

// GetStorage returns the storage backend name.
func (c *Config) GetStorage() string {
	return strings.ToLower(strings.TrimSpace(c.v.GetString(KeyStorage)))
}

// GetDataDir returns the directory holding the database, config and logs.
func (c *Config) GetDataDir() (string, error) {
	if d := c.v.GetString(KeyDataDir); d != "" {
		return filepath.Clean(d), nil
	}

	return application.GetApplicationDirectory()
}

// GetDuplicatePolicy returns how re-adding a saved project is handled.
func (c *Config) GetDuplicatePolicy() model.DuplicatePolicy {
	return model.ParseDuplicatePolicy(c.v.GetString(KeyDuplicates))
}

// GetPersistMode returns how storage write failures are handled.
func (c *Config) GetPersistMode() model.PersistMode {
	return model.ParsePersistMode(c.v.GetString(KeyPersistErrors))
}

// GetLogLevel maps log_level to slog.Level.
// Recognized values: debug, info, warn|warning (default), error.
func (c *Config) GetLogLevel() slog.Level {
	switch strings.ToLower(c.v.GetString(KeyLogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// GetLogFormat returns "json" or "text".
func (c *Config) GetLogFormat() string {
	if strings.EqualFold(c.v.GetString(KeyLogFormat), "json") {
		return "json"
	}

	return "text"
}

// OnLogLevelChange calls fn with the slog.Level whenever the config file
// changes. The initial call is made immediately.
func (c *Config) OnLogLevelChange(fn func(slog.Level)) {
	apply := func() { fn(c.GetLogLevel()) }
	apply()
	c.v.OnConfigChange(func(fsnotify.Event) { apply() })
}

// Watch starts watching the config file, if one was read.
func (c *Config) Watch() {
	if c.File() != "" {
		c.v.WatchConfig()
	}
}

// Settings returns the effective settings with the token masked.
func (c *Config) Settings() map[string]string {
	token := "(not set)"
	if c.GetToken() != "" {
		token = "(set)"
	}

	dataDir, err := c.GetDataDir()
	if err != nil {
		dataDir = "(unavailable: " + err.Error() + ")"
	}

	return map[string]string{
		KeyAPIURL:        c.GetAPIURL(),
		KeyToken:         token,
		KeyStorage:       c.GetStorage(),
		KeyDataDir:       dataDir,
		KeyDuplicates:    c.GetDuplicatePolicy().String(),
		KeyPersistErrors: c.GetPersistMode().String(),
		KeyLogLevel:      strings.ToLower(c.GetLogLevel().String()),
		KeyLogFormat:     c.GetLogFormat(),
	}
}
