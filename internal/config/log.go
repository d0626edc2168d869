package config

import (
	"io"
	"log/slog"
)

// SetupLog configures a global slog logger writing to w whose level follows
// log_level changes.
func SetupLog(cfg *Config, w io.Writer) *slog.Logger {
	var lv slog.LevelVar
	lv.Set(cfg.GetLogLevel())
	cfg.OnLogLevelChange(func(level slog.Level) { lv.Set(level) })

	opts := &slog.HandlerOptions{Level: &lv}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.GetLogFormat() == "json" {
		h = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}
