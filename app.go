package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"pngstash/config"
	"pngstash/storage"
)

var (
	cfg      *config.Config
	logger   *slog.Logger
	logLevel = new(slog.LevelVar)
	// nil when DBPATH is empty
	store   storage.OperationHistory
	logfile io.Closer
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setup loads the config, opens the log file and the optional history db.
func setup(configPath string) error {
	var err error
	cfg, err = config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", configPath, err)
	}
	var out io.Writer = os.Stderr
	logLevel.Set(slog.LevelWarn)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		out = f
		logfile = f
		logLevel.Set(parseLevel(cfg.LogLevel))
	}
	logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: logLevel}))
	if cfg.DBPATH != "" {
		store = storage.NewProviderSQL(cfg.DBPATH, logger)
		if store == nil {
			return fmt.Errorf("failed to open history db %s", cfg.DBPATH)
		}
	}
	return nil
}

func teardown() {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close history db", "error", err)
		}
	}
	if logfile != nil {
		logfile.Close()
	}
}
