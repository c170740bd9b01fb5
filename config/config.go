package config

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
)

type Config struct {
	LogFile  string `toml:"LogFile"`
	LogLevel string `toml:"LogLevel"` // debug, info, warn, error
	// empty DBPATH disables operation history
	DBPATH         string `toml:"DBPATH"`
	OutputPath     string `toml:"OutputPath"`
	MarkExecutable bool   `toml:"MarkExecutable"`
	// server
	ServerAddr   string `toml:"ServerAddr"`
	ServerPort   int    `toml:"ServerPort"`
	ReadTimeout  int    `toml:"ReadTimeout"`  // seconds
	WriteTimeout int    `toml:"WriteTimeout"` // seconds
	MaxBodyBytes int64  `toml:"MaxBodyBytes"`
	// tui
	ColorScheme string `toml:"ColorScheme"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		OutputPath:   "output.png",
		ServerAddr:   "localhost",
		ServerPort:   3333,
		ReadTimeout:  5,
		WriteTimeout: 5,
		MaxBodyBytes: 64 << 20,
		ColorScheme:  "default",
	}
}

// LoadConfig reads fn on top of the defaults. A missing file is not an error.
func LoadConfig(fn string) (*Config, error) {
	if fn == "" {
		fn = "config.toml"
	}
	config := defaultConfig()
	_, err := toml.DecodeFile(fn, config)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, err
	}
	// if any value is empty fill with default
	def := defaultConfig()
	if config.OutputPath == "" {
		config.OutputPath = def.OutputPath
	}
	if config.ServerPort == 0 {
		config.ServerPort = def.ServerPort
	}
	if config.ReadTimeout <= 0 {
		config.ReadTimeout = def.ReadTimeout
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = def.WriteTimeout
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = def.MaxBodyBytes
	}
	return config, nil
}
