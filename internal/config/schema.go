package config

import "log/slog"

// Config is the top-level settings file.
type Config struct {
	Version string      `yaml:"version" toml:"version"`
	Display DisplayConf `yaml:"display" toml:"display"`
	Log     LogConf     `yaml:"log" toml:"log"`
	Metrics MetricsConf `yaml:"metrics" toml:"metrics"`
}

// DisplayConf controls how the session talks to the user.
type DisplayConf struct {
	Indent     int    `yaml:"indent" toml:"indent"`           // spaces per tree level
	Prompt     string `yaml:"prompt" toml:"prompt"`           // written before each read on a terminal
	SortLocale string `yaml:"sort_locale" toml:"sort_locale"` // empty = byte order
}

// LogConf selects the slog level.
type LogConf struct {
	Level string `yaml:"level" toml:"level"` // debug | info | warn | error
}

// SlogLevel parses Level, falling back to warn.
func (c LogConf) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// MetricsConf configures the optional HTTP listener.
type MetricsConf struct {
	Addr string `yaml:"addr" toml:"addr"` // empty = disabled
}

// Default returns the settings used when no file is given.
func Default() *Config {
	cfg := &Config{Version: "v1"}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Display.Indent == 0 {
		cfg.Display.Indent = 4
	}
	if cfg.Display.Prompt == "" {
		cfg.Display.Prompt = " "
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
}
