package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type TerminalOptions struct {
	ReadTimeoutMs int `toml:"read-timeout-ms"`
}

type LogOptions struct {
	File  string `toml:"file"`
	Debug bool   `toml:"debug"`
}

type Config struct {
	Terminal TerminalOptions `toml:"terminal"`
	Log      LogOptions      `toml:"log"`
}

func Default() Config {
	return Config{
		Terminal: TerminalOptions{
			ReadTimeoutMs: 100,
		},
		Log: LogOptions{
			File:  "",
			Debug: false,
		},
	}
}

// ReadTimeout returns the terminal read timeout as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.Terminal.ReadTimeoutMs) * time.Millisecond
}

// Load reads config.toml from the config directory and overlays any
// set fields onto the defaults. A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Terminal.ReadTimeoutMs > 0 {
		cfg.Terminal.ReadTimeoutMs = userCfg.Terminal.ReadTimeoutMs
	}
	if userCfg.Log.File != "" {
		cfg.Log.File = userCfg.Log.File
	}
	if userCfg.Log.Debug {
		cfg.Log.Debug = userCfg.Log.Debug
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("EDITOR_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "editor"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "editor"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
