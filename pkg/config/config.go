// Package config loads Playfair settings from a TOML file.
//
// The file is optional. Without one, [Default] applies; command-line flags
// override whatever the file sets.
//
//	[server]
//	addr = "127.0.0.1:5000"
//	read_timeout = "10s"
//	write_timeout = "10s"
//	shutdown_timeout = "5s"
//	max_body_bytes = 65536
//
//	[log]
//	level = "info"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/playfair/pkg/errors"
)

// appName is used for the default config directory.
const appName = "playfair"

// Defaults.
const (
	DefaultAddr            = "127.0.0.1:5000"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultMaxBodyBytes    = 1 << 16
	DefaultLogLevel        = "info"
)

// Config is the complete settings file.
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the HTTP front end.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	MaxBodyBytes    int64    `toml:"max_body_bytes"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a string such as "10s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ReadTimeout:     Duration{DefaultReadTimeout},
			WriteTimeout:    Duration{DefaultWriteTimeout},
			ShutdownTimeout: Duration{DefaultShutdownTimeout},
			MaxBodyBytes:    DefaultMaxBodyBytes,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/playfair/config.toml, falling back to
// ~/.config/playfair/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path on top of [Default].
//
// An empty path means [DefaultPath]; a missing file there is not an error and
// yields the defaults. A missing file at an explicit path is an error.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, perrors.New(perrors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return perrors.New(perrors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 || c.Server.ShutdownTimeout.Duration < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfig, "server timeouts cannot be negative")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return perrors.New(perrors.ErrCodeInvalidConfig, "server.max_body_bytes must be positive")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "log.level %q", c.Log.Level)
	}
	return level, nil
}
