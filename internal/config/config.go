// Package config loads bddkit settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Logging configures the zap logger.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Config is the full bddkit configuration.
type Config struct {
	Env        string        `yaml:"env"`
	CheckDelay time.Duration `yaml:"check_delay"`
	DBPath     string        `yaml:"db_path"`
	Log        Logging       `yaml:"log"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Env:        "local",
		CheckDelay: 500 * time.Millisecond,
		DBPath:     "bddkit.db",
		Log:        Logging{Level: "info", Format: "console"},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when path is empty)
// and then the BDDKIT_* environment variables, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	// life.Life reads a zero delay as its default, so zero cannot mean "no delay".
	if c.CheckDelay <= 0 {
		errs = append(errs, errors.New("config: check_delay must be > 0"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("config: db_path must be set"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("config: unknown log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("config: unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

func (c *Config) applyEnv() error {
	c.Env = getenv("BDDKIT_ENV", c.Env)
	c.DBPath = getenv("BDDKIT_DB", c.DBPath)
	c.Log.Level = getenv("BDDKIT_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenv("BDDKIT_LOG_FORMAT", c.Log.Format)

	if v := os.Getenv("BDDKIT_CHECK_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: BDDKIT_CHECK_DELAY: %w", err)
		}
		c.CheckDelay = d
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
