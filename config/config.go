// Package config loads server settings from flags, environment, an optional
// YAML file, and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// Config keys. Each is also read from the upper-cased environment variable.
const (
	KeyPort      = "port"
	KeyDBPath    = "db_path"
	KeyStaticDir = "static_dir"
	KeyLogLevel  = "log_level"
)

const (
	defaultPort      = 3000
	defaultDBPath    = "./todo.db"
	defaultStaticDir = "."
	defaultLogLevel  = "info"
)

// Config holds the resolved server settings
type Config struct {
	Port      int
	DBPath    string
	StaticDir string
	LogLevel  slog.Level
}

// Addr returns the listen address for Port
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// New returns a viper instance with defaults and environment lookups set.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, defaultPort)
	v.SetDefault(KeyDBPath, defaultDBPath)
	v.SetDefault(KeyStaticDir, defaultStaticDir)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration. configFile is optional; when set it must
// exist and be readable.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:      v.GetInt(KeyPort),
		DBPath:    v.GetString(KeyDBPath),
		StaticDir: v.GetString(KeyStaticDir),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %q", v.GetString(KeyPort))
	}
	if cfg.DBPath == "" {
		return nil, errors.New("db_path must not be empty")
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}
