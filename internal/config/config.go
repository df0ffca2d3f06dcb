// Package config provides configuration loading for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ekta-240/provider-pulse/internal/common"
)

// Config holds the full application configuration.
type Config struct {
	API     APIConfig     `yaml:"api" mapstructure:"api"`
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// APIConfig configures the validation backend connection.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// BatchConfig configures the run-batch operation.
type BatchConfig struct {
	Type string `yaml:"type" mapstructure:"type"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// SetDefaults registers defaults on the global viper instance.
func SetDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:8000")
	viper.SetDefault("api.timeout", 30*time.Second)
	viper.SetDefault("batch.type", "daily")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// Load reads the resolved configuration out of viper and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.API.BaseURL == "" {
		return Config{}, common.NewUserError("api.base_url must be set", common.ErrMissingConfig)
	}
	if cfg.API.Timeout <= 0 {
		return Config{}, common.NewUserError("api.timeout must be positive", common.ErrInvalidConfig)
	}
	return cfg, nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
