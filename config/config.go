package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file. When configPath is empty and
// no config file exists in the standard locations, the defaults are
// returned; an explicitly named file must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".unstats"))
		}

		// Check /etc
		v.AddConfigPath("/etc/unstats/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %w", err)
			}
			// No config file anywhere is fine, the defaults stand on
			// their own.
		} else {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", "https://unstats.un.org/SDGAPI")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("api.rate_limit_ms", 1000)
	v.SetDefault("api.max_retries", 3)
	v.SetDefault("api.page_size", 1000)

	// Cache defaults
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.max_age_hours", 24)

	// Display defaults
	v.SetDefault("display.page_size", 15)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	if cfg.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive")
	}

	if cfg.API.RateLimitMs < 0 {
		return fmt.Errorf("api.rate_limit_ms must not be negative")
	}

	if cfg.API.MaxRetries < 1 {
		return fmt.Errorf("api.max_retries must be at least 1")
	}

	if cfg.API.PageSize <= 0 {
		return fmt.Errorf("api.page_size must be positive")
	}

	if cfg.Cache.MaxAgeHours < 0 {
		return fmt.Errorf("cache.max_age_hours must not be negative")
	}

	if cfg.Display.PageSize <= 0 {
		return fmt.Errorf("display.page_size must be positive")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
