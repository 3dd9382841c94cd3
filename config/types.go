package config

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds UN SDG API connection details
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	RateLimitMs    int    `mapstructure:"rate_limit_ms"`
	MaxRetries     int    `mapstructure:"max_retries"`
	PageSize       int    `mapstructure:"page_size"`
}

// CacheConfig controls the on-disk metadata cache. An empty Dir keeps
// cached metadata in memory for the lifetime of the process.
type CacheConfig struct {
	Dir         string `mapstructure:"dir"`
	MaxAgeHours int    `mapstructure:"max_age_hours"`
}

// DisplayConfig contains interactive display settings
type DisplayConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
