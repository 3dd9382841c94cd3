package sdg

import (
	"fmt"
	"time"
)

// DefaultBaseURL is the public endpoint of the UN SDG Global Database.
const DefaultBaseURL = "https://unstats.un.org/SDGAPI"

// Config holds the connection settings for a Client. It is read once at
// construction and never mutated afterwards.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// Timeout bounds each individual request attempt.
	Timeout time.Duration

	// RateLimit is the minimum spacing between requests from this client.
	// Zero disables the cooldown.
	RateLimit time.Duration

	// MaxRetries is the total number of attempts per request, including
	// the first one.
	MaxRetries int

	// PageSize is the number of records requested per page.
	PageSize int
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Timeout:    30 * time.Second,
		RateLimit:  time.Second,
		MaxRetries: 3,
		PageSize:   1000,
	}
}

// validate checks the config against its documented bounds.
func (c Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidConfig)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("%w: max retries must be at least 1", ErrInvalidConfig)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidConfig)
	}
	return nil
}
