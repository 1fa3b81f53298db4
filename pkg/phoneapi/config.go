package phoneapi

import "time"

// Config represents the configuration for the phone directory client
type Config struct {
	// BaseURL is the server root, e.g. http://localhost:5000
	BaseURL string

	// Timeout bounds a single request; zero means 10 seconds
	Timeout time.Duration

	// RetryCount is the number of retries on network failures
	RetryCount int
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	if c.Timeout < 0 || c.RetryCount < 0 {
		return ErrInvalidConfig
	}
	return nil
}
