package pdq

import "fmt"

// Config holds connection settings for the source inventory API.
type Config struct {
	// URL is the base URL of the source system.
	URL string `mapstructure:"url" default:""`
	// Token is the API token sent as a bearer credential.
	Token string `mapstructure:"token" default:""`
	// Enabled toggles the connector. A disabled source means the daemon
	// serves its status API but schedules no cycles.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Timeout is the per-request timeout in seconds.
	Timeout int `mapstructure:"timeout" default:"10"`
	// PageSize is the number of devices requested per page.
	PageSize int `mapstructure:"page_size" default:"100"`
}

// Validate checks that the source connection can be attempted.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("pdq url is required")
	}
	if c.Token == "" {
		return fmt.Errorf("pdq token is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("pdq page_size must be positive")
	}
	return nil
}
