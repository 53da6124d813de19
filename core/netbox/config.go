package netbox

import "fmt"

// Config holds connection settings for the asset registry API.
type Config struct {
	// URL is the base URL of the registry, e.g. https://netbox.example.com.
	URL string `mapstructure:"url" default:""`
	// Token is the API token sent as "Authorization: Token <token>".
	Token string `mapstructure:"token" default:""`
	// Timeout is the per-request timeout in seconds.
	Timeout int `mapstructure:"timeout" default:"10"`
}

// Validate checks that the registry connection can be attempted.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("netbox url is required")
	}
	if c.Token == "" {
		return fmt.Errorf("netbox token is required")
	}
	return nil
}
