// Package config provides configuration management for the sync service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: status HTTP server settings (port, API key)
//   - Log: logging level and format
//   - Netbox: asset registry URL and token
//   - PDQ: source inventory URL, token, paging and enable flag
//   - Sync: scheduling interval for the daemon
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Netbox.URL)
package config
