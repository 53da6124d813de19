// Package server holds the status HTTP server configuration.
//
// The daemon entry point handles the actual server startup; this package only
// defines the configuration structure (listen port and API key) embedded by
// the core/config package.
package server
