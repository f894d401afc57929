// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the supported container backends.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, the container backend
// (memory, database, storage) and the world name used in log entries.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the container feature to pick a backend.
package server
