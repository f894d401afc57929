// Package config provides configuration management for the chest sorter.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file loaded through godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, container backend)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Sorter: default mode, verbosity and the sneak requirement
//
// Defaults come from the `default` struct tags, and every key can be overridden
// by the upper-cased environment variable (sorter.mode -> SORTER_MODE).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sorter.Mode)
package config
