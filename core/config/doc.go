// Package config provides configuration management for the build pipeline.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Log: logging level and format
//   - Database: SQLite store path
//   - Fetch: retry budget and timeouts for HTTP retrieval
//   - Storage: S3/MinIO credentials and bucket for publishing
//   - Signbank / Freelex: content source hosts and credentials
//   - Images: thumbnailing and compression parameters
//   - Build: file and folder layout of one run
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Signbank.Host)
package config
