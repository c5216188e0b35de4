// Package config provides configuration management for the corpus builder.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live in the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: corpus HTTP server settings (port, API key)
//   - Database: relational backend connection details (mysql, postgres, sqlite)
//   - Metadata: metadata REST backend base URL, region and version
//   - Tree: tree attribute backend base URL
//   - Storage: S3/MinIO credentials and bucket used by publish
//   - Pipeline: output directory, request delay, found-at cap
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Pipeline.OutputDir)
package config
