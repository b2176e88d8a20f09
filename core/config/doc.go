// Package config provides configuration management for the Phrase Agent.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (host, port, optional TLS files)
//   - Log: Logging level and format
//
// Defaults are declared as 'default' struct tags next to the mapstructure
// keys and registered with Viper via reflection, so every key can also be
// overridden through the environment (SERVER_PORT, LOG_LEVEL, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Addr())
package config
