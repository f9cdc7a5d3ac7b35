// Package config provides configuration management for region-cards.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file, an optional config file (config.yaml) and defaults declared
// in struct tags. Command-line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Dataset: resources directory, items/titles file names, image extension, quick flag
//   - Storage: filesystem client settings
//   - Log: Logging level and format
//
// # Validation
//
// Validate checks the `validate` struct tags with go-playground/validator.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Dataset.Dir)
package config
