// Package config defines the application's typed configuration and loads
// it from environment variables and an optional YAML file via viper,
// validating the result with go-playground/validator.
package config
