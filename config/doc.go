// Package config provides configuration loading and validation for dagkit
// applications.
//
// It uses Viper to load configuration from a YAML file, layers .env files
// and process environment variables on top, and unmarshals the result into
// an application config struct. Applications embed AppConfig to get the
// shared fields (name, environment, logging) plus defaulting and
// validation for free.
//
// # Usage
//
//	type Config struct {
//	    config.AppConfig `yaml:",inline" mapstructure:",squash"`
//	    TopN int `yaml:"top_n" mapstructure:"top_n"`
//	}
//
//	var cfg Config
//	err := config.Load("wordfreq", &cfg)
//
// Environment variables override file values using underscore-separated
// paths (e.g. LOGGING_LEVEL overrides logging.level).
package config
