package config

import (
	"github.com/kbukum/dagkit/errors"
	"github.com/kbukum/dagkit/logger"
	"github.com/kbukum/dagkit/validation"
)

// AppConfig contains the configuration fields every dagkit application
// needs. Applications extend it by embedding:
//
//	type Config struct {
//	    config.AppConfig `yaml:",inline" mapstructure:",squash"`
//	    TopN int `yaml:"top_n" mapstructure:"top_n"`
//	}
type AppConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetAppConfig returns the embedded AppConfig. Promotion through
// embedding lets any application config satisfy the App interface.
func (c *AppConfig) GetAppConfig() *AppConfig { return c }

// ApplyDefaults fills unset fields. Embedding structs override this and
// call c.AppConfig.ApplyDefaults() first.
func (c *AppConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the shared fields. Embedding structs override this and
// call c.AppConfig.Validate() first.
func (c *AppConfig) Validate() error {
	if err := validation.New().
		Required("name", c.Name).
		OneOf("environment", c.Environment, "development", "staging", "production").
		Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig("logging: " + err.Error()).WithCause(err)
	}
	return nil
}

// App is satisfied by any struct embedding AppConfig.
type App interface {
	GetAppConfig() *AppConfig
	ApplyDefaults()
	Validate() error
}
