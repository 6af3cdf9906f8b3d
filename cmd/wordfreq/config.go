package main

import (
	"github.com/kbukum/dagkit/config"
	"github.com/kbukum/dagkit/errors"
	"github.com/kbukum/dagkit/util"
	"github.com/kbukum/dagkit/validation"
)

// TracingConfig controls the optional OTLP trace/metric export.
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
}

// Config is the wordfreq application configuration.
type Config struct {
	config.AppConfig `yaml:",inline" mapstructure:",squash"`

	// Input is the path of the JSON records file.
	Input string `yaml:"input" mapstructure:"input"`
	// Column names the record field whose values are tokenized.
	Column string `yaml:"column" mapstructure:"column"`
	// Stopwords are excluded from the frequency table.
	Stopwords []string `yaml:"stopwords" mapstructure:"stopwords"`
	// TopN bounds the printed ranking.
	TopN int `yaml:"top_n" mapstructure:"top_n"`
	// MaxParallel bounds concurrent task execution; 0 runs serially.
	MaxParallel int `yaml:"max_parallel" mapstructure:"max_parallel"`
	// PipelineFile optionally overrides the built-in task wiring with a
	// declarative definition.
	PipelineFile string `yaml:"pipeline_file" mapstructure:"pipeline_file"`

	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "wordfreq"
	}
	c.AppConfig.ApplyDefaults()

	if c.Column == "" {
		c.Column = "title"
	}
	if c.TopN == 0 {
		c.TopN = 25
	}
	c.Stopwords = util.Unique(c.Stopwords)
}

func (c *Config) Validate() error {
	if err := c.AppConfig.Validate(); err != nil {
		return err
	}
	if err := validation.New().
		Required("input", c.Input).
		Required("column", c.Column).
		Min("top_n", c.TopN, 1).
		Min("max_parallel", c.MaxParallel, 0).
		Validate(); err != nil {
		return err
	}
	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		return errors.InvalidConfig("tracing.endpoint is required when tracing is enabled")
	}
	return nil
}
