package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/dagkit/errors"
	"github.com/kbukum/dagkit/util"
)

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string // explicit config file path
	EnvFile    string // explicit .env file path
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load loads configuration for an application into cfg.
//
// Layering, lowest precedence first: config.yml, .env file, process
// environment. Explicit paths win over the search; a missing config file
// is not an error (env-only configuration is valid). Load only
// unmarshals; callers run ApplyDefaults and Validate afterwards, once
// any flag overrides have been applied.
func Load(appName string, cfg any, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFirst(configSearchPaths(appName))
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFirst(envSearchPaths(appName))
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return errors.InvalidConfig(fmt.Sprintf("loading env file %s", envFile)).WithCause(err)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.InvalidConfig(fmt.Sprintf("reading config file %s", configFile)).WithCause(err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvKeys(v, os.Environ())

	if err := v.Unmarshal(cfg); err != nil {
		return errors.InvalidConfig(fmt.Sprintf("unmarshalling config for %s", appName)).WithCause(err)
	}
	return nil
}

func configSearchPaths(appName string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/config.yml", appName),
		fmt.Sprintf("../cmd/%s/config.yml", appName),
		"./config/config.yml",
		"./config.yml",
	}
}

func envSearchPaths(appName string) []string {
	return []string{
		fmt.Sprintf("./.env.%s", appName),
		fmt.Sprintf("./cmd/%s/.env", appName),
		"./.env",
	}
}

func findFirst(paths []string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// bindEnvKeys registers every set environment variable under its nested
// key form so AutomaticEnv resolves it during Unmarshal. LOGGING_LEVEL
// binds both logging_level and logging.level.
func bindEnvKeys(v *viper.Viper, environ []string) {
	for _, env := range environ {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key := strings.ToLower(pair[0])
		value := util.SanitizeEnvValue(pair[1])
		v.Set(key, value)
		if dotted := strings.ReplaceAll(key, "_", "."); dotted != key {
			v.Set(dotted, value)
		}
	}
}
