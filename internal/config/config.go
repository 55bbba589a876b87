package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type UploadsConfig struct {
	Dir string `mapstructure:"dir"`
}

// Addr returns the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads configuration from the given YAML file (or config.yaml in the
// working directory when file is empty), with MARKETPLACE_* environment
// variables taking precedence. A missing config file is fine; defaults and
// environment cover everything.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("database.path", "./data/marketplace.db")
	v.SetDefault("uploads.dir", "./data/uploads")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("MARKETPLACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}
