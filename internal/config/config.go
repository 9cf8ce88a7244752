package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr     string
		DiagAddr string
	}
}

// Load reads config.yaml when present and MICROBLOG_* environment
// variables, falling back to defaults. A missing config file is not an
// error.
func Load() (*Config, error) {
	viper.SetDefault("server.addr", ":3333")
	viper.SetDefault("server.diagaddr", ":9999")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("MICROBLOG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
