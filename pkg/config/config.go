package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig
	Logging LoggingConfig
}

type APIConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	TokenFile string `mapstructure:"token_file"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.oneflow/")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("ONEFLOW")
	viper.AutomaticEnv()

	viper.SetDefault("api.base_url", "http://localhost:3001/api")
	viper.SetDefault("api.token_file", defaultTokenFile())
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".oneflow_token"
	}
	return filepath.Join(home, ".oneflow", "token")
}
