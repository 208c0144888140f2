package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Log     LogConfig
	Theme   ThemeConfig
}

type ServerConfig struct {
	Port int
}

type StorageConfig struct {
	Dir string
}

type LogConfig struct {
	Level string
}

type ThemeConfig struct {
	Default string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8090)
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("THEME_DEFAULT", "system")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Storage: StorageConfig{
			Dir: viper.GetString("DATA_DIR"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Theme: ThemeConfig{
			Default: viper.GetString("THEME_DEFAULT"),
		},
	}

	return cfg, nil
}
