package config

import (
	"os"
)

type LogConfig struct {
	LogLevel   string `env:"LOG_LEVEL"`
	LogHandler string `env:"LOG_HANDLER"`
}

func NewLogConfig() *LogConfig {
	config := &LogConfig{
		LogLevel:   os.Getenv("LOG_LEVEL"),
		LogHandler: os.Getenv("LOG_HANDLER"),
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogHandler == "" {
		config.LogHandler = "default"
	}

	return config
}
