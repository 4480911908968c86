package config

import (
	"strings"

	"bookstore/pkg/logger"
)

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"BOOKSTORE_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"BOOKSTORE_LOGGER_MODE" env-default:"production"`
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if strings.EqualFold(c.Mode, string(logger.Development)) {
		return logger.Development
	}
	return logger.Production
}
