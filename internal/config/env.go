package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Env is the configuration read from the process environment.
type Env struct {
	AutoDemo    bool   `env:"MINESWEEPER_AUTODEMO"`
	LogFile     string `env:"MINESWEEPER_LOG_FILE"`
	LogLevel    string `env:"MINESWEEPER_LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT"`
}

func Load() (*Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Level is the configured log level. Development mode always logs at debug.
func (e Env) Level() (logrus.Level, error) {
	if e.Development {
		return logrus.DebugLevel, nil
	}
	level, err := logrus.ParseLevel(strings.TrimSpace(e.LogLevel))
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("MINESWEEPER_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func (e Env) Fields() logrus.Fields {
	return logrus.Fields{
		"autodemo":    e.AutoDemo,
		"log_file":    e.LogFile,
		"log_level":   e.LogLevel,
		"development": e.Development,
	}
}
