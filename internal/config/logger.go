package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 14
)

// NewLogger builds the application logger. With a log file configured the
// entries go to a rotating file only, leaving the terminal to the game.
func NewLogger(cfg Env) (*logrus.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(level)

	if cfg.LogFile == "" {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development})
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
		Level:      level,
		Formatter:  &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)
	return log, nil
}
