package main

import (
	"github.com/retroenv/retrogolib/log"
)

// createLogger builds the application logger.
func createLogger(debug bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}
