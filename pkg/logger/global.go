package logger

import (
	"os"
	"sync"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the process-wide logger, building it from the
// environment on first use so CLI runs get sensible output before any
// config file is loaded.
func GetLogger() *Logger {
	once.Do(func() {
		if globalLogger == nil {
			globalLogger = New(envConfig())
		}
	})
	return globalLogger
}

// SetLogger replaces the process-wide logger, typically after the
// configured logger section has been loaded.
func SetLogger(logger *Logger) {
	globalLogger = logger
}

// Component returns the process-wide logger tagged with a component
// field. Every pipeline package logs through a component-scoped child.
func Component(name string) *Logger {
	return GetLogger().WithField("component", name)
}

// envConfig derives bootstrap logging settings from the environment.
// DEBUG=true switches to debug-level console output for local runs.
func envConfig() Config {
	cfg := Config{Level: "info", Format: "json", Output: "stdout"}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if os.Getenv("DEBUG") == "true" {
		cfg.Level = "debug"
		cfg.Format = "console"
	}
	return cfg
}
