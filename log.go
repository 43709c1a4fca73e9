package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// setupLog configures the global logger from the environment. It returns a
// closer for the log file, if one is in use.
func setupLog() (func() error, error) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(true)
	log.SetTimeFormat(time.Kitchen)

	if level := os.Getenv("PETS_LOG_LEVEL"); level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		log.SetLevel(lvl)
	}

	if path := os.Getenv("PETS_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		}
		log.SetOutput(f)
		return f.Close, nil
	}

	// Keep interactive output clean unless the user asked for logs.
	if os.Getenv("PETS_LOG_LEVEL") == "" {
		log.SetOutput(io.Discard)
	}
	return func() error { return nil }, nil
}
