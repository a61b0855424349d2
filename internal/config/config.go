// Package config provides configuration for the chess match and its console.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Verbosity levels for log output.
const (
	Quiet      = 0 // Nothing
	Summary    = 1 // Check, checkmate and promotion events
	Commentary = 2 // Every accepted and rejected move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=match events, 2=running commentary

	Match  *MatchConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Match:      NewMatchConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w",
			c.Verbosity, Quiet, Commentary, errors.ErrInvalidConfig)
	}
	if c.Match != nil {
		if err := c.Match.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Logf writes a log line when the verbosity is at least level.
// A nil LogFile disables logging.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
