// Package cliconfig assembles the splitfile configuration from flags,
// environment variables and an optional TOML file, in that precedence
// order.
package cliconfig

import (
	"fmt"
	"time"

	"github.com/d1mav0lk0v/split-file/internal/domain"
)

// Config holds the CLI configuration for splitfile.
type Config struct {
	// Source and TargetDir come from the positional arguments.
	Source    string
	TargetDir string

	// NLines and NFiles are mutually exclusive; exactly one must be
	// positive. Validate enforces this.
	NLines int
	NFiles int

	Encoding string
	Title    bool
	Verbose  bool

	Watch    bool
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Debounce: 200 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source file is required")
	}
	if c.NLines < 0 {
		return fmt.Errorf("not a positive integer: %d", c.NLines)
	}
	if c.NFiles < 0 {
		return fmt.Errorf("not a positive integer: %d", c.NFiles)
	}
	if (c.NLines > 0) == (c.NFiles > 0) {
		return fmt.Errorf("exactly one of --nlines and --nfiles is required")
	}
	if c.Debounce <= 0 {
		c.Debounce = 200 * time.Millisecond
	}
	return nil
}

// Directive builds the split directive from the validated nlines/nfiles
// setting. Call only after Validate.
func (c *Config) Directive() domain.Directive {
	if c.NLines > 0 {
		return domain.ByLineCount(c.NLines)
	}
	return domain.ByFileCount(c.NFiles)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
