package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SPLITFILE_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("target-dir", os.Getenv("SPLITFILE_TARGET_DIR"), &cfg.TargetDir)
	s.setString("encoding", os.Getenv("SPLITFILE_ENCODING"), &cfg.Encoding)

	s.setBoolFromString("title", os.Getenv("SPLITFILE_TITLE"), &cfg.Title)
	s.setBoolFromString("verbose", os.Getenv("SPLITFILE_VERBOSE"), &cfg.Verbose)
	s.setBoolFromString("watch", os.Getenv("SPLITFILE_WATCH"), &cfg.Watch)

	return s.setDuration("debounce", os.Getenv("SPLITFILE_DEBOUNCE"), &cfg.Debounce)
}
