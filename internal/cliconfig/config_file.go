package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the file-configurable subset of Config. Positional
// arguments and the split directive stay on the command line; the file
// supplies standing defaults only.
type FileConfig struct {
	TargetDir string `toml:"target_dir"`
	Encoding  string `toml:"encoding"`
	Title     *bool  `toml:"title"`
	Verbose   *bool  `toml:"verbose"`
	Watch     *bool  `toml:"watch"`
	Debounce  string `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.splitfile/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".splitfile", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("target-dir", fc.TargetDir, &cfg.TargetDir)
	s.setString("encoding", fc.Encoding, &cfg.Encoding)

	s.setBool("title", fc.Title, &cfg.Title)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return s.setDuration("debounce", fc.Debounce, &cfg.Debounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
