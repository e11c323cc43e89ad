package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("SPLITFILE_TARGET_DIR", "/env/out")
	t.Setenv("SPLITFILE_ENCODING", "windows-1251")
	t.Setenv("SPLITFILE_VERBOSE", "true")
	t.Setenv("SPLITFILE_TITLE", "1")
	t.Setenv("SPLITFILE_DEBOUNCE", "300ms")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.TargetDir != "/env/out" {
		t.Errorf("TargetDir = %q, want /env/out", cfg.TargetDir)
	}
	if cfg.Encoding != "windows-1251" {
		t.Errorf("Encoding = %q, want windows-1251", cfg.Encoding)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if !cfg.Title {
		t.Error("Title = false, want true")
	}
	if cfg.Debounce != 300*time.Millisecond {
		t.Errorf("Debounce = %v, want 300ms", cfg.Debounce)
	}
}

func TestApplyEnvConfig_FlagsWin(t *testing.T) {
	t.Setenv("SPLITFILE_ENCODING", "windows-1251")

	cfg := DefaultConfig()
	cfg.Encoding = "UTF-8"
	changed := map[string]bool{"encoding": true}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}
	if cfg.Encoding != "UTF-8" {
		t.Errorf("Encoding = %q, want UTF-8 (flag precedence)", cfg.Encoding)
	}
}

func TestApplyEnvConfig_InvalidDebounce(t *testing.T) {
	t.Setenv("SPLITFILE_DEBOUNCE", "garbage")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Error("ApplyEnvConfig() error = nil, want parse error")
	}
}
