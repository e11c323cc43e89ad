package split

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/d1mav0lk0v/split-file/internal/domain"
)

func TestWatch_ResplitsOnSourceChange(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "data.txt", "a\nb\n")

	s, err := New(Config{Source: source, Directive: domain.ByLineCount(1)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, s, 20*time.Millisecond, zerolog.Nop())
	}()

	// Give the watcher time to register before touching the source.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(source, []byte("x\ny\nz\n"), 0o644); err != nil {
		t.Fatalf("rewrite source: %v", err)
	}

	// The re-split of the three-line source should produce a third file.
	third := filepath.Join(dir, "data_3.txt")
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(third); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for re-split output")
		}
		time.Sleep(20 * time.Millisecond)
	}

	if got := readFile(t, third); got != "z" {
		t.Errorf("third file = %q, want %q", got, "z")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch() did not stop after cancellation")
	}
}

func TestWatch_BadDirectory(t *testing.T) {
	s, err := New(Config{
		Source:    filepath.Join(t.TempDir(), "missing", "data.txt"),
		Directive: domain.ByLineCount(1),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := Watch(context.Background(), s, 0, zerolog.Nop()); err == nil {
		t.Error("Watch() error = nil, want watch setup error")
	}
}
