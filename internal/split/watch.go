package split

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the delay between a source file change and the
// re-split it triggers. Editors often produce bursts of write events;
// the debounce collapses each burst into one run.
const DefaultDebounce = 200 * time.Millisecond

// Watch re-runs the splitter whenever its source file is written or
// recreated, until ctx is canceled. Failures of individual re-splits are
// logged and the watch continues; only watcher setup errors are fatal.
func Watch(ctx context.Context, s *Splitter, debounce time.Duration, log zerolog.Logger) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files by rename,
	// which drops a watch registered on the path itself.
	dir := filepath.Dir(s.Source())
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	base := filepath.Base(s.Source())

	log.Info().Str("source", s.Source()).Dur("debounce", debounce).Msg("watching source file")

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Stop()
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			created, err := s.Run(ctx)
			if err != nil {
				log.Error().Err(err).Msg("re-split failed")
				continue
			}
			log.Info().Int("files", len(created)).Msg("source changed, re-split done")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}
