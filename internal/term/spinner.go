package term

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const spinnerFrames = `|/-\`

// Spinner animates a cursor next to a message while a run is in flight.
// Start on a non-terminal writer is a no-op, so it is safe to use
// unconditionally.
type Spinner struct {
	out      io.Writer
	msg      string
	interval time.Duration
	enabled  bool

	mu      sync.Mutex
	stop    chan struct{}
	stopped chan struct{}
}

// NewSpinner creates a spinner writing msg to out every interval.
// It only animates when enabled (stdout is a terminal).
func NewSpinner(out io.Writer, msg string, interval time.Duration, enabled bool) *Spinner {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Spinner{out: out, msg: msg, interval: interval, enabled: enabled}
}

// Start begins the animation. Calling Start on a running spinner does
// nothing.
func (s *Spinner) Start() {
	if !s.enabled {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})
	go s.spin(s.stop, s.stopped)
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	stop, stopped := s.stop, s.stopped
	s.stop, s.stopped = nil, nil
	s.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-stopped
}

func (s *Spinner) spin(stop <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-stop:
			fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.msg)+4))
			return
		case <-ticker.C:
			fmt.Fprintf(s.out, "\r%s%s %c %s", ansiGreen, s.msg, spinnerFrames[frame%len(spinnerFrames)], ansiReset)
			frame++
		}
	}
}
