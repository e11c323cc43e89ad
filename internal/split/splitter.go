// Package split orchestrates one split run: read the source through its
// codec, partition the body lines, write the output files in order.
package split

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/d1mav0lk0v/split-file/internal/domain"
	"github.com/d1mav0lk0v/split-file/internal/textio"
)

// Config holds everything one split run needs.
type Config struct {
	// Source is the path of the file to split.
	Source string

	// TargetDir receives the output files. Empty means the source's
	// directory.
	TargetDir string

	// Encoding is the IANA name used for reading the source and writing
	// the outputs. Empty means UTF-8 passthrough.
	Encoding string

	// Title treats the first source line as a title repeated at the top
	// of every output file and excluded from partition accounting.
	Title bool

	// Directive selects lines-per-file or number-of-files splitting.
	Directive domain.Directive
}

// Splitter performs split runs. Output files are opened, written and
// closed strictly one after another; a failure partway through leaves the
// files already written in place.
type Splitter struct {
	cfg      Config
	log      zerolog.Logger
	reporter Reporter
}

// New creates a Splitter for the given configuration.
func New(cfg Config, opts ...Option) (*Splitter, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("split: source file is required")
	}
	if err := cfg.Directive.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Splitter{cfg: cfg, log: o.logger, reporter: o.reporter}, nil
}

// Run executes one split and returns the paths of the files it created,
// in creation order. Files created before an error remain on disk and are
// included in the returned slice.
func (s *Splitter) Run(ctx context.Context) ([]string, error) {
	codec, err := textio.NewCodec(s.cfg.Encoding)
	if err != nil {
		return nil, err
	}

	lines, err := textio.ReadLines(s.cfg.Source, codec)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	var title string
	body := lines
	if s.cfg.Title && len(lines) > 0 {
		title = lines[0]
		body = lines[1:]
	}

	plan, err := domain.Partition(len(body), s.cfg.Directive)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("source", s.cfg.Source).
		Stringer("directive", s.cfg.Directive).
		Int("body_lines", len(body)).
		Int("files", len(plan)).
		Msg("partition computed")

	created := make([]string, 0, len(plan))
	for i, r := range plan {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		path := OutputPath(s.cfg.Source, s.cfg.TargetDir, i+1)
		if err := textio.WriteLines(path, codec, title, body[r.Start:r.End]); err != nil {
			return created, fmt.Errorf("write %s: %w", path, err)
		}
		created = append(created, path)
		s.reporter.Created(path)
		s.log.Debug().Str("path", path).Int("lines", r.Len()).Msg("output file written")
	}
	return created, nil
}

// Source returns the configured source path.
func (s *Splitter) Source() string { return s.cfg.Source }
