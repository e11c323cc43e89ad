package domain

import "fmt"

// Mode selects how the source body is partitioned into files.
type Mode int

const (
	// ModeLineCount gives every output file a fixed number of lines,
	// except possibly the last.
	ModeLineCount Mode = iota + 1

	// ModeFileCount spreads the body as evenly as possible over a fixed
	// number of output files.
	ModeFileCount
)

// String returns the mode name as used in CLI flags.
func (m Mode) String() string {
	switch m {
	case ModeLineCount:
		return "nlines"
	case ModeFileCount:
		return "nfiles"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Directive is the split instruction: exactly one mode together with its
// count. The two modes are mutually exclusive by construction; build a
// Directive with ByLineCount or ByFileCount. The zero value is invalid.
type Directive struct {
	mode Mode
	n    int
}

// ByLineCount returns a directive that caps every output file at n lines.
func ByLineCount(n int) Directive {
	return Directive{mode: ModeLineCount, n: n}
}

// ByFileCount returns a directive that spreads the body over n output files.
func ByFileCount(n int) Directive {
	return Directive{mode: ModeFileCount, n: n}
}

// Mode returns the active split mode.
func (d Directive) Mode() Mode { return d.mode }

// N returns the directive's count (lines per file or number of files).
func (d Directive) N() int { return d.n }

// Validate checks that the directive has a known mode and a positive count.
func (d Directive) Validate() error {
	if d.mode != ModeLineCount && d.mode != ModeFileCount {
		return fmt.Errorf("%w: no mode set", ErrInvalidDirective)
	}
	if d.n <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidDirective, d.mode, d.n)
	}
	return nil
}

// String formats the directive for logs.
func (d Directive) String() string {
	return fmt.Sprintf("%s=%d", d.mode, d.n)
}
