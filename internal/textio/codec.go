// Package textio reads and writes text files under a named character
// encoding, preserving each line's original terminator so split output
// files round-trip byte-for-byte.
package textio

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Codec decodes source bytes and encodes output bytes under one named
// character encoding. The zero Codec (empty name) passes UTF-8 through
// untouched, which is the tool's default.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// NewCodec resolves an encoding by its IANA name ("ISO-8859-1",
// "windows-1251", "UTF-16BE", ...). An empty name yields the passthrough
// codec. Unknown or unsupported names fail before anything is read.
func NewCodec(name string) (Codec, error) {
	if name == "" {
		return Codec{}, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return Codec{}, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		// The IANA index knows the name but carries no implementation.
		return Codec{}, fmt.Errorf("unsupported encoding %q", name)
	}
	return Codec{name: name, enc: enc}, nil
}

// Name returns the encoding name the codec was built with, empty for the
// passthrough codec.
func (c Codec) Name() string { return c.name }

// DecodeReader wraps r so that reads yield UTF-8 text. Invalid byte
// sequences under the declared encoding surface as read errors.
func (c Codec) DecodeReader(r io.Reader) io.Reader {
	if c.enc == nil {
		return r
	}
	return transform.NewReader(r, c.enc.NewDecoder())
}

// EncodeWriter wraps w so that UTF-8 writes come out in the codec's
// encoding. Close flushes the transform; it does not close w.
func (c Codec) EncodeWriter(w io.Writer) io.WriteCloser {
	if c.enc == nil {
		return nopWriteCloser{w}
	}
	return transform.NewWriter(w, c.enc.NewEncoder())
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
