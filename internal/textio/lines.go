package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines reads the whole source file through the codec and returns its
// physical lines. Each line keeps its terminator ("\n" or "\r\n"); the
// last line has none when the file does not end with a newline. An empty
// file yields no lines.
func ReadLines(path string, c Codec) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(c.DecodeReader(f))
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}
}

// WriteLines writes title (when non-empty) followed by lines to a new file
// at path, encoded by the codec. An existing file is overwritten. The
// trailing line terminator is trimmed at end of file, matching how the
// source's last line usually has none.
func WriteLines(path string, c Codec, title string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := c.EncodeWriter(f)
	w := bufio.NewWriter(enc)

	if title != "" {
		if len(lines) == 0 {
			title = trimEOL(title)
		}
		if _, err := w.WriteString(title); err != nil {
			f.Close()
			return err
		}
	}
	for i, line := range lines {
		if i == len(lines)-1 {
			line = trimEOL(line)
		}
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// trimEOL removes one trailing line terminator, handling both "\n" and
// "\r\n".
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
