package textio

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestNewCodec(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		wantErr  bool
	}{
		{name: "empty is passthrough", encoding: "", wantErr: false},
		{name: "utf-8", encoding: "UTF-8", wantErr: false},
		{name: "latin-1", encoding: "ISO-8859-1", wantErr: false},
		{name: "windows codepage", encoding: "windows-1251", wantErr: false},
		{name: "unknown name", encoding: "no-such-encoding", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCodec(tt.encoding)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCodec(%q) error = %v, wantErr %v", tt.encoding, err, tt.wantErr)
			}
			if err == nil && c.Name() != tt.encoding {
				t.Errorf("Name() = %q, want %q", c.Name(), tt.encoding)
			}
		})
	}
}

func TestCodec_DecodeReader_Latin1(t *testing.T) {
	c, err := NewCodec("ISO-8859-1")
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	// 0xE9 is é in latin-1.
	src := bytes.NewReader([]byte{'c', 'a', 'f', 0xE9, '\n'})
	got, err := io.ReadAll(c.DecodeReader(src))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "café\n" {
		t.Errorf("decoded = %q, want %q", got, "café\n")
	}
}

func TestCodec_EncodeWriter_Latin1(t *testing.T) {
	c, err := NewCodec("ISO-8859-1")
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	var buf bytes.Buffer
	w := c.EncodeWriter(&buf)
	if _, err := io.WriteString(w, "café"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := []byte{'c', 'a', 'f', 0xE9}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encoded = %v, want %v", buf.Bytes(), want)
	}
}

func TestCodec_Passthrough(t *testing.T) {
	var c Codec

	got, err := io.ReadAll(c.DecodeReader(strings.NewReader("plain\n")))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "plain\n" {
		t.Errorf("decoded = %q, want %q", got, "plain\n")
	}

	var buf bytes.Buffer
	w := c.EncodeWriter(&buf)
	if _, err := io.WriteString(w, "plain\n"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if buf.String() != "plain\n" {
		t.Errorf("encoded = %q, want %q", buf.String(), "plain\n")
	}
}
