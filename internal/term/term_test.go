package term

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestReporter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporterWriter(&buf, true)

	r.Start()
	r.Created("/tmp/data_1.txt")
	r.Success()

	want := "start...\n/tmp/data_1.txt\nsuccess!\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestReporter_QuietSkipsPaths(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporterWriter(&buf, false)

	r.Start()
	r.Created("/tmp/data_1.txt")
	r.Success()

	if strings.Contains(buf.String(), "data_1.txt") {
		t.Errorf("quiet output contains path: %q", buf.String())
	}
}

func TestReporter_Errorf(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporterWriter(&buf, false)

	r.Errorf("boom: %d", 42)
	if got := buf.String(); got != "error: boom: 42\n" {
		t.Errorf("output = %q", got)
	}
}

func TestSpinner_DisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "working", time.Millisecond, false)

	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("disabled spinner wrote %q", buf.String())
	}
}

func TestSpinner_StartStop(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "working", time.Millisecond, true)

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "working") {
		t.Errorf("spinner output missing message: %q", buf.String())
	}

	// Stop on a stopped spinner must not panic or block.
	s.Stop()
}
