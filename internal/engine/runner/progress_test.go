package runner

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestProgress_Suppressed(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, true)

	p.OnStart("staged")
	p.OnComplete("staged", nil, 80*time.Millisecond)
	p.Finish()

	if buf.Len() != 0 {
		t.Errorf("expected no output in suppressed mode, got: %q", buf.String())
	}
}

func TestProgress_AllSucceeded(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, false)

	for _, name := range []string{"staged", "unstaged", "untracked"} {
		p.OnStart(name)
		p.OnComplete(name, nil, 10*time.Millisecond)
	}
	p.Finish()

	output := buf.String()
	if !strings.Contains(output, "✅ staged  10ms") {
		t.Errorf("expected completion line, got:\n%s", output)
	}
	if !strings.Contains(output, "3 categories collected") {
		t.Errorf("expected summary line, got:\n%s", output)
	}
}

func TestProgress_Failure(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, false)

	p.OnComplete("staged", nil, time.Millisecond)
	p.OnComplete("unstaged", errors.New("boom"), 1500*time.Millisecond)
	p.Finish()

	output := buf.String()
	if !strings.Contains(output, "❌ unstaged  1.5s") {
		t.Errorf("expected failure line, got:\n%s", output)
	}
	if !strings.Contains(output, "Results: 1 ok, 1 failed") {
		t.Errorf("expected failure summary, got:\n%s", output)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{999 * time.Millisecond, "999ms"},
		{time.Second, "1.0s"},
		{2500 * time.Millisecond, "2.5s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
