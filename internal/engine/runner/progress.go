package runner

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Progress tracks and renders query status to an io.Writer (typically stderr).
// Output is suppressed for machine-readable formats.
type Progress struct {
	w          io.Writer
	suppressed bool
	mu         sync.Mutex
	results    []queryStatus
}

type queryStatus struct {
	name     string
	err      error
	duration time.Duration
}

// NewProgress creates a new progress tracker writing to w.
// If suppressed is true, no output is produced.
func NewProgress(w io.Writer, suppressed bool) *Progress {
	return &Progress{w: w, suppressed: suppressed}
}

// OnStart is called when a query begins.
func (p *Progress) OnStart(name string) {
	if p.suppressed {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "  ⏳ %s\n", name)
}

// OnComplete is called when a query finishes, successfully or not.
func (p *Progress) OnComplete(name string, err error, dur time.Duration) {
	if p.suppressed {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.results = append(p.results, queryStatus{name: name, err: err, duration: dur})

	icon := "✅"
	if err != nil {
		icon = "❌"
	}
	fmt.Fprintf(p.w, "  %s %s  %s\n", icon, name, formatDuration(dur))
}

// Finish prints a summary line once every query has completed.
func (p *Progress) Finish() {
	if p.suppressed {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	failed := 0
	for _, r := range p.results {
		if r.err != nil {
			failed++
		}
	}

	if failed == 0 {
		fmt.Fprintf(p.w, "✅ %d categories collected\n", len(p.results))
		return
	}
	fmt.Fprintf(p.w, "Results: %d ok, %d failed\n", len(p.results)-failed, failed)
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
