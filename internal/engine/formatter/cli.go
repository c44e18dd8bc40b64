package formatter

import (
	"fmt"
	"strings"
)

// ANSI color codes.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiRed    = "\033[31m"
	ansiDim    = "\033[2m"
)

// CLIFormatter outputs a Snapshot as a human-readable report.
type CLIFormatter struct {
	Color   bool
	Verbose bool
}

// NewCLIFormatter creates a new CLIFormatter.
func NewCLIFormatter(color, verbose bool) *CLIFormatter {
	return &CLIFormatter{Color: color, Verbose: verbose}
}

// Format returns a formatted CLI report.
// In verbose mode the raw diffs follow each file list.
func (f *CLIFormatter) Format(s Snapshot) string {
	var b strings.Builder

	staged := s.StagedFiles()
	unstaged := s.UnstagedFiles()
	untracked := s.UntrackedFiles()

	// Header
	if s.Clean() {
		b.WriteString(fmt.Sprintf("\n%s %s — clean in %dms\n",
			f.colorize("✅", ansiGreen),
			f.colorize(s.Root, ansiBold),
			s.DurationMs))
		return b.String()
	}

	total := len(staged) + len(unstaged) + len(untracked)
	b.WriteString(fmt.Sprintf("\n%s %s — %d change(s) in %dms\n",
		f.colorize("📝", ansiYellow),
		f.colorize(s.Root, ansiBold),
		total,
		s.DurationMs))

	f.writeSection(&b, "Staged", staged, ansiGreen, s.Staged)
	f.writeSection(&b, "Unstaged", unstaged, ansiRed, s.Unstaged)
	f.writeSection(&b, "Untracked", untracked, ansiCyan, "")

	return b.String()
}

func (f *CLIFormatter) writeSection(b *strings.Builder, title string, paths []string, color, raw string) {
	if len(paths) == 0 {
		return
	}

	b.WriteString(fmt.Sprintf("\n  %s %s\n", f.colorize(title, ansiBold), f.colorize(fmt.Sprintf("(%d)", len(paths)), ansiDim)))
	for _, p := range paths {
		b.WriteString(fmt.Sprintf("    %s\n", f.colorize(p, color)))
	}

	if f.Verbose && raw != "" {
		b.WriteString(fmt.Sprintf("\n    %s\n", f.colorize("--- raw diff ---", ansiDim)))
		var hl strings.Builder
		if err := Highlight(&hl, raw, f.Color); err != nil {
			b.WriteString(raw)
			return
		}
		b.WriteString(hl.String())
	}
}

func (f *CLIFormatter) colorize(s, code string) string {
	if !f.Color {
		return s
	}
	return code + s + ansiReset
}
