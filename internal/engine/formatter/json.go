package formatter

import (
	"encoding/json"
)

// JSONFormatter outputs a Snapshot as pretty-printed JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type changeSetJSON struct {
	Files []string `json:"files"`
	Raw   string   `json:"raw"`
}

type snapshotJSON struct {
	Root       string        `json:"root"`
	Clean      bool          `json:"clean"`
	DurationMs int64         `json:"duration_ms"`
	Staged     changeSetJSON `json:"staged"`
	Unstaged   changeSetJSON `json:"unstaged"`
	Untracked  changeSetJSON `json:"untracked"`
}

// Format returns the Snapshot as indented JSON with derived file lists.
func (f *JSONFormatter) Format(s Snapshot) string {
	out := snapshotJSON{
		Root:       s.Root,
		Clean:      s.Clean(),
		DurationMs: s.DurationMs,
		Staged:     changeSetJSON{Files: nonNil(s.StagedFiles()), Raw: s.Staged},
		Unstaged:   changeSetJSON{Files: nonNil(s.UnstagedFiles()), Raw: s.Unstaged},
		Untracked:  changeSetJSON{Files: nonNil(s.UntrackedFiles()), Raw: s.Untracked},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		// Fallback: should never happen since the view is plain data.
		return `{"error": "failed to marshal snapshot"}`
	}
	return string(data) + "\n"
}

// nonNil keeps empty lists as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
