// Package formatter renders working-tree snapshots for the CLI, JSON and SARIF consumers.
package formatter

import (
	"fmt"

	"github.com/irahardianto/glide/internal/engine/git"
)

// Snapshot holds the root and the three raw change sets of one working tree.
type Snapshot struct {
	Root       string `json:"root"`
	Staged     string `json:"staged"`
	Unstaged   string `json:"unstaged"`
	Untracked  string `json:"untracked"`
	DurationMs int64  `json:"duration_ms"`
}

// Clean reports whether no category has any change.
func (s Snapshot) Clean() bool {
	return s.Staged == "" && s.Unstaged == "" && s.Untracked == ""
}

// StagedFiles returns the paths touched by the staged diff.
func (s Snapshot) StagedFiles() []string {
	return diffPaths(s.Staged)
}

// UnstagedFiles returns the paths touched by the unstaged diff.
func (s Snapshot) UnstagedFiles() []string {
	return diffPaths(s.Unstaged)
}

// UntrackedFiles returns the untracked paths.
func (s Snapshot) UntrackedFiles() []string {
	return git.SplitPaths(s.Untracked)
}

func diffPaths(raw string) []string {
	var paths []string
	for _, d := range git.SplitDiffs(raw) {
		paths = append(paths, d.Path)
	}
	return paths
}

// Formatter formats a Snapshot into a human-readable or machine-readable string.
type Formatter interface {
	Format(s Snapshot) string
}

// Output formats accepted by New.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSarif = "sarif"
)

// New returns the Formatter for format. Color and verbose only affect the text format.
func New(format string, color, verbose bool) (Formatter, error) {
	switch format {
	case FormatText, "":
		return NewCLIFormatter(color, verbose), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatSarif:
		return NewSarifFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (valid: text, json, sarif)", format)
	}
}
