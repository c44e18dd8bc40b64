package formatter

import (
	"bytes"
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	toolName       = "glide"
	informationURI = "https://github.com/irahardianto/glide"
)

// SARIF rule IDs, one per change category.
const (
	// RuleStaged marks a path with changes recorded in the index.
	RuleStaged = "staged-change"
	// RuleUnstaged marks a path with working-tree changes not yet staged.
	RuleUnstaged = "unstaged-change"
	// RuleUntracked marks an untracked, non-ignored path.
	RuleUntracked = "untracked-file"
)

// SarifFormatter outputs a Snapshot as a SARIF v2.1.0 log with one note per changed path.
type SarifFormatter struct{}

// NewSarifFormatter creates a new SarifFormatter.
func NewSarifFormatter() *SarifFormatter {
	return &SarifFormatter{}
}

// Format implements the Formatter interface.
func (f *SarifFormatter) Format(s Snapshot) string {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}

	run := sarif.NewRunWithInformationURI(toolName, informationURI)

	categories := []struct {
		rule        string
		description string
		message     string
		paths       []string
	}{
		{RuleStaged, "File has changes recorded in the index.", "staged change", s.StagedFiles()},
		{RuleUnstaged, "File has working-tree changes not yet in the index.", "unstaged change", s.UnstagedFiles()},
		{RuleUntracked, "File is not tracked and not ignored.", "untracked file", s.UntrackedFiles()},
	}

	for _, c := range categories {
		run.AddRule(c.rule).WithDescription(c.description)
		for _, p := range c.paths {
			location := sarif.NewLocationWithPhysicalLocation(
				sarif.NewPhysicalLocation().WithArtifactLocation(sarif.NewSimpleArtifactLocation(p)),
			)
			run.CreateResultForRule(c.rule).
				WithLevel("note").
				WithMessage(sarif.NewTextMessage(fmt.Sprintf("%s: %s", c.message, p))).
				WithLocations([]*sarif.Location{location})
		}
	}

	report.AddRun(run)

	var buf bytes.Buffer
	if err := report.PrettyWrite(&buf); err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return buf.String()
}
