package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/irahardianto/glide/internal/engine/history"
)

// FormatHistory renders indexed history as text or JSON.
// SARIF describes findings rather than history and is rejected.
func FormatHistory(format string, r *history.Repository, color bool) (string, error) {
	switch format {
	case "", FormatText:
		return historyText(r, color), nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal history: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("format %q is not supported for history (use %s or %s)", format, FormatText, FormatJSON)
	}
}

func historyText(r *history.Repository, color bool) string {
	c := &CLIFormatter{Color: color}
	var b strings.Builder

	fmt.Fprintf(&b, "Repository %s\n", c.colorize(r.ID, ansiBold))
	for _, br := range r.Branches {
		fmt.Fprintf(&b, "\nBranch %s %s\n", c.colorize(br.Name, ansiBold), c.colorize("("+br.ID+")", ansiDim))
		for _, cm := range br.Commits {
			subject, _, _ := strings.Cut(strings.TrimSpace(cm.Message), "\n")
			fmt.Fprintf(&b, "  %s %s by %s\n", c.colorize(cm.ShortID, ansiYellow), subject, cm.Author)
			for _, f := range cm.Files {
				path := f.Path()
				if f.Status == history.StatusRenamed {
					path = f.OldPath + " -> " + f.NewPath
				}
				fmt.Fprintf(&b, "    %s %s %s %s\n",
					c.colorize(f.Status, statusColor(f.Status)),
					c.colorize(fmt.Sprintf("+%d", f.Additions), ansiGreen),
					c.colorize(fmt.Sprintf("-%d", f.Deletions), ansiRed),
					path)
			}
		}
	}
	return b.String()
}

func statusColor(status string) string {
	switch status {
	case history.StatusAdded:
		return ansiGreen
	case history.StatusDeleted:
		return ansiRed
	case history.StatusRenamed:
		return ansiCyan
	default:
		return ansiYellow
	}
}
