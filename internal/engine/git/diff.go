package git

import (
	"strconv"
	"strings"
)

// SplitDiffs slices a unified diff into per-file FileDiff entries.
// Each entry begins with a "diff --git a/..." header. The input is not validated.
func SplitDiffs(rawDiff string) []FileDiff {
	if strings.TrimSpace(rawDiff) == "" {
		return nil
	}

	const diffPrefix = "diff --git "
	var diffs []FileDiff

	for _, part := range strings.Split(rawDiff, "\n"+diffPrefix) {
		part = strings.TrimPrefix(part, diffPrefix)
		if strings.TrimSpace(part) == "" {
			continue
		}

		diffs = append(diffs, FileDiff{
			Path:    extractFilePath(part),
			Content: diffPrefix + strings.TrimRight(part, "\n") + "\n",
		})
	}

	return diffs
}

// extractFilePath returns the destination path of one file's diff block.
// The extended header ("rename to", "+++ b/") is authoritative; the
// "a/<path> b/<path>" line is only used for blocks without one, such as
// mode changes and binary files.
func extractFilePath(diffBlock string) string {
	header, rest, _ := strings.Cut(diffBlock, "\n")

	var oldPath string
	for _, line := range strings.Split(rest, "\n") {
		switch {
		case strings.HasPrefix(line, "@@"), strings.HasPrefix(line, "Binary files "):
			// Hunks and binary markers end the extended header.
			return headerPath(header)
		case strings.HasPrefix(line, "rename to "):
			return unquotePath(strings.TrimPrefix(line, "rename to "))
		case strings.HasPrefix(line, "copy to "):
			return unquotePath(strings.TrimPrefix(line, "copy to "))
		case strings.HasPrefix(line, "--- "):
			oldPath = sidePath(strings.TrimPrefix(line, "--- "), "a/")
		case strings.HasPrefix(line, "+++ "):
			newPath := sidePath(strings.TrimPrefix(line, "+++ "), "b/")
			if newPath == "/dev/null" && oldPath != "" {
				return oldPath
			}
			return newPath
		}
	}
	return headerPath(header)
}

// sidePath decodes the path of a ---/+++ line. git appends a tab when the
// name contains a space.
func sidePath(s, prefix string) string {
	s = unquotePath(strings.TrimSuffix(s, "\t"))
	return strings.TrimPrefix(s, prefix)
}

// headerPath decodes the destination from "a/<x> b/<y>". Quoted sides are
// unquoted; for unquoted sides the line is split at its midpoint when both
// halves name the same file, since the path may itself contain " b/".
func headerPath(header string) string {
	if strings.HasPrefix(header, `"`) {
		if first, err := strconv.QuotedPrefix(header); err == nil {
			second := strings.TrimPrefix(header[len(first):], " ")
			return strings.TrimPrefix(unquotePath(second), "b/")
		}
	}
	if strings.HasSuffix(header, `"`) {
		if idx := strings.LastIndex(header, ` "`); idx >= 0 {
			return strings.TrimPrefix(unquotePath(header[idx+1:]), "b/")
		}
	}

	if n := len(header) - len("a/ b/"); n > 0 && n%2 == 0 {
		half := n / 2
		oldName := header[len("a/") : len("a/")+half]
		if strings.HasPrefix(header, "a/") && header[len("a/")+half:len("a/ b/")+half] == " b/" && header[len("a/ b/")+half:] == oldName {
			return oldName
		}
	}

	if idx := strings.LastIndex(header, " b/"); idx >= 0 {
		return header[idx+len(" b/"):]
	}
	if _, after, ok := strings.Cut(header, " "); ok {
		return after
	}
	return strings.TrimPrefix(header, "a/")
}

// unquotePath reverses git's C-style quoting of unusual path names
// (core.quotePath). Unquoted input is returned as is.
func unquotePath(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return s
}

// SplitPaths returns the non-empty lines of a path listing such as Untracked
// output, with git's quoting removed.
func SplitPaths(raw string) []string {
	var paths []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			paths = append(paths, unquotePath(line))
		}
	}
	return paths
}
