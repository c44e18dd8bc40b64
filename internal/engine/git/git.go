// Package git inspects a git working tree by running the git binary.
package git

import (
	"context"
)

// FileDiff holds the diff of a single file sliced out of a change set.
type FileDiff struct {
	Path    string
	Content string
}

// Inspector retrieves the repository root and the raw change sets of a working tree.
// Every call re-resolves the root; nothing is cached between calls.
type Inspector interface {
	// ResolveRoot returns the absolute top-level directory of the working tree.
	ResolveRoot(ctx context.Context) (string, error)
	// Staged returns the raw diff between HEAD and the index.
	Staged(ctx context.Context) (string, error)
	// Unstaged returns the raw diff between the index and the working tree.
	Unstaged(ctx context.Context) (string, error)
	// Untracked returns untracked, non-ignored paths, one per line.
	Untracked(ctx context.Context) (string, error)
}
