// Package runner collects a complete working-tree snapshot from an Inspector.
package runner

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/irahardianto/glide/internal/engine/formatter"
	"github.com/irahardianto/glide/internal/engine/git"
	"github.com/irahardianto/glide/internal/platform/logger"
)

// Category names reported to Progress.
const (
	CategoryStaged    = "staged"
	CategoryUnstaged  = "unstaged"
	CategoryUntracked = "untracked"
)

// Engine queries the three change categories of a repository in parallel.
type Engine struct {
	inspector git.Inspector

	// Progress is an optional progress tracker. If nil, no progress output is produced.
	Progress *Progress
}

// NewEngine creates a new collection engine over inspector.
func NewEngine(inspector git.Inspector) *Engine {
	return &Engine{inspector: inspector}
}

// NewEngineWithProgress creates a new collection engine with progress tracking.
func NewEngineWithProgress(inspector git.Inspector, p *Progress) *Engine {
	return &Engine{inspector: inspector, Progress: p}
}

// Collect resolves the repository root and then fetches staged, unstaged and
// untracked changes concurrently. The result is all-or-nothing: the first
// failing query cancels the others and its error is returned.
func (e *Engine) Collect(ctx context.Context) (*formatter.Snapshot, error) {
	log := logger.FromContext(ctx)
	log.Info("Engine.Collect started")
	start := time.Now()

	root, err := e.inspector.ResolveRoot(ctx)
	if err != nil {
		return nil, err
	}

	snap := &formatter.Snapshot{Root: root}

	g, gctx := errgroup.WithContext(ctx)
	queries := []struct {
		name string
		run  func(context.Context) (string, error)
		dst  *string
	}{
		{CategoryStaged, e.inspector.Staged, &snap.Staged},
		{CategoryUnstaged, e.inspector.Unstaged, &snap.Unstaged},
		{CategoryUntracked, e.inspector.Untracked, &snap.Untracked},
	}

	for _, q := range queries {
		g.Go(func() error {
			if e.Progress != nil {
				e.Progress.OnStart(q.name)
			}
			qStart := time.Now()
			out, err := q.run(gctx)
			if e.Progress != nil {
				e.Progress.OnComplete(q.name, err, time.Since(qStart))
			}
			if err != nil {
				return err
			}
			*q.dst = out
			return nil
		})
	}

	err = g.Wait()
	if e.Progress != nil {
		e.Progress.Finish()
	}
	if err != nil {
		log.Info("Engine.Collect failed", "error", err)
		return nil, err
	}

	snap.DurationMs = time.Since(start).Milliseconds()
	log.Info("Engine.Collect completed", "root", root, "clean", snap.Clean(), "duration_ms", snap.DurationMs)
	return snap, nil
}
