// Package watch re-inspects a repository whenever its working tree or git metadata changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/irahardianto/glide/internal/platform/debounce"
	"github.com/irahardianto/glide/internal/platform/logger"
)

// ErrNoRoot is returned by Run when Root is empty.
var ErrNoRoot = errors.New("watch: empty repository root")

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// selfChangeWindow is how long after OnChange returns events are ignored.
// fsnotify's Events channel is unbuffered, so changes made while OnChange ran
// (git refreshing .git/index, for example) arrive only once Run reads again.
const selfChangeWindow = 100 * time.Millisecond

// Watcher calls OnChange after filesystem activity in a repository settles.
type Watcher struct {
	// Root is the repository top-level directory.
	Root string
	// Debounce is the quiet period before OnChange runs. Zero runs it as soon as possible.
	Debounce time.Duration
	// OnChange is called from Run's goroutine, never concurrently with itself.
	OnChange func(ctx context.Context)
}

// New creates a Watcher for root.
func New(root string, delay time.Duration, onChange func(ctx context.Context)) *Watcher {
	return &Watcher{Root: root, Debounce: delay, OnChange: onChange}
}

// Run watches Root and its .git directory until ctx ends. Setup failures are
// returned; errors reported by the watcher afterwards are logged only.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Root == "" {
		return ErrNoRoot
	}
	log := logger.FromContext(ctx)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() {
		if err := fw.Close(); err != nil {
			log.Error("watcher close", "error", err)
		}
	}()

	for _, path := range watchPaths(w.Root) {
		log.Debug("adding path to FS watcher", "path", path)
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	delay := max(w.Debounce, 0)

	var ignoreUntil time.Time
	settled := make(chan struct{}, 1)
	d := debounce.New(delay, func() {
		select {
		case settled <- struct{}{}:
		default:
		}
	})
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&relevantOps == 0 || shouldIgnore(w.Root, ev.Name) {
				continue
			}
			if time.Now().Before(ignoreUntil) {
				log.Debug("ignoring event caused by inspection", "path", ev.Name)
				continue
			}
			log.Debug("fsnotify event", "op", ev.Op.String(), "path", ev.Name)
			d.Trigger()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Error("fsnotify error", "error", err)
		case <-settled:
			if w.OnChange != nil {
				w.OnChange(ctx)
			}
			// Inspecting the repository can itself touch .git; forget what it caused.
			d.Stop()
			ignoreUntil = time.Now().Add(selfChangeWindow)
		}
	}
}

// watchPaths returns the directories to watch: the root and, when present, its .git directory.
func watchPaths(root string) []string {
	paths := []string{root}
	gitDir := filepath.Join(root, ".git")
	if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
		paths = append(paths, gitDir)
	}
	return paths
}

// shouldIgnore reports whether an event on name cannot change the inspected state.
func shouldIgnore(root, name string) bool {
	if strings.EqualFold(filepath.Ext(name), ".lock") {
		return true
	}
	objects := filepath.Join(root, ".git", "objects")
	rel, err := filepath.Rel(objects, name)
	if err != nil {
		return false
	}
	return rel == "." || !strings.HasPrefix(rel, "..")
}
