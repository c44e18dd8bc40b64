// Package history walks the committed history of a repository and reports,
// for every local branch, the commits reachable from its tip and the files
// each commit touched.
package history

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"
	"unicode/utf8"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/irahardianto/glide/internal/engine/git"
	"github.com/irahardianto/glide/internal/platform/logger"
)

// File change statuses, as single letters in the style of git's name-status.
const (
	StatusAdded    = "A"
	StatusModified = "M"
	StatusDeleted  = "D"
	StatusRenamed  = "R"
)

const shortIDLength = 12

// Repository is the indexed history of one repository.
type Repository struct {
	// ID is the origin remote URL, or the absolute working tree path when
	// there is no origin.
	ID       string   `json:"repo_id"`
	Branches []Branch `json:"branches"`
}

// Branch is one local branch and the commits reachable from its tip, newest first.
type Branch struct {
	ID      string   `json:"branch_id"`
	Name    string   `json:"name"`
	Commits []Commit `json:"commits"`
}

// Commit describes a single commit and the files it changed relative to its
// first parent.
type Commit struct {
	ID          string       `json:"commit_id"`
	ShortID     string       `json:"short_id"`
	Author      string       `json:"author"`
	Message     string       `json:"message"`
	CommittedAt time.Time    `json:"committed_at"`
	IsMerge     bool         `json:"is_merge"`
	Files       []FileChange `json:"files"`
}

// FileChange is one file touched by a commit.
type FileChange struct {
	FileID    string `json:"file_id"`
	OldPath   string `json:"old_path,omitempty"`
	NewPath   string `json:"new_path,omitempty"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	// Patch is the unified diff for the file. It is left empty unless
	// requested, and for content that is not valid UTF-8.
	Patch string `json:"patch,omitempty"`
}

// Path returns the path the file has after the change, or before it for deletions.
func (f FileChange) Path() string {
	if f.NewPath != "" {
		return f.NewPath
	}
	return f.OldPath
}

// Options controls how much of the history is indexed.
type Options struct {
	// MaxCommits limits the commits reported per branch. Zero means no limit.
	MaxCommits int
	// IncludePatch attaches the unified diff text to every file change.
	IncludePatch bool
}

// Index opens the repository containing dir and indexes every local branch.
// Branches are ordered by name.
func Index(ctx context.Context, dir string, opts Options) (*Repository, error) {
	log := logger.FromContext(ctx)

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", git.ErrNotARepository, dir, err)
	}

	id, err := repoID(repo, dir)
	if err != nil {
		return nil, err
	}
	out := &Repository{ID: id, Branches: []Branch{}}

	refs, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}
	var names []plumbing.ReferenceName
	var tips []plumbing.Hash
	if err := refs.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name())
		tips = append(tips, ref.Hash())
		return nil
	}); err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return names[order[a]] < names[order[b]] })

	for _, i := range order {
		name := names[i].Short()
		log.Debug("indexing branch", "branch", name)
		commits, err := branchCommits(ctx, repo, tips[i], id, opts)
		if err != nil {
			return nil, fmt.Errorf("branch %s: %w", name, err)
		}
		out.Branches = append(out.Branches, Branch{
			ID:      id + ":" + name,
			Name:    name,
			Commits: commits,
		})
	}

	log.Debug("history indexed", "repo", id, "branches", len(out.Branches))
	return out, nil
}

// repoID prefers the origin URL and falls back to the absolute working tree path.
func repoID(repo *gogit.Repository, dir string) (string, error) {
	if remote, err := repo.Remote("origin"); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 && urls[0] != "" {
			return urls[0], nil
		}
	}

	wt, err := repo.Worktree()
	if err == nil {
		return wt.Filesystem.Root(), nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}

func branchCommits(ctx context.Context, repo *gogit.Repository, tip plumbing.Hash, id string, opts Options) ([]Commit, error) {
	iter, err := repo.Log(&gogit.LogOptions{From: tip, Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("walking log: %w", err)
	}
	defer iter.Close()

	commits := []Commit{}
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.MaxCommits > 0 && len(commits) >= opts.MaxCommits {
			return storer.ErrStop
		}
		commit, err := describe(ctx, c, id, opts)
		if err != nil {
			return fmt.Errorf("commit %s: %w", c.Hash, err)
		}
		commits = append(commits, commit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return commits, nil
}

func describe(ctx context.Context, c *object.Commit, id string, opts Options) (Commit, error) {
	hash := c.Hash.String()
	author := c.Author.Name
	if c.Author.Email != "" {
		author = fmt.Sprintf("%s <%s>", c.Author.Name, c.Author.Email)
	}

	files, err := fileChanges(ctx, c, id, opts.IncludePatch)
	if err != nil {
		return Commit{}, err
	}

	return Commit{
		ID:          hash,
		ShortID:     hash[:shortIDLength],
		Author:      author,
		Message:     c.Message,
		CommittedAt: c.Committer.When,
		IsMerge:     c.NumParents() > 1,
		Files:       files,
	}, nil
}

// fileChanges diffs c against its first parent, or against the empty tree for
// a root commit, with rename detection.
func fileChanges(ctx context.Context, c *object.Commit, id string, withPatch bool) ([]FileChange, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}
	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("reading parent: %w", err)
		}
		if parentTree, err = parent.Tree(); err != nil {
			return nil, fmt.Errorf("reading parent tree: %w", err)
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("diffing trees: %w", err)
	}

	files := make([]FileChange, 0, len(changes))
	for _, ch := range changes {
		fc, err := fileChange(ctx, ch, id, withPatch)
		if err != nil {
			return nil, err
		}
		files = append(files, fc)
	}
	return files, nil
}

func fileChange(ctx context.Context, ch *object.Change, id string, withPatch bool) (FileChange, error) {
	action, err := ch.Action()
	if err != nil {
		return FileChange{}, err
	}

	fc := FileChange{OldPath: ch.From.Name, NewPath: ch.To.Name}
	switch action {
	case merkletrie.Insert:
		fc.Status = StatusAdded
	case merkletrie.Delete:
		fc.Status = StatusDeleted
	default:
		fc.Status = StatusModified
		if ch.From.Name != ch.To.Name {
			fc.Status = StatusRenamed
		}
	}
	fc.FileID = id + ":" + fc.Path()

	patch, err := ch.PatchContext(ctx)
	if err != nil {
		return FileChange{}, fmt.Errorf("patch for %s: %w", fc.Path(), err)
	}
	for _, stat := range patch.Stats() {
		fc.Additions += stat.Addition
		fc.Deletions += stat.Deletion
	}
	if withPatch {
		if text := patch.String(); utf8.ValidString(text) {
			fc.Patch = text
		}
	}
	return fc, nil
}
