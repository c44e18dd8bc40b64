package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/irahardianto/glide/internal/platform/logger"
)

const (
	// DefaultBinary is the git executable looked up on PATH.
	DefaultBinary = "git"
	// DefaultTimeout bounds a single git invocation.
	DefaultTimeout = 30 * time.Second

	// waitDelay bounds how long Wait keeps draining pipes after git is killed,
	// in case a grandchild still holds them open.
	waitDelay = 2 * time.Second
)

// Accepted exit codes. git diff exits 1 when it found differences.
var (
	exitZero = []int{0}
	exitDiff = []int{0, 1}
)

// ExecInspector implements Inspector by running the git binary via os/exec.
// It holds no mutable state and is safe for concurrent use.
type ExecInspector struct {
	// Dir is the directory root resolution runs in.
	// If empty, the current process directory is used.
	Dir string
	// Binary is the git executable name or path. Defaults to DefaultBinary.
	Binary string
	// Timeout bounds each invocation. Zero or negative means DefaultTimeout.
	Timeout time.Duration
}

// NewExecInspector creates an ExecInspector rooted at dir with default binary and timeout.
func NewExecInspector(dir string) *ExecInspector {
	return &ExecInspector{Dir: dir}
}

// ResolveRoot runs `git rev-parse --show-toplevel` in Dir.
func (s *ExecInspector) ResolveRoot(ctx context.Context) (string, error) {
	args := []string{"rev-parse", "--show-toplevel"}
	out, err := s.runGit(ctx, s.Dir, exitZero, ErrNotARepository, args...)
	if err != nil {
		return "", err
	}

	root := strings.TrimSpace(out)
	if root == "" {
		return "", &CommandError{
			Args:     args,
			Dir:      s.Dir,
			ExitCode: 0,
			Kind:     ErrNotARepository,
			Cause:    errors.New("empty top-level path"),
		}
	}
	return root, nil
}

// Staged returns `git diff --cached` run from the repository root.
func (s *ExecInspector) Staged(ctx context.Context) (string, error) {
	logger.FromContext(ctx).Debug("getting staged changes")
	return s.inRoot(ctx, exitDiff, ErrDiffCommand, "diff", "--cached")
}

// Unstaged returns `git diff` run from the repository root.
func (s *ExecInspector) Unstaged(ctx context.Context) (string, error) {
	logger.FromContext(ctx).Debug("getting unstaged changes")
	return s.inRoot(ctx, exitDiff, ErrDiffCommand, "diff")
}

// Untracked returns `git ls-files --others --exclude-standard` run from the repository root.
func (s *ExecInspector) Untracked(ctx context.Context) (string, error) {
	logger.FromContext(ctx).Debug("getting untracked files")
	return s.inRoot(ctx, exitZero, ErrListCommand, "ls-files", "--others", "--exclude-standard")
}

// inRoot resolves the root and runs git there. A root failure is returned unchanged.
func (s *ExecInspector) inRoot(ctx context.Context, accept []int, kind error, args ...string) (string, error) {
	root, err := s.ResolveRoot(ctx)
	if err != nil {
		return "", err
	}
	return s.runGit(ctx, root, accept, kind, args...)
}

// runGit executes one git command in dir and returns its stdout.
// Exit codes outside accept fail with kind; stdout must be valid UTF-8.
func (s *ExecInspector) runGit(ctx context.Context, dir string, accept []int, kind error, args ...string) (string, error) {
	log := logger.FromContext(ctx)

	runCtx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	cmd := exec.CommandContext(runCtx, s.binary(), args...) // #nosec G204 -- args are fixed by the application, not user input
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("running git", "args", args, "dir", dir)
	start := time.Now()
	runErr := cmd.Run()

	if runErr != nil {
		cmdErr := &CommandError{
			Args:     args,
			Dir:      dir,
			ExitCode: -1,
			Stderr:   strings.ToValidUTF8(stderr.String(), "\uFFFD"),
		}

		var exitErr *exec.ExitError
		switch {
		case ctx.Err() != nil:
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), ctx.Err())
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			cmdErr.Kind = ErrTimeout
			cmdErr.Cause = fmt.Errorf("no exit after %s", s.timeout())
		case errors.As(runErr, &exitErr):
			cmdErr.ExitCode = exitErr.ExitCode()
			if slices.Contains(accept, cmdErr.ExitCode) {
				cmdErr = nil
				break
			}
			cmdErr.Kind = kind
		default:
			cmdErr.Kind = ErrSpawn
			cmdErr.Cause = runErr
		}

		if cmdErr != nil {
			log.Debug("git failed",
				"args", args,
				"kind", cmdErr.Kind,
				"exit_code", cmdErr.ExitCode,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return "", cmdErr
		}
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", &CommandError{
			Args:     args,
			Dir:      dir,
			ExitCode: cmd.ProcessState.ExitCode(),
			Kind:     ErrDecode,
		}
	}

	log.Debug("git completed", "args", args, "bytes", stdout.Len(), "duration_ms", time.Since(start).Milliseconds())
	return stdout.String(), nil
}

func (s *ExecInspector) binary() string {
	if s.Binary == "" {
		return DefaultBinary
	}
	return s.Binary
}

func (s *ExecInspector) timeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultTimeout
	}
	return s.Timeout
}

// Ensure ExecInspector implements Inspector at compile time.
var _ Inspector = (*ExecInspector)(nil)
