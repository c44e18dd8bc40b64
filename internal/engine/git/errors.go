package git

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match them with errors.Is on any error returned by an Inspector.
var (
	// ErrSpawn indicates the git binary could not be started.
	ErrSpawn = errors.New("cannot start git")

	// ErrNotARepository indicates root resolution failed, usually because the
	// directory is outside any working tree.
	ErrNotARepository = errors.New("not a git repository")

	// ErrDiffCommand indicates git diff exited with a code other than 0 or 1.
	ErrDiffCommand = errors.New("git diff failed")

	// ErrListCommand indicates git ls-files exited non-zero.
	ErrListCommand = errors.New("git ls-files failed")

	// ErrDecode indicates git wrote output that is not valid UTF-8.
	ErrDecode = errors.New("git output is not valid UTF-8")

	// ErrTimeout indicates git did not exit before the deadline and was killed.
	ErrTimeout = errors.New("git timed out")
)

// CommandError describes a failed git invocation.
type CommandError struct {
	// Args are the arguments passed to git, without the binary name.
	Args []string
	// Dir is the working directory of the invocation. Empty means the process directory.
	Dir string
	// ExitCode is the process exit code, or -1 if the process never exited normally.
	ExitCode int
	// Stderr is the captured standard error, verbatim.
	Stderr string
	// Kind is one of the Err* sentinels.
	Kind error
	// Cause is the underlying error, if any (OS error, context error).
	Cause error
}

// Error returns a formatted error message.
func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: git %s", e.Kind, strings.Join(e.Args, " "))
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, " (exit %d)", e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		b.WriteString(": ")
		b.WriteString(stderr)
	} else if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *CommandError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}
