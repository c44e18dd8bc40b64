package git

import (
	"context"
	"sync/atomic"
)

// MockInspector is a test double for git.Inspector.
type MockInspector struct {
	Root         string
	RootErr      error
	StagedOut    string
	StagedErr    error
	UnstagedOut  string
	UnstagedErr  error
	UntrackedOut string
	UntrackedErr error

	// Calls counts every method invocation.
	Calls atomic.Int32
}

// ResolveRoot returns the configured root.
func (m *MockInspector) ResolveRoot(_ context.Context) (string, error) {
	m.Calls.Add(1)
	return m.Root, m.RootErr
}

// Staged returns the configured staged diff.
func (m *MockInspector) Staged(_ context.Context) (string, error) {
	m.Calls.Add(1)
	return m.StagedOut, m.StagedErr
}

// Unstaged returns the configured unstaged diff.
func (m *MockInspector) Unstaged(_ context.Context) (string, error) {
	m.Calls.Add(1)
	return m.UnstagedOut, m.UnstagedErr
}

// Untracked returns the configured untracked listing.
func (m *MockInspector) Untracked(_ context.Context) (string, error) {
	m.Calls.Add(1)
	return m.UntrackedOut, m.UntrackedErr
}
