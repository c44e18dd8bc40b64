// Package config handles loading and validation of glide user configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"
)

// Output formats accepted in output.format.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSarif = "sarif"
)

var validFormats = []string{FormatText, FormatJSON, FormatSarif}

const (
	defaultGitBinary = "git"
	defaultTimeout   = 30 * time.Second
	defaultDebounce  = 350 * time.Millisecond
)

// GlobalConfig holds user-level settings shared by every repository.
type GlobalConfig struct {
	GitBinary   string        `yaml:"git_binary"`
	Timeout     time.Duration `yaml:"timeout"`
	Output      OutputConfig  `yaml:"output"`
	Watch       WatchConfig   `yaml:"watch"`
	OutputColor bool          `yaml:"-"` // derived from Output.Color
}

// OutputConfig holds output-related user preferences.
type OutputConfig struct {
	Color  *bool  `yaml:"color"`
	Format string `yaml:"format"`
}

// WatchConfig holds settings for `glide watch`.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Loader handles loading configuration from the file system.
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a new Loader with the given file system.
// Uses os.Getenv for environment variable lookups by default.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs, getenv: os.Getenv}
}

// NewLoaderWithEnv creates a Loader with a custom getenv function for testability.
func NewLoaderWithEnv(fs FileSystem, getenv func(string) string) *Loader {
	return &Loader{fs: fs, getenv: getenv}
}

func defaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		GitBinary:   defaultGitBinary,
		Timeout:     defaultTimeout,
		Output:      OutputConfig{Format: FormatText},
		Watch:       WatchConfig{Debounce: defaultDebounce},
		OutputColor: true,
	}
}

// Validate checks every field and returns all problems joined, so users can fix them at once.
func (c *GlobalConfig) Validate() error {
	var errs []error
	if c.GitBinary == "" {
		errs = append(errs, errors.New("git_binary must not be empty"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce))
	}
	if !slices.Contains(validFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("unknown output.format %q (valid: text, json, sarif)", c.Output.Format))
	}
	return errors.Join(errs...)
}
