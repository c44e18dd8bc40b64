package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/irahardianto/glide/internal/engine/config"
	"github.com/irahardianto/glide/internal/engine/git"
	"github.com/irahardianto/glide/internal/platform/logger"
)

// loadConfig reads the user config and applies flag overrides on top of it.
// The command's logger is then rebuilt from the resolved output format.
func (o *options) loadConfig(cmd *cobra.Command) (*config.GlobalConfig, error) {
	ctx := cmd.Context()
	var (
		cfg *config.GlobalConfig
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadGlobalConfigFrom(ctx, o.configPath)
	} else {
		cfg, err = config.LoadGlobalConfig(ctx)
	}
	if err != nil {
		return nil, err
	}

	if o.gitBinary != "" {
		cfg.GitBinary = o.gitBinary
	}
	if o.timeout != 0 {
		cfg.Timeout = o.timeout
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.noColor {
		cfg.OutputColor = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	ctx = logger.WithContext(ctx, logger.New(cmd.ErrOrStderr(), o.verbose, cfg.Output.Format == config.FormatJSON))
	cmd.SetContext(ctx)
	logger.FromContext(ctx).Debug("configuration resolved",
		"git", cfg.GitBinary, "timeout", cfg.Timeout, "format", cfg.Output.Format, "color", cfg.OutputColor)
	return cfg, nil
}

// newInspector builds the git inspector for the configured binary, timeout and directory.
func (o *options) newInspector(cfg *config.GlobalConfig) *git.ExecInspector {
	return &git.ExecInspector{
		Dir:     o.dir,
		Binary:  cfg.GitBinary,
		Timeout: cfg.Timeout,
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColor reports whether output to w should be colored.
func useColor(cfg *config.GlobalConfig, w io.Writer) bool {
	return cfg.OutputColor && isTerminal(w)
}
