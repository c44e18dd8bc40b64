package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/irahardianto/glide/internal/engine/config"
	"github.com/irahardianto/glide/internal/engine/formatter"
	"github.com/irahardianto/glide/internal/engine/runner"
)

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report staged, unstaged and untracked changes together",
		Long: `Collect all three change categories concurrently and render them in the
selected format. The report is all-or-nothing: if any git query fails, nothing
is printed and the command exits non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			return writeStatus(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, cfg)
		},
	}
}

// writeStatus collects one snapshot and writes it to out in the configured format.
func writeStatus(ctx context.Context, out, errOut io.Writer, opts *options, cfg *config.GlobalConfig) error {
	f, err := formatter.New(cfg.Output.Format, useColor(cfg, out), opts.verbose)
	if err != nil {
		return err
	}

	var progress *runner.Progress
	if opts.verbose {
		progress = runner.NewProgress(errOut, cfg.Output.Format != config.FormatText)
	}
	engine := runner.NewEngineWithProgress(opts.newInspector(cfg), progress)

	snap, err := engine.Collect(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, f.Format(*snap))
	return err
}
