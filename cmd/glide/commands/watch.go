package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/irahardianto/glide/internal/engine/watch"
	"github.com/irahardianto/glide/internal/platform/logger"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print a status report now and again whenever the repository changes",
		Long: `Watch the repository root and its .git directory. After changes settle for the
configured debounce period, a fresh status report is printed. A failing report
is printed to stderr and watching continues. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			root, err := opts.newInspector(cfg).ResolveRoot(ctx)
			if err != nil {
				return err
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			report := func(ctx context.Context) {
				if err := writeStatus(ctx, out, errOut, opts, cfg); err != nil {
					if ctx.Err() != nil {
						return
					}
					logger.FromContext(ctx).Warn("status failed", "error", err)
					fmt.Fprintf(errOut, "glide: %v\n", err)
				}
			}

			report(ctx)
			return watch.New(root, cfg.Watch.Debounce, report).Run(ctx)
		},
	}
}
