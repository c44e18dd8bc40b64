package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/irahardianto/glide/internal/engine/formatter"
	"github.com/irahardianto/glide/internal/engine/history"
)

func newLogCmd(opts *options) *cobra.Command {
	var histOpts history.Options

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Report the committed history of every local branch",
		Long: `Walk each local branch from its tip, newest commit first, and list the files
every commit changed relative to its first parent with their status (A, M, D
or R) and line counts. The history is read directly from the object database,
so --git and --timeout do not apply. Output is text or JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			dir := opts.dir
			if dir == "" {
				dir = "."
			}
			repo, err := history.Index(cmd.Context(), dir, histOpts)
			if err != nil {
				return err
			}

			out, err := formatter.FormatHistory(cfg.Output.Format, repo, useColor(cfg, cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&histOpts.MaxCommits, "max-commits", 0, "Limit the commits reported per branch (0 means all)")
	cmd.Flags().BoolVar(&histOpts.IncludePatch, "patch", false, "Include the unified diff of every file change")
	return cmd
}
