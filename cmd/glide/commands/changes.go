package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/irahardianto/glide/internal/engine/formatter"
	"github.com/irahardianto/glide/internal/engine/git"
)

func newRootPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the repository top-level directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			root, err := opts.newInspector(cfg).ResolveRoot(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), root)
			return err
		},
	}
}

func newStagedCmd(opts *options) *cobra.Command {
	return newChangeCmd(opts, "staged", "Print the diff of changes staged in the index", true, git.Inspector.Staged)
}

func newUnstagedCmd(opts *options) *cobra.Command {
	return newChangeCmd(opts, "unstaged", "Print the diff of working-tree changes not yet staged", true, git.Inspector.Unstaged)
}

func newUntrackedCmd(opts *options) *cobra.Command {
	return newChangeCmd(opts, "untracked", "List untracked files that are not ignored", false, git.Inspector.Untracked)
}

// newChangeCmd builds a command printing one change category exactly as git produced it.
// Diffs are highlighted only when stdout is a terminal and color is enabled.
func newChangeCmd(opts *options, use, short string, isDiff bool, query func(git.Inspector, context.Context) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			out, err := query(opts.newInspector(cfg), cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return formatter.Highlight(w, out, isDiff && useColor(cfg, w))
		},
	}
}
