// Package commands implements the CLI commands for glide.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/irahardianto/glide/internal/engine/config"
	"github.com/irahardianto/glide/internal/platform/logger"
)

// options holds the global flag values shared by all commands.
type options struct {
	format     string
	verbose    bool
	noColor    bool
	gitBinary  string
	timeout    time.Duration
	configPath string
	dir        string
}

// NewRootCmd builds the glide command tree. Each call returns an independent
// tree, so tests can execute commands with fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "glide",
		Short: "Inspect the pending changes of a git working tree",
		Long: `Glide reports what is about to be committed in a git repository: the staged
diff, the unstaged diff and the untracked files, always taken relative to the
repository root regardless of the directory it is started from.

Single-category commands print git's output untouched so it can be piped;
'glide status' renders all three categories as text, JSON or SARIF.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			l := logger.New(cmd.ErrOrStderr(), opts.verbose, opts.format == config.FormatJSON)
			ctx := logger.WithContext(cmd.Context(), l)
			cmd.SetContext(ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.format, "format", "", "Output format for status, watch and log: text, json or sarif")
	pf.BoolVar(&opts.verbose, "verbose", false, "Include raw diffs in status output and enable debug logs")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&opts.gitBinary, "git", "", "Git executable name or path")
	pf.DurationVar(&opts.timeout, "timeout", 0, "Bound on each git invocation (e.g. 10s)")
	pf.StringVar(&opts.configPath, "config", "", "Path to config file (default ~/.config/glide/config.yaml)")
	pf.StringVarP(&opts.dir, "dir", "C", "", "Run as if started in this directory")

	rootCmd.AddCommand(
		newRootPathCmd(opts),
		newStagedCmd(opts),
		newUnstagedCmd(opts),
		newUntrackedCmd(opts),
		newStatusCmd(opts),
		newWatchCmd(opts),
		newLogCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command. Returns an error if the command fails.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "glide: %v\n", err)
		return err
	}
	return nil
}
