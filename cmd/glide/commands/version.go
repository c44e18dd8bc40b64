package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and build information",
		Long:  "Print the glide version, Go version, and build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "glide %s\n", version)
			fmt.Fprintf(w, "  go:     %s\n", runtime.Version())
			fmt.Fprintf(w, "  os:     %s/%s\n", runtime.GOOS, runtime.GOARCH)

			if info, ok := debug.ReadBuildInfo(); ok {
				for _, setting := range info.Settings {
					if setting.Key == "vcs.revision" {
						fmt.Fprintf(w, "  commit: %s\n", setting.Value)
					}
					if setting.Key == "vcs.time" {
						fmt.Fprintf(w, "  built:  %s\n", setting.Value)
					}
				}
			}

			return nil
		},
	}
}
