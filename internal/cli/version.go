package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/db"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build and storage format versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gridboard %s\n", info.Version)
		fmt.Fprintf(out, "  commit:         %s\n", info.Commit)
		fmt.Fprintf(out, "  built:          %s\n", info.BuildTime)
		fmt.Fprintf(out, "  go:             %s\n", info.GoVersion)
		fmt.Fprintf(out, "  state version:  %d\n", models.StateVersion)
		fmt.Fprintf(out, "  schema version: %d\n", db.LatestVersion())
		return nil
	},
}

// VersionCmd returns the version command
func VersionCmd() *cobra.Command {
	return versionCmd
}
