package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/wire"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent board activity",
	Long: `Show the audit trail of grid, list and item changes, newest first.

Only the sqlite backend records activity; the file backend writes it to the log output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		entityID, _ := cmd.Flags().GetString("entity")

		adapter := wire.ActivityAdapter()
		if adapter == nil {
			return fmt.Errorf("activity log requires the sqlite backend (current: %s)", wire.Config().Storage.Backend)
		}
		if limit <= 0 {
			limit = 50
		}
		_, err := adapter.List(NewContext(), entityID, limit)
		return err
	},
}

func init() {
	logCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
	logCmd.Flags().String("entity", "", "Only show entries for this grid, list or item ID")
}

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	return logCmd
}
