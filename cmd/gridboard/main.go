package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/cli"
	"github.com/example/gridboard/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "gridboard",
		Short:   "gridboard - kanban grids, lists and items from the terminal",
		Version: version.String(),
		Long: `gridboard keeps kanban boards (grids) with ordered lists of items.
All state lives in one document, stored in SQLite or a JSON file, and can be
exported to and imported from backup files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cli.Teardown()
		},
	}
	cli.RegisterGlobalFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.GridCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ItemCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		cli.Teardown()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
