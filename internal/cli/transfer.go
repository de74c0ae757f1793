package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/wire"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all grids to a backup file",
	Long: `Write kanban-export-YYYY-MM-DD.json with every grid, list and item.

Examples:
  gridboard export                # into the configured export dir
  gridboard export --out ~/backup # into ~/backup
  gridboard export --stdout > board.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		toStdout, _ := cmd.Flags().GetBool("stdout")

		adapter := wire.TransferAdapterForDir(out)
		if toStdout {
			return adapter.ExportTo(NewContext(), os.Stdout)
		}
		_, err := adapter.Export(NewContext())
		return err
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace all grids with the contents of a backup file",
	Long: `Replace the whole board with an export file.

The file must be a JSON object with a "grids" array. Invalid files are
rejected and the current board is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.TransferAdapter().Import(NewContext(), args[0])
		return err
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Directory to write the export file to")
	exportCmd.Flags().Bool("stdout", false, "Write the export document to stdout")
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	return exportCmd
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return importCmd
}
