package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/wire"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Manage grids (boards)",
	Long:  "Create, select, rename and delete grids. Lists and items always act on the current grid.",
}

var gridCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a grid and make it current",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := ""
		if len(args) == 1 {
			title = args[0]
		}
		_, err := wire.BoardAdapter().CreateGrid(NewContext(), title)
		return err
	},
}

var gridListCmd = &cobra.Command{
	Use:   "list",
	Short: "List grids (* marks the current grid)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.BoardAdapter().ListGrids(NewContext())
		return err
	},
}

var gridShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current grid with its lists and items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.BoardAdapter().ShowGrid(NewContext())
		return err
	},
}

var gridSelectCmd = &cobra.Command{
	Use:   "select [grid-id]",
	Short: "Make a grid current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.BoardAdapter().SelectGrid(NewContext(), args[0])
	},
}

var gridRenameCmd = &cobra.Command{
	Use:   "rename [title]",
	Short: "Rename the current grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.BoardAdapter().RenameGrid(NewContext(), args[0])
	},
}

var gridDeleteCmd = &cobra.Command{
	Use:   "delete [grid-id]",
	Short: "Delete a grid with all its lists and items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.BoardAdapter().DeleteGrid(NewContext(), args[0])
	},
}

func init() {
	gridCmd.AddCommand(gridCreateCmd)
	gridCmd.AddCommand(gridListCmd)
	gridCmd.AddCommand(gridShowCmd)
	gridCmd.AddCommand(gridSelectCmd)
	gridCmd.AddCommand(gridRenameCmd)
	gridCmd.AddCommand(gridDeleteCmd)
}

// GridCmd returns the grid command
func GridCmd() *cobra.Command {
	return gridCmd
}
