package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/wire"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage lists of the current grid",
}

var listCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Append a list to the current grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.BoardAdapter().CreateList(NewContext(), args[0])
		return err
	},
}

var listRenameCmd = &cobra.Command{
	Use:   "rename [list-id] [title]",
	Short: "Rename a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.BoardAdapter().RenameList(NewContext(), args[0], args[1])
	},
}

var listDeleteCmd = &cobra.Command{
	Use:   "delete [list-id]",
	Short: "Delete a list and its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.BoardAdapter().DeleteList(NewContext(), args[0])
	},
}

var listReorderCmd = &cobra.Command{
	Use:   "reorder [list-id...]",
	Short: "Set the order of the lists in the current grid",
	Long: `Set the order of the lists in the current grid.

Pass every list id in the new order. Lists that are left out are removed
from the grid, so include all of them.

Examples:
  gridboard list reorder L3 L1 L2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.BoardAdapter().ReorderLists(NewContext(), args)
	},
}

func init() {
	listCmd.AddCommand(listCreateCmd)
	listCmd.AddCommand(listRenameCmd)
	listCmd.AddCommand(listDeleteCmd)
	listCmd.AddCommand(listReorderCmd)
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return listCmd
}
