package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/wire"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage items (cards) within lists",
}

var itemAddCmd = &cobra.Command{
	Use:   "add [list-id] [title]",
	Short: "Append an item to a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.BoardAdapter().AddItem(NewContext(), args[0], args[1])
		return err
	},
}

var itemEditCmd = &cobra.Command{
	Use:   "edit [list-id] [item-id] [title]",
	Short: "Change the title of an item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.BoardAdapter().EditItem(NewContext(), args[0], args[1], args[2])
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete [list-id] [item-id]",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.BoardAdapter().DeleteItem(NewContext(), args[0], args[1])
	},
}

var itemReorderCmd = &cobra.Command{
	Use:   "reorder [list-id] [item-id...]",
	Short: "Set the order of the items in a list",
	Long: `Set the order of the items in a list.

Pass every item id of the list in the new order. Items that are left out
are removed from the list.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.BoardAdapter().ReorderItems(NewContext(), args[0], args[1:])
	},
}

var itemMoveCmd = &cobra.Command{
	Use:   "move [item-id]",
	Short: "Move an item to another list",
	Long: `Move an item to another list of the current grid, or to a new position in its own list.

Examples:
  gridboard item move I1 --from L1 --to L2              # append to L2
  gridboard item move I1 --from L1 --to L2 --position 0 # top of L2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		position, _ := cmd.Flags().GetInt("position")

		return wire.BoardAdapter().MoveItem(NewContext(), models.MoveItemRequest{
			FromListID: from,
			ToListID:   to,
			ItemID:     args[0],
			Position:   position,
		})
	},
}

func init() {
	// item move flags
	itemMoveCmd.Flags().String("from", "", "Source list ID")
	itemMoveCmd.Flags().String("to", "", "Target list ID")
	itemMoveCmd.Flags().Int("position", -1, "Target position (negative appends)")
	_ = itemMoveCmd.MarkFlagRequired("from")
	_ = itemMoveCmd.MarkFlagRequired("to")

	// Register subcommands
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemEditCmd)
	itemCmd.AddCommand(itemDeleteCmd)
	itemCmd.AddCommand(itemReorderCmd)
	itemCmd.AddCommand(itemMoveCmd)
}

// ItemCmd returns the item command
func ItemCmd() *cobra.Command {
	return itemCmd
}
