package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/config"
	"github.com/example/gridboard/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize gridboard storage",
		Long: `Write ~/.gridboard/config.yaml (if missing), prepare the storage backend
and create the starter grid when the board is empty.

Examples:
  gridboard init                 # SQLite storage in ~/.gridboard
  gridboard init --backend file  # one JSON file per key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := configDir
			if dir == "" {
				var err error
				if dir, err = config.DefaultDir(); err != nil {
					return err
				}
			}

			path := filepath.Join(dir, config.FileName)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				cfg := config.DefaultConfig()
				if backend != "" {
					cfg.Storage.Backend = backend
				}
				if err := cfg.Validate(); err != nil {
					return err
				}
				if err := config.SaveConfig(dir, cfg); err != nil {
					return err
				}
				fmt.Printf("%s Config written to %s\n", ok(), path)
			} else {
				fmt.Printf("Config already exists at %s\n", path)
			}

			if err := wire.Init(); err != nil {
				return err
			}
			fmt.Printf("%s Storage ready (%s backend, data in %s)\n", ok(), wire.Config().Storage.Backend, wire.Config().Storage.DataDir)

			id, err := wire.BoardService().EnsureDefaultGrid(NewContext())
			if err != nil {
				return fmt.Errorf("failed to create starter grid: %w", err)
			}
			if id != "" {
				fmt.Printf("%s Created starter grid %s\n", ok(), id)
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println(`  gridboard list create "Todo"`)
			fmt.Println("  gridboard grid show")
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "Storage backend for a new config (sqlite|file)")

	return cmd
}
