package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/config"
	"github.com/example/gridboard/internal/core/board"
	"github.com/example/gridboard/internal/db"
	"github.com/example/gridboard/internal/version"
	"github.com/example/gridboard/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "ok", "warn", "fail"
	Details string // Only shown if Status != "ok"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate gridboard configuration and storage",
		Long: `Health check for gridboard.

Validates:
- Config file parses and names a known backend
- Storage is reachable (SQLite schema is current, data dir is writable)
- The stored board satisfies ordering and selection rules

Examples:
  gridboard doctor          # Run full health check
  gridboard doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{checkConfig()}
			if results[0].Status != "fail" {
				results = append(results, checkStorage(), checkBoard())
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "fail" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println(version.String())
				fmt.Println()
				fmt.Println("Check      Status")
				fmt.Println("─────────────────")
				for _, r := range results {
					fmt.Printf("%-10s %s\n", r.Name, statusIcon(r.Status))
				}
				fmt.Println()

				for _, r := range results {
					if r.Status != "ok" && r.Details != "" {
						fmt.Printf("%s:\n  %s\n\n", r.Name, r.Details)
					}
				}
				if !hasErrors {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func statusIcon(status string) string {
	switch status {
	case "ok":
		return ok()
	case "warn":
		return warn()
	default:
		return fail()
	}
}

// checkConfig loads the config and builds the service graph
func checkConfig() CheckResult {
	if err := wire.Init(); err != nil {
		return CheckResult{Name: "Config", Status: "fail", Details: err.Error()}
	}
	return CheckResult{Name: "Config", Status: "ok"}
}

// checkStorage validates the configured backend
func checkStorage() CheckResult {
	cfg := wire.Config()

	if cfg.Storage.Backend == config.BackendFile {
		info, err := os.Stat(cfg.Storage.DataDir)
		if os.IsNotExist(err) {
			return CheckResult{Name: "Storage", Status: "warn", Details: fmt.Sprintf("%s does not exist yet (created on first save)", cfg.Storage.DataDir)}
		}
		if err != nil || !info.IsDir() {
			return CheckResult{Name: "Storage", Status: "fail", Details: fmt.Sprintf("%s is not a usable directory", cfg.Storage.DataDir)}
		}
		return CheckResult{Name: "Storage", Status: "ok"}
	}

	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Storage", Status: "fail", Details: err.Error()}
	}
	current, err := db.SchemaVersion(database)
	if err != nil {
		return CheckResult{Name: "Storage", Status: "fail", Details: err.Error()}
	}
	if current != db.LatestVersion() {
		return CheckResult{Name: "Storage", Status: "fail", Details: fmt.Sprintf("schema version %d, expected %d", current, db.LatestVersion())}
	}
	return CheckResult{Name: "Storage", Status: "ok"}
}

// checkBoard validates the stored board document
func checkBoard() CheckResult {
	data := wire.BoardService().Snapshot(NewContext())
	if err := board.CheckInvariants(data); err != nil {
		return CheckResult{Name: "Board", Status: "fail", Details: err.Error()}
	}
	if len(data.Grids) == 0 {
		return CheckResult{Name: "Board", Status: "warn", Details: "no grids yet (run: gridboard init)"}
	}
	return CheckResult{Name: "Board", Status: "ok"}
}
