package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/wire"
)

var (
	configDir string
	verbose   bool
)

// RegisterGlobalFlags adds the flags shared by every command.
func RegisterGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.gridboard)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Setup configures dependency injection and the actor for this invocation.
// Should be called from the root PersistentPreRun.
func Setup() {
	wire.Configure(wire.Options{ConfigDir: configDir, Verbose: verbose})
	DetectAndStoreActor()
}

// Teardown flushes logs and closes storage.
func Teardown() {
	wire.Shutdown()
}

func ok() string {
	return color.New(color.FgGreen).Sprint("✓")
}

func warn() string {
	return color.New(color.FgYellow).Sprint("⚠")
}

func fail() string {
	return color.New(color.FgRed).Sprint("✗")
}
