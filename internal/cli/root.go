package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pmuller/led-matrix-enclosure/pkg/buildinfo"
)

// Execute runs the ledenclosure CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (generate,
// layout, profiles, serve), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ledenclosure",
		Short:        "ledenclosure generates printable enclosures for LED matrix panels",
		Long:         `ledenclosure is a CLI tool that turns a layout of WS2812B LED matrix panels into 3D-printable enclosure parts: a chassis with support pillars and wire slots, and a lid with a light separation grid and diffuser plate. Large enclosures split into modules that fit a print bed and screw together.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newLayoutCmd())
	root.AddCommand(newProfilesCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
