package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/pipeline"
)

// newGenerateCmd creates the generate command, the main entry point: it
// runs the full resolve → build → export pipeline and writes STL files.
func newGenerateCmd() *cobra.Command {
	var (
		split      string
		outDir     string
		name       string
		meshCells  int
		dryRun     bool
		configPath string
	)
	cfg := enclosure.DefaultConfig()
	var applyConfigFlags func()

	cmd := &cobra.Command{
		Use:   "generate <row> [row...]",
		Short: "Build and export STL files for a panel layout",
		Long: `Generate builds the enclosure for a layout of LED matrix panels and
exports one chassis and one lid STL file per module.

Each argument describes one row of panels, front row first, as a
comma-separated list of panel profiles:

  ledenclosure generate 16x16,16x16 32x8 --split 2x1

Geometry parameters come from built-in defaults, overridden by an optional
TOML config file (--config), overridden by flags.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if configPath != "" {
				if err := loadConfigFile(configPath, &cfg); err != nil {
					return err
				}
			}
			applyConfigFlags()

			opts := pipeline.Options{
				Layout:     args,
				Split:      split,
				Config:     cfg,
				OutDir:     outDir,
				Name:       name,
				MeshCells:  meshCells,
				SkipExport: dryRun,
				Logger:     logger,
			}

			tracker := newProgress(logger)
			spinner := newSpinnerWithContext(ctx, "Generating enclosure...")
			spinner.Start()
			result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
			spinner.Stop()
			if err != nil {
				return err
			}

			if dryRun {
				tracker.done(fmt.Sprintf("Built %d modules (dry run, nothing written)", result.Stats.ModuleCount))
				printModules(result.Modules)
				return nil
			}

			tracker.done(fmt.Sprintf("Exported %d files", len(result.Manifest.Files)))
			printSuccess("Enclosure %s split into %d modules", result.Composite.Size(), result.Stats.ModuleCount)
			for _, file := range result.Manifest.Files {
				printFile(opts.OutDir + "/" + file)
			}
			printDetail("manifest run %s", result.Manifest.RunID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&split, "split", "s", pipeline.DefaultSplit, "module split as ColsxRows")
	cmd.Flags().StringVarP(&outDir, "out", "o", pipeline.DefaultOutDir, "output directory")
	cmd.Flags().StringVarP(&name, "name", "n", "", "build name prefixed to file names")
	cmd.Flags().IntVar(&meshCells, "mesh-cells", 0, "octree meshing resolution (0 = default)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "build geometry but write nothing")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file with geometry parameters")
	applyConfigFlags = addConfigFlags(cmd, &cfg)

	return cmd
}
