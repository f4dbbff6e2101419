package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pmuller/led-matrix-enclosure/pkg/build"
	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/export"
	"github.com/pmuller/led-matrix-enclosure/pkg/panel"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete resolve → build → export pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Resolve
	resolveStart := time.Now()
	composite, modules, err := r.Resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Composite = composite
	result.Modules = modules
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.Stats.PanelCount = composite.PanelCount()
	result.Stats.ModuleCount = len(modules)

	r.Logger.Info("resolved layout",
		"panels", composite.PanelCount(),
		"size", composite.Size().String(),
		"modules", len(modules),
		"duration", result.Stats.ResolveTime)

	// Stage 2: Build
	buildStart := time.Now()
	geometry, err := build.BuildEnclosure(ctx, modules, opts.Config, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Geometry = geometry
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Info("built geometry",
		"modules", len(geometry),
		"duration", result.Stats.BuildTime)

	if opts.SkipExport {
		return result, nil
	}

	// Stage 3: Export
	exportStart := time.Now()
	manifest, err := export.WriteModules(ctx, geometry, opts.Layout, opts.Split, export.Options{
		Dir:       opts.OutDir,
		Name:      opts.Name,
		MeshCells: opts.MeshCells,
	}, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	result.Manifest = manifest
	result.Stats.ExportTime = time.Since(exportStart)

	r.Logger.Info("exported files",
		"dir", opts.OutDir,
		"files", len(manifest.Files),
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Resolve runs the resolve stage alone: parse the panel layout and derive
// the module structure. Layout inspection uses this without building any
// geometry.
func (r *Runner) Resolve(opts Options) (panel.Composite, []enclosure.Module, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return panel.Composite{}, nil, fmt.Errorf("invalid options: %w", err)
	}

	composite, err := panel.ParseLayout(opts.Layout)
	if err != nil {
		return panel.Composite{}, nil, err
	}
	split, err := enclosure.ParseSplit(opts.Split)
	if err != nil {
		return panel.Composite{}, nil, err
	}
	modules, err := enclosure.Split(composite, split, opts.Config)
	if err != nil {
		return panel.Composite{}, nil, err
	}
	return composite, modules, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
