// Package pipeline provides the core generation pipeline for the enclosure
// builder.
//
// This package implements the complete resolve → build → export pipeline
// shared by every entry point (CLI commands, the preview server). By
// centralizing this logic, all entry points agree on defaults, validation,
// and behavior.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Parse the panel layout and split it into printable modules
//  2. Build: Realize each module's chassis and lid solids
//  3. Export: Mesh the solids into STL files plus a run manifest
//
// The resolve stage can be run on its own, which is how layout inspection
// works without paying for geometry.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Layout: []string{"16x16,16x16", "32x8"},
//	    Split:  "2x1",
//	    OutDir: "prints",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pmuller/led-matrix-enclosure/pkg/build"
	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/export"
	"github.com/pmuller/led-matrix-enclosure/pkg/kernel"
	"github.com/pmuller/led-matrix-enclosure/pkg/panel"
)

// Default values shared by the CLI and the preview server.
const (
	// DefaultSplit keeps the enclosure in one piece.
	DefaultSplit = "1x1"

	// DefaultOutDir is where STL files land unless told otherwise.
	DefaultOutDir = "output"
)

// Options contains all configuration for the generation pipeline.
// The struct supports JSON serialization for the preview server.
type Options struct {
	// Layout is one token per panel row, front row first, e.g.
	// ["16x16,16x16", "32x8"].
	Layout []string `json:"layout"`

	// Split is the "ColsxRows" module partition token.
	Split string `json:"split,omitempty"`

	// Config carries the geometry parameters. A zero Config means
	// enclosure.DefaultConfig().
	Config enclosure.Config `json:"config,omitempty"`

	// OutDir is the STL output directory.
	OutDir string `json:"out_dir,omitempty"`

	// Name is an optional build name prefixed to output file names.
	Name string `json:"name,omitempty"`

	// MeshCells overrides the octree meshing resolution.
	MeshCells int `json:"mesh_cells,omitempty"`

	// SkipExport stops after the build stage. Used for dry runs and
	// layout checks where only the derived structure matters.
	SkipExport bool `json:"skip_export,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Composite is the parsed panel layout.
	Composite panel.Composite

	// Modules is the derived module structure, row-major.
	Modules []enclosure.Module

	// Geometry holds the built solids, aligned with Modules. Empty when
	// the run stopped before the build stage.
	Geometry []build.ModuleGeometry

	// Manifest describes the export, zero valued when export was skipped.
	Manifest export.Manifest

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PanelCount  int
	ModuleCount int
	ResolveTime time.Duration
	BuildTime   time.Duration
	ExportTime  time.Duration
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Layout) == 0 {
		return fmt.Errorf("%w: at least one panel row is required", panel.ErrInvalidLayout)
	}
	if o.Split == "" {
		o.Split = DefaultSplit
	}
	if o.Config == (enclosure.Config{}) {
		o.Config = enclosure.DefaultConfig()
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.OutDir == "" {
		o.OutDir = DefaultOutDir
	}
	if o.MeshCells == 0 {
		o.MeshCells = kernel.DefaultMeshCells
	}
	if o.MeshCells < 0 {
		return fmt.Errorf("mesh cells must be positive")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
