// Package export meshes finished module geometry into STL files and records
// a manifest describing the run.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pmuller/led-matrix-enclosure/pkg/build"
	"github.com/pmuller/led-matrix-enclosure/pkg/kernel"
)

// Options control where and how geometry is written.
type Options struct {
	// Dir is the output directory, created if missing.
	Dir string
	// Name is an optional build name prefixed to every file name.
	Name string
	// MeshCells is the octree meshing resolution. Zero means
	// kernel.DefaultMeshCells.
	MeshCells int
}

// Manifest records one export run. It is written as manifest.json next to
// the STL files so a print batch stays traceable to its parameters.
type Manifest struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Layout      []string  `json:"layout"`
	Split       string    `json:"split"`
	MeshCells   int       `json:"mesh_cells"`
	Files       []string  `json:"files"`
}

// WriteModules meshes every module's chassis and lid into opts.Dir and
// writes the manifest. Meshing dominates the runtime of a generation run,
// so modules mesh concurrently; the first failure cancels the rest.
func WriteModules(ctx context.Context, geometries []build.ModuleGeometry, layout []string, split string, opts Options, logger *log.Logger) (Manifest, error) {
	if logger == nil {
		logger = log.Default()
	}
	if opts.MeshCells <= 0 {
		opts.MeshCells = kernel.DefaultMeshCells
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("creating output directory: %w", err)
	}

	manifest := Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Layout:      layout,
		Split:       split,
		MeshCells:   opts.MeshCells,
	}

	files := make(chan string, 2*len(geometries))
	g, ctx := errgroup.WithContext(ctx)
	for _, geometry := range geometries {
		geometry := geometry
		g.Go(func() error {
			parts := []struct {
				suffix string
				solid  kernel.Solid
			}{
				{"chassis", geometry.Chassis},
				{"lid", geometry.Lid},
			}
			for _, part := range parts {
				if err := ctx.Err(); err != nil {
					return err
				}
				name := fileName(opts.Name, geometry.Module.Label(), part.suffix)
				path := filepath.Join(opts.Dir, name)
				logger.Debug("meshing part", "file", name, "cells", opts.MeshCells)
				if err := kernel.WriteSTL(path, part.solid, opts.MeshCells); err != nil {
					return err
				}
				files <- name
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Manifest{}, err
	}
	close(files)
	for name := range files {
		manifest.Files = append(manifest.Files, name)
	}
	sort.Strings(manifest.Files)

	if err := writeManifest(filepath.Join(opts.Dir, "manifest.json"), manifest); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}

// fileName builds e.g. "module:x=0,y=0.chassis.stl", with the optional
// build name in front.
func fileName(buildName, label, suffix string) string {
	name := fmt.Sprintf("%s.%s.stl", label, suffix)
	if buildName != "" {
		name = buildName + "." + name
	}
	return name
}

func writeManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
