// Package pkg provides the core libraries for the LED matrix enclosure
// generator.
//
// # Overview
//
// The generator turns a layout of WS2812B LED matrix panels into
// 3D-printable enclosure parts. The pkg directory is organized along the
// data flow:
//
//  1. [geom] - Millimeter-precision 2D primitives (dimensions, positions, rectangles)
//  2. [sides] - Side identity and side-set algebra shared by every layer
//  3. [panel] - Panel profiles and composite layout arithmetic
//  4. [enclosure] - Module splitting, border classification, configuration
//  5. [build] - Feature planning and solid realization per module
//  6. [kernel] - Thin wrapper over the signed distance function CSG library
//  7. [export] - STL meshing and run manifests
//  8. [pipeline] - Orchestration (resolve → build → export)
//
// # Architecture
//
// The typical data flow through the generator:
//
//	Panel layout tokens ("16x16,16x16", "32x8")
//	         ↓
//	    [panel] package (composite layout, connector footprints)
//	         ↓
//	    [enclosure] package (module split, borders, wire slot scoping)
//	         ↓
//	    [build] package (grids, pillars, walls, bosses → solids)
//	         ↓
//	    [export] package (STL files + manifest)
//
// # Quick Start
//
// Generate an enclosure split into two modules:
//
//	import "github.com/pmuller/led-matrix-enclosure/pkg/pipeline"
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Layout: []string{"16x16,16x16", "32x8"},
//	    Split:  "2x1",
//	    OutDir: "prints",
//	})
//
// Every module of the result prints as two parts: a chassis holding the
// panels and a lid carrying the light separation grid and diffuser.
//
// [geom]: https://pkg.go.dev/github.com/pmuller/led-matrix-enclosure/pkg/geom
// [sides]: https://pkg.go.dev/github.com/pmuller/led-matrix-enclosure/pkg/sides
// [panel]: https://pkg.go.dev/github.com/pmuller/led-matrix-enclosure/pkg/panel
// [enclosure]: https://pkg.go.dev/github.com/pmuller/led-matrix-enclosure/pkg/enclosure
// [build]: https://pkg.go.dev/github.com/pmuller/led-matrix-enclosure/pkg/build
// [kernel]: https://pkg.go.dev/github.com/pmuller/led-matrix-enclosure/pkg/kernel
// [export]: https://pkg.go.dev/github.com/pmuller/led-matrix-enclosure/pkg/export
// [pipeline]: https://pkg.go.dev/github.com/pmuller/led-matrix-enclosure/pkg/pipeline
package pkg
