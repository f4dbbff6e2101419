// Package enclosure derives the per-module structure of a modular LED
// matrix enclosure: it partitions the overall extent into printable modules,
// classifies each module edge as bordered or open, and carries the
// user-tunable feature parameters consumed by the builders.
//
// The continuity guarantees across module seams (no missing or duplicated
// walls, grid lines, or connectors once modules are assembled) are enforced
// here, centrally, rather than re-derived by each feature builder.
package enclosure

import (
	"errors"
	"fmt"

	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
	"github.com/pmuller/led-matrix-enclosure/pkg/panel"
	"github.com/pmuller/led-matrix-enclosure/pkg/sides"
)

// Sentinel errors for enclosure derivation. All generation failures are
// fatal: a partially generated enclosure cannot be printed or assembled.
var (
	// ErrInvalidSplit reports an unusable module split factor.
	ErrInvalidSplit = errors.New("invalid split")

	// ErrFeatureCollision reports a feature that cannot be placed without
	// violating a clearance rule.
	ErrFeatureCollision = errors.New("feature collision")
)

// SplitSpec is the requested module partition: Columns along X, Rows along Y.
type SplitSpec struct {
	Columns int
	Rows    int
}

// ParseSplit parses a "ColsxRows" token, e.g. "2x1".
func ParseSplit(token string) (SplitSpec, error) {
	d, err := geom.ParseDim2(token)
	if err != nil {
		return SplitSpec{}, fmt.Errorf("%w: %v", ErrInvalidSplit, err)
	}
	cols, rows := int(d.Length), int(d.Width)
	if float64(cols) != d.Length || float64(rows) != d.Width {
		return SplitSpec{}, fmt.Errorf("%w: %q must be whole numbers", ErrInvalidSplit, token)
	}
	return SplitSpec{Columns: cols, Rows: rows}, nil
}

func (s SplitSpec) String() string { return fmt.Sprintf("%dx%d", s.Columns, s.Rows) }

// Module is one independently printable partition of the enclosure.
//
// All coordinates are in the global frame. Connectors and WireSlots are
// already translated into the module's own frame, since that is how the
// feature builders consume them.
type Module struct {
	// Col and Row are the module's logical indices in the split grid.
	Col, Row int

	// Inner is the module's inner extent (mm, global frame).
	Inner geom.Rect

	// InnerHeight is the inner cavity height in mm: pillar height + panel
	// clearance + grid line height + height tolerance.
	InnerHeight float64

	// PixelOffset and PixelShape locate the module on the global pixel
	// grid. Grid lines are derived from these so that lines computed
	// independently per module still align across seams.
	PixelOffset geom.Pos2
	PixelShape  geom.Dim2

	// Borders flags the sides that are true outer edges of the whole
	// enclosure. The other sides are open seams mating with a neighbor.
	Borders sides.Set

	// Connectors are the panel wire connector footprints overlapping this
	// module, in the module's frame.
	Connectors []geom.Rect

	// WireSlots are the back-wall wire openings for this module, in the
	// module's frame. Only back-row modules have any.
	WireSlots []geom.Rect
}

// Label names the module by its split grid indices, e.g. "module:x=0,y=0".
func (m Module) Label() string {
	return fmt.Sprintf("module:x=%d,y=%d", m.Col, m.Row)
}

// Outer returns the module's outer footprint: the inner extent grown by the
// border wall thickness on each bordered side.
func (m Module) Outer(borderThickness float64) geom.Rect {
	out := m.Inner
	if m.Borders.Has(sides.Left) {
		out.Position.X -= borderThickness
		out.Size.Length += borderThickness
	}
	if m.Borders.Has(sides.Right) {
		out.Size.Length += borderThickness
	}
	if m.Borders.Has(sides.Front) {
		out.Position.Y -= borderThickness
		out.Size.Width += borderThickness
	}
	if m.Borders.Has(sides.Back) {
		out.Size.Width += borderThickness
	}
	return out
}

// OuterHeight returns the module's outer height: inner cavity plus the
// bottom plate.
func (m Module) OuterHeight(bottomThickness float64) float64 {
	return m.InnerHeight + bottomThickness
}

// ClassifySides classifies each edge of module against the overall extent:
// a side is bordered iff the module edge coincides with the corresponding
// overall edge within geom.Eps. The predicate is purely geometric, so border
// continuity holds regardless of how the partition was computed.
func ClassifySides(module, overall geom.Rect) sides.Set {
	var set sides.Set
	if geom.AlmostEqual(module.Position.X, overall.Position.X) {
		set = set.With(sides.Left)
	}
	if geom.AlmostEqual(module.MaxX(), overall.MaxX()) {
		set = set.With(sides.Right)
	}
	if geom.AlmostEqual(module.Position.Y, overall.Position.Y) {
		set = set.With(sides.Front)
	}
	if geom.AlmostEqual(module.MaxY(), overall.MaxY()) {
		set = set.With(sides.Back)
	}
	return set
}

// Split partitions the composite matrix extent into spec.Columns by
// spec.Rows modules.
//
// Partitioning happens on the pixel grid so grid cells never straddle a cut.
// When the pixel extent does not divide evenly, the remainder goes to the
// last column/row. Returns modules in row-major order (front row first,
// left to right).
func Split(c panel.Composite, spec SplitSpec, cfg Config) ([]Module, error) {
	if spec.Columns < 1 || spec.Rows < 1 {
		return nil, fmt.Errorf("%w: %s: factors must be at least 1", ErrInvalidSplit, spec)
	}

	shape := c.Shape()
	pitch := c.PixelSize()
	totalCols := int(shape.Length)
	totalRows := int(shape.Width)
	if spec.Columns > totalCols || spec.Rows > totalRows {
		return nil, fmt.Errorf("%w: %s exceeds the %s pixel extent", ErrInvalidSplit, spec, shape)
	}

	colWidths := distribute(totalCols, spec.Columns)
	rowWidths := distribute(totalRows, spec.Rows)

	for _, px := range colWidths {
		if float64(px)*pitch < cfg.MinModuleSize {
			return nil, fmt.Errorf("%w: %s produces a %g mm wide module, minimum is %g mm",
				ErrInvalidSplit, spec, float64(px)*pitch, cfg.MinModuleSize)
		}
	}
	for _, px := range rowWidths {
		if float64(px)*pitch < cfg.MinModuleSize {
			return nil, fmt.Errorf("%w: %s produces a %g mm deep module, minimum is %g mm",
				ErrInvalidSplit, spec, float64(px)*pitch, cfg.MinModuleSize)
		}
	}

	overall := geom.Rect{Size: c.Size()}
	innerHeight := cfg.Pillar.Height + c.MinHeight() + cfg.Grid.LineHeight() + cfg.HeightTolerance

	var modules []Module
	yPx := 0
	for row := 0; row < spec.Rows; row++ {
		xPx := 0
		for col := 0; col < spec.Columns; col++ {
			inner := geom.Rect{
				Size: geom.Dim2{
					Length: float64(colWidths[col]) * pitch,
					Width:  float64(rowWidths[row]) * pitch,
				},
				Position: geom.Pos2{X: float64(xPx) * pitch, Y: float64(yPx) * pitch},
			}
			borders := ClassifySides(inner, overall)

			m := Module{
				Col:         col,
				Row:         row,
				Inner:       inner,
				InnerHeight: innerHeight,
				PixelOffset: geom.Pos2{X: float64(xPx), Y: float64(yPx)},
				PixelShape:  geom.Dim2{Length: float64(colWidths[col]), Width: float64(rowWidths[row])},
				Borders:     borders,
				Connectors:  c.ScopedConnectors(inner),
			}
			if borders.Has(sides.Back) {
				m.WireSlots = c.ScopedBackWireSlots(inner.Position.X, inner.Size.Length)
			}
			modules = append(modules, m)
			xPx += colWidths[col]
		}
		yPx += rowWidths[row]
	}

	if err := checkTiling(modules, overall, spec); err != nil {
		return nil, err
	}
	return modules, nil
}

// distribute splits total into n parts, remainder to the last part.
func distribute(total, n int) []int {
	base := total / n
	parts := make([]int, n)
	for i := range parts {
		parts[i] = base
	}
	parts[n-1] += total - base*n
	return parts
}

// checkTiling asserts that the modules exactly tile the overall extent:
// module lengths sum to the overall length in every row, module widths sum
// to the overall width in every column, and areas add up. A violation is a
// bug in the splitter, not a user error.
func checkTiling(modules []Module, overall geom.Rect, spec SplitSpec) error {
	area := 0.0
	for row := 0; row < spec.Rows; row++ {
		sum := 0.0
		for col := 0; col < spec.Columns; col++ {
			sum += modules[row*spec.Columns+col].Inner.Size.Length
		}
		if !geom.AlmostEqual(sum, overall.Size.Length) {
			return fmt.Errorf("split %s: row %d module lengths sum to %g, want %g",
				spec, row, sum, overall.Size.Length)
		}
	}
	for col := 0; col < spec.Columns; col++ {
		sum := 0.0
		for row := 0; row < spec.Rows; row++ {
			sum += modules[row*spec.Columns+col].Inner.Size.Width
		}
		if !geom.AlmostEqual(sum, overall.Size.Width) {
			return fmt.Errorf("split %s: column %d module widths sum to %g, want %g",
				spec, col, sum, overall.Size.Width)
		}
	}
	for _, m := range modules {
		area += m.Inner.Size.Length * m.Inner.Size.Width
	}
	if !geom.AlmostEqual(area, overall.Size.Length*overall.Size.Width) {
		return fmt.Errorf("split %s: module areas sum to %g, want %g",
			spec, area, overall.Size.Length*overall.Size.Width)
	}
	return nil
}
