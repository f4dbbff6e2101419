package panel

import (
	"fmt"
	"strings"

	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
)

// Composite is a grid of LED matrix panels.
//
// Rows are laid out front to back, panels within a row left to right. Panels
// cannot be stacked vertically within a row: a row's width is the maximum
// panel width in that row, and the overall length is the maximum row length.
type Composite struct {
	rows [][]Profile
}

// ParseLayout parses one token per row, each a comma-separated list of
// profile names, e.g. []string{"16x16,16x16", "32x8"}.
func ParseLayout(rowTokens []string) (Composite, error) {
	if len(rowTokens) == 0 {
		return Composite{}, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	rows := make([][]Profile, 0, len(rowTokens))
	for i, token := range rowTokens {
		if strings.TrimSpace(token) == "" {
			return Composite{}, fmt.Errorf("%w: row %d is empty", ErrInvalidLayout, i)
		}
		var row []Profile
		for _, name := range strings.Split(token, ",") {
			profile, err := LookupProfile(strings.TrimSpace(name))
			if err != nil {
				return Composite{}, fmt.Errorf("row %d: %w", i, err)
			}
			row = append(row, profile)
		}
		rows = append(rows, row)
	}

	c := Composite{rows: rows}
	if err := c.validate(); err != nil {
		return Composite{}, err
	}
	return c, nil
}

func (c Composite) validate() error {
	pitch := c.rows[0][0].PixelSize
	for i, row := range c.rows {
		for _, p := range row {
			if p.PixelSize != pitch {
				return fmt.Errorf("%w: row %d mixes pixel pitches (%g vs %g mm)",
					ErrInvalidLayout, i, p.PixelSize, pitch)
			}
		}
	}
	shape := c.Shape()
	if shape.Length <= 0 || shape.Width <= 0 {
		return fmt.Errorf("%w: degenerate extent %s", ErrInvalidLayout, shape)
	}
	return nil
}

// Rows returns the resolved profile grid.
func (c Composite) Rows() [][]Profile { return c.rows }

// PanelCount returns the total number of panels.
func (c Composite) PanelCount() int {
	n := 0
	for _, row := range c.rows {
		n += len(row)
	}
	return n
}

// PixelSize returns the pixel pitch in mm, uniform across all panels.
func (c Composite) PixelSize() float64 { return c.rows[0][0].PixelSize }

// MinHeight returns the tallest per-panel clearance, in mm.
func (c Composite) MinHeight() float64 {
	max := 0.0
	for _, row := range c.rows {
		for _, p := range row {
			if p.MinHeight > max {
				max = p.MinHeight
			}
		}
	}
	return max
}

// Shape returns the overall extent in pixels: length is the maximum row
// length, width is the sum of each row's maximum panel width.
func (c Composite) Shape() geom.Dim2 {
	var length, width float64
	for _, row := range c.rows {
		var rowLength, rowMaxWidth float64
		for _, p := range row {
			rowLength += p.Layout.Length
			if p.Layout.Width > rowMaxWidth {
				rowMaxWidth = p.Layout.Width
			}
		}
		if rowLength > length {
			length = rowLength
		}
		width += rowMaxWidth
	}
	return geom.Dim2{Length: length, Width: width}
}

// Size returns the overall extent in mm.
func (c Composite) Size() geom.Dim2 {
	shape := c.Shape()
	pitch := c.PixelSize()
	return geom.Dim2{Length: shape.Length * pitch, Width: shape.Width * pitch}
}

// Placement is a panel positioned in the global frame.
type Placement struct {
	Profile  Profile
	Row, Col int
	Rect     geom.Rect
}

// Placements returns every panel with its global position, rows front to
// back, panels left to right.
func (c Composite) Placements() []Placement {
	var out []Placement
	yOffset := 0.0
	for rowIndex, row := range c.rows {
		xOffset := 0.0
		rowMaxWidth := 0.0
		for colIndex, p := range row {
			size := p.Size()
			out = append(out, Placement{
				Profile: p,
				Row:     rowIndex,
				Col:     colIndex,
				Rect:    geom.Rect{Size: size, Position: geom.Pos2{X: xOffset, Y: yOffset}},
			})
			xOffset += size.Length
			if size.Width > rowMaxWidth {
				rowMaxWidth = size.Width
			}
		}
		yOffset += rowMaxWidth
	}
	return out
}

// Connectors returns every panel connector footprint in the global frame,
// grouped per row.
func (c Composite) Connectors() [][]geom.Rect {
	var out [][]geom.Rect
	yOffset := 0.0
	for _, row := range c.rows {
		xOffset := 0.0
		rowMaxWidth := 0.0
		var rowConnectors []geom.Rect
		for _, p := range row {
			size := p.Size()
			for _, connector := range p.Connectors {
				rowConnectors = append(rowConnectors, connector.Translate(xOffset, yOffset))
			}
			xOffset += size.Length
			if size.Width > rowMaxWidth {
				rowMaxWidth = size.Width
			}
		}
		yOffset += rowMaxWidth
		out = append(out, rowConnectors)
	}
	return out
}

// ScopedConnectors returns the connectors overlapping scope, translated into
// the scope's frame.
func (c Composite) ScopedConnectors(scope geom.Rect) []geom.Rect {
	var out []geom.Rect
	for _, row := range c.Connectors() {
		for _, connector := range row {
			if connector.Overlaps(scope) {
				out = append(out, connector.Translate(-scope.Position.X, -scope.Position.Y))
			}
		}
	}
	return out
}

// BackWireSlots returns the connector footprints of the first row. The
// harness wires exit through the back border wall at these positions.
func (c Composite) BackWireSlots() []geom.Rect {
	return c.Connectors()[0]
}

// ScopedBackWireSlots returns the back wire slots whose start or end falls
// within [offset, offset+length] on the X axis, translated so offset is the
// module's origin.
func (c Composite) ScopedBackWireSlots(offset, length float64) []geom.Rect {
	var out []geom.Rect
	for _, slot := range c.BackWireSlots() {
		start := slot.Position.X
		end := slot.Position.X + slot.Size.Length
		if (offset <= start && start <= offset+length) ||
			(offset <= end && end <= offset+length) {
			out = append(out, slot.Translate(-offset, 0))
		}
	}
	return out
}
