package build

import (
	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
	"github.com/pmuller/led-matrix-enclosure/pkg/kernel"
	"github.com/pmuller/led-matrix-enclosure/pkg/sides"
)

// GridLine is one light separation wall inside the lid, in the module's
// local frame. Horizontal lines run along X, vertical lines along Y.
// Vertical lines are shorter and hang flush with the horizontal line tops,
// leaving clearance for the panel capacitors underneath.
type GridLine struct {
	Rect     geom.Rect
	Vertical bool
}

// GridLines plans the separation grid of one module.
//
// Lines sit on the global pixel pitch, so plans computed independently for
// adjacent modules continue each other across the seam. Each seam line is
// owned by exactly one module: the one on the left (for vertical seams) or
// on the front (for horizontal seams). That is achieved by always treating
// the back and right sides as line-carrying, whether bordered or open, and
// never the open front and left sides.
func GridLines(m enclosure.Module, spec enclosure.GridSpec, pitch float64) []GridLine {
	carriers := m.Borders.With(sides.Back).With(sides.Right)

	lengthMM := m.PixelShape.Length * pitch
	widthMM := m.PixelShape.Width * pitch

	var lines []GridLine
	for _, i := range lineIndices(int(m.PixelShape.Width), carriers.Has(sides.Front)) {
		y := lineOffset(i, int(m.PixelShape.Width), pitch, spec.Gap,
			carriers.Has(sides.Front), true)
		lines = append(lines, GridLine{
			Rect: geom.Rect{
				Size:     geom.Dim2{Length: lengthMM, Width: spec.Gap},
				Position: geom.Pos2{X: 0, Y: y},
			},
		})
	}
	for _, i := range lineIndices(int(m.PixelShape.Length), carriers.Has(sides.Left)) {
		x := lineOffset(i, int(m.PixelShape.Length), pitch, spec.Gap,
			carriers.Has(sides.Left), true)
		lines = append(lines, GridLine{
			Rect: geom.Rect{
				Size:     geom.Dim2{Length: spec.Gap, Width: widthMM},
				Position: geom.Pos2{X: x, Y: 0},
			},
			Vertical: true,
		})
	}
	return lines
}

// lineIndices returns the pitch indices that carry a line. The end side is
// always a carrier; the start side only when it carries lines itself.
func lineIndices(cells int, startCarries bool) []int {
	start := 1
	if startCarries {
		start = 0
	}
	var indices []int
	for i := start; i <= cells; i++ {
		indices = append(indices, i)
	}
	return indices
}

// lineOffset places line i so lines are centered on pitch multiples, except
// at carried extremities where they are pulled flush with the edge.
func lineOffset(i, cells int, pitch, gap float64, startCarries, endCarries bool) float64 {
	off := float64(i)*pitch - gap/2
	if startCarries && i == 0 {
		off += gap / 2
	}
	if endCarries && i == cells {
		off -= gap / 2
	}
	return off
}

// gridSolid realizes the planned lines on top of the diffuser plate.
// Vertical lines are raised so their tops align with the horizontal tops.
func gridSolid(lines []GridLine, spec enclosure.GridSpec, baseZ float64) (kernel.Solid, error) {
	solids := make([]kernel.Solid, 0, len(lines))
	for _, line := range lines {
		z, h := baseZ, spec.HorizontalLineHeight
		if line.Vertical {
			h = spec.VerticalLineHeight
			z = baseZ + spec.HorizontalLineHeight - spec.VerticalLineHeight
		}
		s, err := kernel.BoxMin(line.Rect.Position.X, line.Rect.Position.Y, z,
			line.Rect.Size.Length, line.Rect.Size.Width, h, 0)
		if err != nil {
			return nil, err
		}
		solids = append(solids, s)
	}
	return kernel.Union(solids...)
}
