package build

import (
	"testing"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
	"github.com/pmuller/led-matrix-enclosure/pkg/panel"
	"github.com/pmuller/led-matrix-enclosure/pkg/sides"
)

func splitLayout(t *testing.T, spec enclosure.SplitSpec, rows ...string) []enclosure.Module {
	t.Helper()
	c, err := panel.ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout(%v) failed: %v", rows, err)
	}
	modules, err := enclosure.Split(c, spec, enclosure.DefaultConfig())
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	return modules
}

func containsApprox(values []float64, want float64) bool {
	for _, v := range values {
		if geom.AlmostEqual(v, want) {
			return true
		}
	}
	return false
}

// globalVerticalLineStarts returns the global X of every vertical line's
// left edge.
func globalVerticalLineStarts(m enclosure.Module, grid enclosure.GridSpec) []float64 {
	var xs []float64
	for _, line := range GridLines(m, grid, 10) {
		if line.Vertical {
			xs = append(xs, m.Inner.Position.X+line.Rect.Position.X)
		}
	}
	return xs
}

func TestGridLinesSingleModule(t *testing.T) {
	m := splitLayout(t, enclosure.SplitSpec{Columns: 1, Rows: 1}, "8x8")[0]
	lines := GridLines(m, enclosure.DefaultConfig().Grid, 10)

	var horizontal, vertical int
	for _, line := range lines {
		if line.Vertical {
			vertical++
		} else {
			horizontal++
		}
	}
	// A fully bordered 8x8 module separates every cell: 9 lines each way.
	if horizontal != 9 || vertical != 9 {
		t.Errorf("got %d horizontal and %d vertical lines, want 9 and 9", horizontal, vertical)
	}
}

func TestGridLinesFlushAtBorders(t *testing.T) {
	m := splitLayout(t, enclosure.SplitSpec{Columns: 1, Rows: 1}, "8x8")[0]

	minX, maxX := 1e9, -1e9
	for _, line := range GridLines(m, enclosure.DefaultConfig().Grid, 10) {
		if !line.Vertical {
			continue
		}
		if line.Rect.Position.X < minX {
			minX = line.Rect.Position.X
		}
		if line.Rect.MaxX() > maxX {
			maxX = line.Rect.MaxX()
		}
	}
	if !geom.AlmostEqual(minX, 0) {
		t.Errorf("leftmost line starts at %g, want flush with the left border at 0", minX)
	}
	if !geom.AlmostEqual(maxX, 80) {
		t.Errorf("rightmost line ends at %g, want flush with the right border at 80", maxX)
	}
}

func TestGridLinesAgreeAcrossVerticalSeam(t *testing.T) {
	modules := splitLayout(t, enclosure.SplitSpec{Columns: 2, Rows: 1}, "16x16,16x16")
	left, right := modules[0], modules[1]
	grid := enclosure.DefaultConfig().Grid

	leftLines := globalVerticalLineStarts(left, grid)
	rightLines := globalVerticalLineStarts(right, grid)
	seam := right.Inner.Position.X

	// The seam line belongs to the left module alone, pulled flush so it
	// does not cross into the neighbor.
	if !containsApprox(leftLines, seam-grid.Gap) {
		t.Errorf("left module should own the seam line ending at %g", seam)
	}
	for _, x := range rightLines {
		if x < seam-geom.Eps {
			t.Errorf("right module line at %g crosses the seam at %g", x, seam)
		}
	}

	// No line position is emitted by both modules.
	for _, x := range leftLines {
		if containsApprox(rightLines, x) {
			t.Errorf("line at global x=%g emitted by both modules", x)
		}
	}

	// Interior lines continue the global pitch on both sides of the seam.
	if !containsApprox(leftLines, 10-grid.Gap/2) {
		t.Error("left module missing interior line at pitch 1")
	}
	if !containsApprox(rightLines, seam+10-grid.Gap/2) {
		t.Error("right module missing first interior line past the seam")
	}
}

func TestGridLinesOpenFrontHasNoEdgeLine(t *testing.T) {
	modules := splitLayout(t, enclosure.SplitSpec{Columns: 1, Rows: 2}, "16x16", "16x16")
	back := modules[1]
	if back.Borders.Has(sides.Front) {
		t.Fatal("back module should have an open front")
	}
	for _, line := range GridLines(back, enclosure.DefaultConfig().Grid, 10) {
		if !line.Vertical && geom.AlmostEqual(line.Rect.Position.Y, 0) {
			t.Errorf("open front edge carries a line at y=%g", line.Rect.Position.Y)
		}
	}
}
