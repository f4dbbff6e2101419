// Package geom provides the 2D dimension and position algebra the
// enclosure generator is built on.
//
// All values are millimeters. Positions are expressed in a single global
// frame whose origin is the front-left corner of the overall enclosure, so
// per-module geometry computed independently can be reassembled without any
// coordinate transformation.
package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Eps is the tolerance used for coordinate comparisons. Splitting and side
// classification operate on sums of floats, so exact equality is too strict.
const Eps = 1e-6

// AlmostEqual reports whether a and b differ by less than Eps.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < Eps
}

// Dim2 is a 2D size: Length along the X axis, Width along the Y axis.
type Dim2 struct {
	Length float64
	Width  float64
}

// ParseDim2 parses a "LENGTHxWIDTH" token, e.g. "16x16" or "2x1".
func ParseDim2(spec string) (Dim2, error) {
	parts := strings.Split(spec, "x")
	if len(parts) != 2 {
		return Dim2{}, fmt.Errorf("invalid dimension %q: want LENGTHxWIDTH", spec)
	}
	length, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Dim2{}, fmt.Errorf("invalid dimension %q: %w", spec, err)
	}
	width, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Dim2{}, fmt.Errorf("invalid dimension %q: %w", spec, err)
	}
	return Dim2{Length: length, Width: width}, nil
}

func (d Dim2) String() string {
	return fmt.Sprintf("%sx%s", formatFloat(d.Length), formatFloat(d.Width))
}

// Pos2 is a 2D offset from the global origin.
type Pos2 struct {
	X float64
	Y float64
}

// Add returns the position translated by (x, y).
func (p Pos2) Add(x, y float64) Pos2 { return Pos2{X: p.X + x, Y: p.Y + y} }

// AddDim returns the position translated by a dimension.
func (p Pos2) AddDim(d Dim2) Pos2 { return p.Add(d.Length, d.Width) }

func (p Pos2) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(p.X), formatFloat(p.Y))
}

// Rect is an axis-aligned rectangle: a size placed at a position. Position is
// the min corner (front-left) in the frame of its parent.
type Rect struct {
	Size     Dim2
	Position Pos2
}

// MaxX returns the X coordinate of the rectangle's far edge.
func (r Rect) MaxX() float64 { return r.Position.X + r.Size.Length }

// MaxY returns the Y coordinate of the rectangle's far edge.
func (r Rect) MaxY() float64 { return r.Position.Y + r.Size.Width }

// Corners returns the four corners: front-left, front-right, back-right,
// back-left.
func (r Rect) Corners() [4]Pos2 {
	return [4]Pos2{
		r.Position,
		r.Position.Add(r.Size.Length, 0),
		r.Position.AddDim(r.Size),
		r.Position.Add(0, r.Size.Width),
	}
}

// Contains reports whether the point lies within the rectangle, edges
// included.
func (r Rect) Contains(p Pos2) bool {
	return r.Position.X <= p.X && p.X <= r.MaxX() &&
		r.Position.Y <= p.Y && p.Y <= r.MaxY()
}

// Overlaps reports whether any corner of r lies within other. This matches
// the connector/pillar collision rule: footprints are small relative to the
// regions they are tested against, so corner containment is sufficient.
func (r Rect) Overlaps(other Rect) bool {
	for _, corner := range r.Corners() {
		if other.Contains(corner) {
			return true
		}
	}
	return false
}

// Translate returns the rectangle moved by (x, y).
func (r Rect) Translate(x, y float64) Rect {
	return Rect{Size: r.Size, Position: r.Position.Add(x, y)}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s@%s", r.Size, r.Position)
}

// formatFloat renders a float without a trailing ".0" so that parse/format
// round-trips match the input tokens ("16x16", not "16.0x16.0").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
