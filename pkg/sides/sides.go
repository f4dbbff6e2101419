// Package sides models the four sides of a rectangular enclosure module and
// per-side presence flags.
//
// Left and right run along the X axis ("horizontal" sides); front and back
// run along the Y axis. A Set records, per side, whether some feature is
// present there — most importantly whether a module edge carries a border
// wall (a true outer edge) or is open (an internal seam mating with a
// neighboring module).
package sides

import "strings"

// Side identifies one edge of a module or enclosure.
type Side int

const (
	Left Side = iota
	Right
	Front
	Back
)

// All lists every side in a stable order.
var All = [4]Side{Left, Right, Front, Back}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return "invalid"
}

// Parse converts a side name to a Side.
func Parse(name string) (Side, bool) {
	switch name {
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "front":
		return Front, true
	case "back":
		return Back, true
	}
	return 0, false
}

// IsHorizontal reports whether the side runs along the X axis.
func (s Side) IsHorizontal() bool { return s == Left || s == Right }

// IsStart reports whether the side is at the axis origin (left or front).
func (s Side) IsStart() bool { return s == Left || s == Front }

// Set holds a presence flag per side. The zero value has every side absent.
type Set struct {
	flags [4]bool
}

// NewSet returns a set with the given sides present.
func NewSet(present ...Side) Set {
	var set Set
	for _, s := range present {
		set.flags[s] = true
	}
	return set
}

// FullSet returns a set with all four sides present.
func FullSet() Set { return NewSet(Left, Right, Front, Back) }

// Has reports whether the side is present.
func (s Set) Has(side Side) bool { return s.flags[side] }

// With returns a copy of the set with the side added.
func (s Set) With(side Side) Set {
	s.flags[side] = true
	return s
}

// Without returns a copy of the set with the side removed.
func (s Set) Without(side Side) Set {
	s.flags[side] = false
	return s
}

// Invert returns the complement set.
func (s Set) Invert() Set {
	for i := range s.flags {
		s.flags[i] = !s.flags[i]
	}
	return s
}

// Count returns the number of present sides.
func (s Set) Count() int {
	n := 0
	for _, f := range s.flags {
		if f {
			n++
		}
	}
	return n
}

// Horizontal returns the present sides on the X axis.
func (s Set) Horizontal() []Side { return s.filter(func(side Side) bool { return side.IsHorizontal() }) }

// Vertical returns the present sides on the Y axis.
func (s Set) Vertical() []Side { return s.filter(func(side Side) bool { return !side.IsHorizontal() }) }

// Present returns every present side in stable order.
func (s Set) Present() []Side { return s.filter(func(Side) bool { return true }) }

// Adjacents returns the present sides perpendicular to the given side.
func (s Set) Adjacents(side Side) []Side {
	var candidates [2]Side
	if side.IsHorizontal() {
		candidates = [2]Side{Front, Back}
	} else {
		candidates = [2]Side{Left, Right}
	}
	var out []Side
	for _, c := range candidates {
		if s.flags[c] {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) filter(keep func(Side) bool) []Side {
	var out []Side
	for _, side := range All {
		if s.flags[side] && keep(side) {
			out = append(out, side)
		}
	}
	return out
}

func (s Set) String() string {
	present := s.Present()
	if len(present) == 0 {
		return "none"
	}
	names := make([]string, len(present))
	for i, side := range present {
		names[i] = side.String()
	}
	return strings.Join(names, " ")
}
