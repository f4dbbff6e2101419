// Package panel models LED matrix panels and resolves a requested panel
// arrangement into an absolute layout: per-panel positions, the overall
// extent, and the global positions of every wire connector.
//
// Panels come in a small closed set of size classes (profiles). Each profile
// maps to fixed physical dimensions and fixed wire-connector footprints on
// the panel's back, which downstream builders use for collision avoidance
// (pillars) and wall openings (wire slots).
package panel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
)

// ErrInvalidLayout reports a malformed or unsupported panel arrangement.
var ErrInvalidLayout = errors.New("invalid panel layout")

// Profile describes one LED matrix size class.
type Profile struct {
	// Name is the layout token, e.g. "16x16".
	Name string
	// Layout is the pixel grid of the panel.
	Layout geom.Dim2
	// PixelSize is the pitch of one pixel, in mm.
	PixelSize float64
	// MinHeight is the minimum clearance under the panel, in mm. It covers
	// the PCB plus the capacitors between the LEDs.
	MinHeight float64
	// Connectors are the wire connector footprints on the panel's back,
	// positioned in the panel's own frame, in mm.
	Connectors []geom.Rect
}

// Size returns the physical panel size in mm.
func (p Profile) Size() geom.Dim2 {
	return geom.Dim2{
		Length: p.Layout.Length * p.PixelSize,
		Width:  p.Layout.Width * p.PixelSize,
	}
}

// Profiles is the closed set of supported panel size classes. Footprints
// were measured on the common WS2812B matrix boards.
var Profiles = map[string]Profile{
	"8x8": {
		Name:      "8x8",
		Layout:    geom.Dim2{Length: 8, Width: 8},
		PixelSize: 10,
		MinHeight: 1.15,
		Connectors: []geom.Rect{
			{Size: geom.Dim2{Length: 15, Width: 50}, Position: geom.Pos2{X: 12, Y: 15}}, // input
			{Size: geom.Dim2{Length: 15, Width: 50}, Position: geom.Pos2{X: 32, Y: 15}}, // power
			{Size: geom.Dim2{Length: 15, Width: 50}, Position: geom.Pos2{X: 52, Y: 15}}, // output
		},
	},
	"16x16": {
		Name:      "16x16",
		Layout:    geom.Dim2{Length: 16, Width: 16},
		PixelSize: 10,
		MinHeight: 1.25,
		Connectors: []geom.Rect{
			{Size: geom.Dim2{Length: 20, Width: 100}, Position: geom.Pos2{X: 30, Y: 30}},
			{Size: geom.Dim2{Length: 20, Width: 100}, Position: geom.Pos2{X: 70, Y: 30}},
			{Size: geom.Dim2{Length: 20, Width: 100}, Position: geom.Pos2{X: 110, Y: 30}},
		},
	},
	"32x8": {
		Name:      "32x8",
		Layout:    geom.Dim2{Length: 32, Width: 8},
		PixelSize: 10,
		MinHeight: 1.15,
		Connectors: []geom.Rect{
			{Size: geom.Dim2{Length: 20, Width: 50}, Position: geom.Pos2{X: 30, Y: 15}},
			{Size: geom.Dim2{Length: 20, Width: 50}, Position: geom.Pos2{X: 150, Y: 15}},
			{Size: geom.Dim2{Length: 20, Width: 50}, Position: geom.Pos2{X: 280, Y: 15}},
		},
	},
}

// ProfileNames returns the supported profile tokens, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupProfile resolves a layout token to its profile.
func LookupProfile(name string) (Profile, error) {
	p, ok := Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: unknown panel profile %q (supported: %v)",
			ErrInvalidLayout, name, ProfileNames())
	}
	return p, nil
}
