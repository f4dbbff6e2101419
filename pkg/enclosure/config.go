package enclosure

import "fmt"

// BorderSpec tunes the outer walls of bordered module sides.
type BorderSpec struct {
	// Thickness of the wall, in mm.
	Thickness float64
	// Radius of the outer corner fillets, in mm.
	Radius float64
	// LedgeSize is the depth of the inward ledge supporting the panels and
	// the lid, in mm.
	LedgeSize float64
}

// BottomSpec tunes the chassis floor.
type BottomSpec struct {
	// Thickness of the bottom plate, in mm.
	Thickness float64
}

// PillarSpec tunes the internal support pillars bearing the panel load.
type PillarSpec struct {
	// Diameter of the pillar shaft, in mm.
	Diameter float64
	// Height of the pillar, in mm. Panels rest on the pillar tops.
	Height float64
	// BaseDiameter widens the pillar foot, in mm. A wider base resists
	// shear at the bed and improves print adhesion.
	BaseDiameter float64
	// BaseHeight of the conical foot, in mm.
	BaseHeight float64
	// Spacing between pillar centers, in mm.
	Spacing float64
}

// ConnectorSpec tunes the screw bosses that join neighboring modules at
// open seams.
type ConnectorSpec struct {
	// HoleDiameter of the screw hole, in mm.
	HoleDiameter float64
	// HoleTolerance added to the hole diameter, in mm.
	HoleTolerance float64
	// WallThickness of the boss around the hole, in mm.
	WallThickness float64
	// ChamferLength of the printed support relief, in mm.
	ChamferLength float64
	// ChamferTolerance added to the relief, in mm.
	ChamferTolerance float64
}

// Size returns the boss footprint edge length: bosses sit level with the
// pillar tops so panels can rest on them too.
func (s ConnectorSpec) Size(pillarHeight float64) float64 { return pillarHeight }

// GridSpec tunes the light separation grid inside the lid.
type GridSpec struct {
	// HorizontalLineHeight of the lines running along X, in mm.
	HorizontalLineHeight float64
	// VerticalLineHeight of the lines running along Y, in mm. Kept shorter
	// than the horizontal lines so they clear the panel capacitors.
	VerticalLineHeight float64
	// Gap is the line thickness, in mm.
	Gap float64
}

// LineHeight returns the taller of the two line heights.
func (s GridSpec) LineHeight() float64 {
	if s.HorizontalLineHeight > s.VerticalLineHeight {
		return s.HorizontalLineHeight
	}
	return s.VerticalLineHeight
}

// DiffuserSpec tunes the translucent plate on top of the grid.
type DiffuserSpec struct {
	// Thickness of the plate, in mm.
	Thickness float64
	// Margin is extra plate overhang past the chassis outer face on
	// bordered sides, in mm. Zero keeps the lid flush with the walls.
	Margin float64
}

// WireSlotSpec tunes the wire openings through the back border wall.
type WireSlotSpec struct {
	// Height of the slot, in mm. Must pass a female connector housing, not
	// just the bare wires.
	Height float64
	// Clearance added around the connector envelope, in mm.
	Clearance float64
}

// Config gathers every user-tunable generation parameter. It is immutable
// once built and threaded explicitly through the pipeline so a run is fully
// reproducible.
type Config struct {
	Border   BorderSpec
	Bottom   BottomSpec
	Pillar   PillarSpec
	Conn     ConnectorSpec
	Grid     GridSpec
	Diffuser DiffuserSpec
	WireSlot WireSlotSpec

	// HeightTolerance is extra cavity height above the panels, in mm.
	HeightTolerance float64
	// MinModuleSize is the smallest printable module edge, in mm. Splits
	// producing slivers below it are rejected.
	MinModuleSize float64
}

// DefaultConfig returns the empirical defaults. They match 10 mm pitch
// WS2812B matrix panels printed in PLA.
func DefaultConfig() Config {
	return Config{
		Border:   BorderSpec{Thickness: 2, Radius: 1.99, LedgeSize: 2},
		Bottom:   BottomSpec{Thickness: 2},
		Pillar:   PillarSpec{Diameter: 3, Height: 10, BaseDiameter: 10, BaseHeight: 3, Spacing: 25},
		Conn:     ConnectorSpec{HoleDiameter: 3, HoleTolerance: 0.1, WallThickness: 2, ChamferLength: 2, ChamferTolerance: 0.1},
		Grid:     GridSpec{HorizontalLineHeight: 5, VerticalLineHeight: 3, Gap: 0.6},
		Diffuser: DiffuserSpec{Thickness: 0.3},
		WireSlot: WireSlotSpec{Height: 9.5},
		// 9.5 mm passes a female JST housing.

		HeightTolerance: 0.1,
		MinModuleSize:   20,
	}
}

// Validate rejects configurations that cannot produce printable geometry.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Border.Thickness > 0, "border thickness must be positive"},
		{c.Border.Radius >= 0, "border radius must not be negative"},
		{c.Border.Radius < c.Border.Thickness, "border radius must be smaller than the border thickness"},
		{c.Bottom.Thickness > 0, "bottom thickness must be positive"},
		{c.Pillar.Diameter > 0, "pillar diameter must be positive"},
		{c.Pillar.Height > 0, "pillar height must be positive"},
		{c.Pillar.Spacing > c.Pillar.BaseDiameter, "pillar spacing must exceed the pillar base diameter"},
		{c.Conn.WallThickness > 0, "connector wall thickness must be positive"},
		{c.Grid.Gap > 0, "grid gap must be positive"},
		{c.Grid.HorizontalLineHeight > 0, "grid horizontal line height must be positive"},
		{c.Grid.VerticalLineHeight > 0, "grid vertical line height must be positive"},
		{c.Diffuser.Thickness > 0, "diffuser thickness must be positive"},
		{c.Diffuser.Margin >= 0, "diffuser margin must not be negative"},
		{c.WireSlot.Height > 0, "wire slot height must be positive"},
		{c.WireSlot.Clearance >= 0, "wire slot clearance must not be negative"},
		{c.MinModuleSize > 0, "minimum module size must be positive"},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("invalid configuration: %s", check.what)
		}
	}
	return nil
}
