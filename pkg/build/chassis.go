package build

import (
	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
	"github.com/pmuller/led-matrix-enclosure/pkg/kernel"
	"github.com/pmuller/led-matrix-enclosure/pkg/sides"
)

// cavityOvercut extends subtraction tools past the surfaces they cut
// through, so boolean results have no coincident faces.
const cavityOvercut = 1.0

// BuildChassis realizes one module's chassis: bottom plate and border
// walls with filleted outer corners, panel support ledges, pillars, screw
// bosses at open seams, and wire slots through the back wall.
func BuildChassis(m enclosure.Module, cfg enclosure.Config) (kernel.Solid, error) {
	floorZ := cfg.Bottom.Thickness

	body, err := chassisBody(m, cfg)
	if err != nil {
		return nil, err
	}

	parts := []kernel.Solid{body}
	ledges, err := ledgeSolids(m, cfg)
	if err != nil {
		return nil, err
	}
	parts = append(parts, ledges...)

	positions, err := PillarPositions(m, cfg.Pillar)
	if err != nil {
		return nil, err
	}
	pillars, err := pillarSolids(positions, cfg.Pillar, floorZ)
	if err != nil {
		return nil, err
	}
	parts = append(parts, pillars...)

	var cuts []kernel.Solid
	for _, site := range ConnectorSites(m, cfg.Conn.Size(cfg.Pillar.Height)) {
		boss, siteCuts, err := connectorSolids(site, cfg, floorZ)
		if err != nil {
			return nil, err
		}
		parts = append(parts, boss)
		cuts = append(cuts, siteCuts...)
	}

	for _, slot := range WireSlotCuts(m, cfg) {
		cut, err := kernel.BoxMin(slot.Position.X, slot.Position.Y, floorZ,
			slot.Size.Length, slot.Size.Width, cfg.WireSlot.Height, 0)
		if err != nil {
			return nil, err
		}
		cuts = append(cuts, cut)
	}

	chassis, err := kernel.Union(parts...)
	if err != nil {
		return nil, err
	}
	return kernel.Subtract(chassis, cuts...), nil
}

// chassisBody builds the bottom plate and border walls in one piece: an
// extrusion of the outer footprint minus the inner cavity. The cavity is
// stretched past the outer edge on open sides, which is what leaves those
// sides wall-less.
func chassisBody(m enclosure.Module, cfg enclosure.Config) (kernel.Solid, error) {
	outer := localRect(m, m.Outer(cfg.Border.Thickness))
	height := m.OuterHeight(cfg.Bottom.Thickness)

	// The extrusion profile fillets all four corners. Growing the profile
	// past the trim box on open sides pushes those fillets outside the kept
	// volume, so seam edges stay sharp and neighboring modules mate flush.
	profile := grow(outer, m.Borders.Invert(), cfg.Border.Radius+cavityOvercut)
	slab, err := kernel.RoundedSlab(profile.Position.X, profile.Position.Y, 0,
		profile.Size.Length, profile.Size.Width, height, cfg.Border.Radius)
	if err != nil {
		return nil, err
	}
	trim, err := kernel.BoxMin(outer.Position.X, outer.Position.Y, 0,
		outer.Size.Length, outer.Size.Width, height, 0)
	if err != nil {
		return nil, err
	}
	body := kernel.Intersect(slab, trim)

	cavity := grow(geom.Rect{Size: m.Inner.Size}, m.Borders.Invert(),
		cfg.Border.Thickness+cfg.Border.Radius+cavityOvercut)
	cavityBox, err := kernel.BoxMin(cavity.Position.X, cavity.Position.Y, cfg.Bottom.Thickness,
		cavity.Size.Length, cavity.Size.Width, m.InnerHeight+cavityOvercut, 0)
	if err != nil {
		return nil, err
	}
	return kernel.Subtract(body, cavityBox), nil
}

// ledgeSolids builds a support bar against each bordered wall, running
// floor to pillar height. Panels and the lid grid rest on the ledge tops
// together with the pillars.
func ledgeSolids(m enclosure.Module, cfg enclosure.Config) ([]kernel.Solid, error) {
	depth := cfg.Border.LedgeSize
	height := cfg.Pillar.Height
	floorZ := cfg.Bottom.Thickness
	length := m.Inner.Size.Length
	width := m.Inner.Size.Width

	var solids []kernel.Solid
	add := func(x, y, l, w float64) error {
		s, err := kernel.BoxMin(x, y, floorZ, l, w, height, 0)
		if err != nil {
			return err
		}
		solids = append(solids, s)
		return nil
	}

	for _, side := range m.Borders.Present() {
		var err error
		switch side {
		case sides.Left:
			err = add(0, 0, depth, width)
		case sides.Right:
			err = add(length-depth, 0, depth, width)
		case sides.Front:
			err = add(0, 0, length, depth)
		case sides.Back:
			err = add(0, width-depth, length, depth)
		}
		if err != nil {
			return nil, err
		}
	}
	return solids, nil
}

// localRect translates a global-frame rect into the module's local frame.
func localRect(m enclosure.Module, r geom.Rect) geom.Rect {
	return r.Translate(-m.Inner.Position.X, -m.Inner.Position.Y)
}

// grow expands a rect by amount on each side in the set.
func grow(r geom.Rect, set sides.Set, amount float64) geom.Rect {
	if set.Has(sides.Left) {
		r.Position.X -= amount
		r.Size.Length += amount
	}
	if set.Has(sides.Right) {
		r.Size.Length += amount
	}
	if set.Has(sides.Front) {
		r.Position.Y -= amount
		r.Size.Width += amount
	}
	if set.Has(sides.Back) {
		r.Size.Width += amount
	}
	return r
}
