package build

import (
	"math"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
	"github.com/pmuller/led-matrix-enclosure/pkg/kernel"
	"github.com/pmuller/led-matrix-enclosure/pkg/sides"
)

// ConnectorSite is one screw boss joining two modules across an open seam,
// in the module's local frame. Center is where the screw axis pierces the
// seam plane; the axis runs perpendicular to the seam.
type ConnectorSite struct {
	Side   sides.Side
	Center geom.Pos2
}

// ConnectorSites plans the screw bosses of one module: per open side, one
// boss centered on the seam edge plus one corner boss braced against each
// adjacent bordered wall. bossSize is the boss extent along the edge, which
// sets how far the corner boss centers sit from the walls.
//
// Neighboring modules share the full seam edge and, the split being
// grid-regular, the same adjacent walls, so the same rule applied
// independently on both sides yields bosses whose holes line up.
func ConnectorSites(m enclosure.Module, bossSize float64) []ConnectorSite {
	var sites []ConnectorSite
	for _, side := range sides.All {
		if m.Borders.Has(side) {
			continue
		}
		edge := m.Inner.Size.Width
		if !side.IsHorizontal() {
			edge = m.Inner.Size.Length
		}
		sites = append(sites, ConnectorSite{Side: side, Center: seamPoint(m, side, edge/2)})
		for _, wall := range m.Borders.Adjacents(side) {
			along := bossSize / 2
			if !wall.IsStart() {
				along = edge - bossSize/2
			}
			sites = append(sites, ConnectorSite{Side: side, Center: seamPoint(m, side, along)})
		}
	}
	return sites
}

// seamPoint maps a distance along the given open edge to local coordinates.
func seamPoint(m enclosure.Module, side sides.Side, along float64) geom.Pos2 {
	switch side {
	case sides.Left:
		return geom.Pos2{X: 0, Y: along}
	case sides.Right:
		return geom.Pos2{X: m.Inner.Size.Length, Y: along}
	case sides.Front:
		return geom.Pos2{X: along, Y: 0}
	}
	return geom.Pos2{X: along, Y: m.Inner.Size.Width} // back
}

// GlobalHole returns the screw hole position in the global frame, for
// checking seam alignment between neighbors.
func (s ConnectorSite) GlobalHole(m enclosure.Module) geom.Pos2 {
	return geom.Pos2{
		X: m.Inner.Position.X + s.Center.X,
		Y: m.Inner.Position.Y + s.Center.Y,
	}
}

// connectorSolids realizes a site as a boss block to union into the chassis
// and the hole and countersink relief to subtract from it. The boss stands
// on the floor, level with the pillar tops, braced against the seam plane;
// its material depth along the screw axis is the wall thickness plus the
// chamfer length.
func connectorSolids(site ConnectorSite, cfg enclosure.Config, floorZ float64) (boss kernel.Solid, cuts []kernel.Solid, err error) {
	size := cfg.Conn.Size(cfg.Pillar.Height)
	depth := cfg.Conn.WallThickness + cfg.Conn.ChamferLength
	holeR := (cfg.Conn.HoleDiameter + cfg.Conn.HoleTolerance) / 2
	reliefLen := cfg.Conn.ChamferLength + cfg.Conn.ChamferTolerance
	axisZ := floorZ + size/2

	// Unit step from the seam plane toward the module interior.
	var inX, inY float64
	switch site.Side {
	case sides.Left:
		inX = 1
	case sides.Right:
		inX = -1
	case sides.Front:
		inY = 1
	case sides.Back:
		inY = -1
	}

	var bx, by, bl, bw float64
	switch site.Side {
	case sides.Left:
		bx, by, bl, bw = 0, site.Center.Y-size/2, depth, size
	case sides.Right:
		bx, by, bl, bw = site.Center.X-depth, site.Center.Y-size/2, depth, size
	case sides.Front:
		bx, by, bl, bw = site.Center.X-size/2, 0, size, depth
	case sides.Back:
		bx, by, bl, bw = site.Center.X-size/2, site.Center.Y-depth, size, depth
	}
	boss, err = kernel.BoxMin(bx, by, floorZ, bl, bw, size, 0)
	if err != nil {
		return nil, nil, err
	}

	hole, err := kernel.Cylinder(2*depth, holeR)
	if err != nil {
		return nil, nil, err
	}
	relief, err := kernel.Cone(reliefLen, holeR+cfg.Conn.ChamferLength, holeR)
	if err != nil {
		return nil, nil, err
	}

	// Z-axis solids are rotated onto the seam normal. The relief's wide end
	// must open toward the interior, where the screw head sits.
	if inX != 0 {
		hole = kernel.RotateY(hole, math.Pi/2)
		relief = kernel.RotateY(relief, -inX*math.Pi/2)
	} else {
		hole = kernel.RotateX(hole, math.Pi/2)
		relief = kernel.RotateX(relief, inY*math.Pi/2)
	}

	hole = kernel.Translate(hole, site.Center.X+inX*depth/2, site.Center.Y+inY*depth/2, axisZ)
	relief = kernel.Translate(relief,
		site.Center.X+inX*(depth-reliefLen/2),
		site.Center.Y+inY*(depth-reliefLen/2),
		axisZ)
	return boss, []kernel.Solid{hole, relief}, nil
}
