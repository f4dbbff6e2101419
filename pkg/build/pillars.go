package build

import (
	"fmt"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
	"github.com/pmuller/led-matrix-enclosure/pkg/kernel"
)

// PillarPositions plans the support pillar centers of one module, in the
// module's local frame.
//
// Candidates sit on a regular grid at the configured spacing, inset by half
// a spacing from every edge. A candidate overlapping a panel connector
// footprint is dropped, since the connector needs that room underneath the
// panel. If every candidate is dropped the module has no panel support at
// all, which is reported as ErrFeatureCollision.
func PillarPositions(m enclosure.Module, spec enclosure.PillarSpec) ([]geom.Pos2, error) {
	half := spec.Spacing / 2
	footprint := geom.Dim2{Length: spec.BaseDiameter, Width: spec.BaseDiameter}

	var placed []geom.Pos2
	candidates := 0
	for y := half; y <= m.Inner.Size.Width-half+geom.Eps; y += spec.Spacing {
		for x := half; x <= m.Inner.Size.Length-half+geom.Eps; x += spec.Spacing {
			candidates++
			base := geom.Rect{
				Size:     footprint,
				Position: geom.Pos2{X: x - spec.BaseDiameter/2, Y: y - spec.BaseDiameter/2},
			}
			if overlapsAny(base, m.Connectors) {
				continue
			}
			placed = append(placed, geom.Pos2{X: x, Y: y})
		}
	}
	if candidates > 0 && len(placed) == 0 {
		return nil, fmt.Errorf("%w: %s: every pillar position overlaps a panel connector",
			enclosure.ErrFeatureCollision, m.Label())
	}
	return placed, nil
}

func overlapsAny(r geom.Rect, others []geom.Rect) bool {
	for _, other := range others {
		if r.Overlaps(other) {
			return true
		}
	}
	return false
}

// pillarSolids realizes the pillars: a shaft topped off at panel height,
// over a conical foot that resists shear and helps bed adhesion.
func pillarSolids(positions []geom.Pos2, spec enclosure.PillarSpec, floorZ float64) ([]kernel.Solid, error) {
	var solids []kernel.Solid
	for _, p := range positions {
		shaft, err := kernel.Cylinder(spec.Height, spec.Diameter/2)
		if err != nil {
			return nil, err
		}
		solids = append(solids, kernel.Translate(shaft, p.X, p.Y, floorZ+spec.Height/2))

		if spec.BaseHeight > 0 && spec.BaseDiameter > spec.Diameter {
			foot, err := kernel.Cone(spec.BaseHeight, spec.BaseDiameter/2, spec.Diameter/2)
			if err != nil {
				return nil, err
			}
			solids = append(solids, kernel.Translate(foot, p.X, p.Y, floorZ+spec.BaseHeight/2))
		}
	}
	return solids, nil
}
