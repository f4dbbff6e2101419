package build

import (
	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
)

// WireSlotCuts plans the openings through the back border wall, in the
// module's local frame. Each cut clears a panel connector footprint plus
// the configured clearance on both sides, and runs through the full wall
// and ledge depth so a plugged-in housing can pass.
//
// Only modules whose back side is bordered carry wire slots; the splitter
// already scoped them, so an empty plan here just means wires exit through
// an open seam into the neighboring module.
func WireSlotCuts(m enclosure.Module, cfg enclosure.Config) []geom.Rect {
	const overcut = 1.0

	depth := cfg.Border.LedgeSize + cfg.Border.Thickness + overcut
	cuts := make([]geom.Rect, 0, len(m.WireSlots))
	for _, slot := range m.WireSlots {
		cuts = append(cuts, geom.Rect{
			Size: geom.Dim2{
				Length: slot.Size.Length + 2*cfg.WireSlot.Clearance,
				Width:  depth,
			},
			Position: geom.Pos2{
				X: slot.Position.X - cfg.WireSlot.Clearance,
				Y: m.Inner.Size.Width - cfg.Border.LedgeSize,
			},
		})
	}
	return cuts
}
