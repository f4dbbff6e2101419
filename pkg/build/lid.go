package build

import (
	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/kernel"
)

// BuildLid realizes one module's lid in print orientation: the thin
// diffuser plate flat on the bed with the separation grid standing on top.
// Assembled, the lid flips over and drops onto the chassis, the grid
// hanging down between the LEDs.
//
// On bordered sides the plate extends over the border wall, flush with the
// chassis outer face (plus any configured overhang margin), so the lid caps
// the wall. On open sides it stops at the seam, flush with the neighboring
// module's lid.
func BuildLid(m enclosure.Module, cfg enclosure.Config) (kernel.Solid, error) {
	plate := localRect(m, m.Outer(cfg.Border.Thickness))
	plate = grow(plate, m.Borders, cfg.Diffuser.Margin)

	// Same fillet trick as the chassis body: round the profile, grow it
	// past the trim on open sides, keep seam edges sharp.
	profile := grow(plate, m.Borders.Invert(), cfg.Border.Radius+cavityOvercut)
	slab, err := kernel.RoundedSlab(profile.Position.X, profile.Position.Y, 0,
		profile.Size.Length, profile.Size.Width, cfg.Diffuser.Thickness, cfg.Border.Radius)
	if err != nil {
		return nil, err
	}
	trim, err := kernel.BoxMin(plate.Position.X, plate.Position.Y, 0,
		plate.Size.Length, plate.Size.Width, cfg.Diffuser.Thickness, 0)
	if err != nil {
		return nil, err
	}
	parts := []kernel.Solid{kernel.Intersect(slab, trim)}

	grid, err := gridSolid(GridLines(m, cfg.Grid, m.Inner.Size.Length/m.PixelShape.Length),
		cfg.Grid, cfg.Diffuser.Thickness)
	if err != nil {
		return nil, err
	}
	parts = append(parts, grid)

	return kernel.Union(parts...)
}
