package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
)

// fileConfig mirrors enclosure.Config with optional fields, so a TOML file
// only overrides the parameters it actually sets.
type fileConfig struct {
	Border struct {
		Thickness *float64 `toml:"thickness"`
		Radius    *float64 `toml:"radius"`
		LedgeSize *float64 `toml:"ledge_size"`
	} `toml:"border"`
	Bottom struct {
		Thickness *float64 `toml:"thickness"`
	} `toml:"bottom"`
	Pillar struct {
		Diameter     *float64 `toml:"diameter"`
		Height       *float64 `toml:"height"`
		BaseDiameter *float64 `toml:"base_diameter"`
		BaseHeight   *float64 `toml:"base_height"`
		Spacing      *float64 `toml:"spacing"`
	} `toml:"pillar"`
	Connector struct {
		HoleDiameter     *float64 `toml:"hole_diameter"`
		HoleTolerance    *float64 `toml:"hole_tolerance"`
		WallThickness    *float64 `toml:"wall_thickness"`
		ChamferLength    *float64 `toml:"chamfer_length"`
		ChamferTolerance *float64 `toml:"chamfer_tolerance"`
	} `toml:"connector"`
	Grid struct {
		HorizontalLineHeight *float64 `toml:"horizontal_line_height"`
		VerticalLineHeight   *float64 `toml:"vertical_line_height"`
		Gap                  *float64 `toml:"gap"`
	} `toml:"grid"`
	Diffuser struct {
		Thickness *float64 `toml:"thickness"`
		Margin    *float64 `toml:"margin"`
	} `toml:"diffuser"`
	WireSlot struct {
		Height    *float64 `toml:"height"`
		Clearance *float64 `toml:"clearance"`
	} `toml:"wire_slot"`
	HeightTolerance *float64 `toml:"height_tolerance"`
	MinModuleSize   *float64 `toml:"min_module_size"`
}

// loadConfigFile overlays the TOML file at path onto cfg.
func loadConfigFile(path string, cfg *enclosure.Config) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}

	apply := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&cfg.Border.Thickness, fc.Border.Thickness)
	apply(&cfg.Border.Radius, fc.Border.Radius)
	apply(&cfg.Border.LedgeSize, fc.Border.LedgeSize)
	apply(&cfg.Bottom.Thickness, fc.Bottom.Thickness)
	apply(&cfg.Pillar.Diameter, fc.Pillar.Diameter)
	apply(&cfg.Pillar.Height, fc.Pillar.Height)
	apply(&cfg.Pillar.BaseDiameter, fc.Pillar.BaseDiameter)
	apply(&cfg.Pillar.BaseHeight, fc.Pillar.BaseHeight)
	apply(&cfg.Pillar.Spacing, fc.Pillar.Spacing)
	apply(&cfg.Conn.HoleDiameter, fc.Connector.HoleDiameter)
	apply(&cfg.Conn.HoleTolerance, fc.Connector.HoleTolerance)
	apply(&cfg.Conn.WallThickness, fc.Connector.WallThickness)
	apply(&cfg.Conn.ChamferLength, fc.Connector.ChamferLength)
	apply(&cfg.Conn.ChamferTolerance, fc.Connector.ChamferTolerance)
	apply(&cfg.Grid.HorizontalLineHeight, fc.Grid.HorizontalLineHeight)
	apply(&cfg.Grid.VerticalLineHeight, fc.Grid.VerticalLineHeight)
	apply(&cfg.Grid.Gap, fc.Grid.Gap)
	apply(&cfg.Diffuser.Thickness, fc.Diffuser.Thickness)
	apply(&cfg.Diffuser.Margin, fc.Diffuser.Margin)
	apply(&cfg.WireSlot.Height, fc.WireSlot.Height)
	apply(&cfg.WireSlot.Clearance, fc.WireSlot.Clearance)
	apply(&cfg.HeightTolerance, fc.HeightTolerance)
	apply(&cfg.MinModuleSize, fc.MinModuleSize)
	return nil
}

// configFlagBindings maps flag names to config fields. Registration uses
// the current field values as flag defaults, so --help shows the real
// defaults.
func configFlagBindings(cfg *enclosure.Config) map[string]struct {
	target *float64
	help   string
} {
	type binding = struct {
		target *float64
		help   string
	}
	return map[string]binding{
		"border-thickness":   {&cfg.Border.Thickness, "border wall thickness in mm"},
		"border-radius":      {&cfg.Border.Radius, "outer corner fillet radius in mm"},
		"ledge-size":         {&cfg.Border.LedgeSize, "panel support ledge depth in mm"},
		"bottom-thickness":   {&cfg.Bottom.Thickness, "bottom plate thickness in mm"},
		"pillar-diameter":    {&cfg.Pillar.Diameter, "support pillar shaft diameter in mm"},
		"pillar-height":      {&cfg.Pillar.Height, "support pillar height in mm"},
		"pillar-base":        {&cfg.Pillar.BaseDiameter, "support pillar base diameter in mm"},
		"pillar-base-height": {&cfg.Pillar.BaseHeight, "support pillar base height in mm"},
		"pillar-spacing":     {&cfg.Pillar.Spacing, "spacing between pillar centers in mm"},
		"hole-diameter":      {&cfg.Conn.HoleDiameter, "module screw hole diameter in mm"},
		"hole-tolerance":     {&cfg.Conn.HoleTolerance, "extra screw hole diameter in mm"},
		"boss-wall":          {&cfg.Conn.WallThickness, "screw boss wall thickness in mm"},
		"chamfer-length":     {&cfg.Conn.ChamferLength, "screw head relief length in mm"},
		"chamfer-tolerance":  {&cfg.Conn.ChamferTolerance, "extra screw head relief in mm"},
		"grid-horizontal":    {&cfg.Grid.HorizontalLineHeight, "horizontal grid line height in mm"},
		"grid-vertical":      {&cfg.Grid.VerticalLineHeight, "vertical grid line height in mm"},
		"grid-gap":           {&cfg.Grid.Gap, "grid line thickness in mm"},
		"diffuser-thickness": {&cfg.Diffuser.Thickness, "diffuser plate thickness in mm"},
		"diffuser-margin":    {&cfg.Diffuser.Margin, "diffuser margin over bordered walls in mm"},
		"wire-slot-height":   {&cfg.WireSlot.Height, "back wall wire slot height in mm"},
		"wire-slot-clear":    {&cfg.WireSlot.Clearance, "extra wire slot width per side in mm"},
		"height-tolerance":   {&cfg.HeightTolerance, "extra cavity height above the panels in mm"},
		"min-module-size":    {&cfg.MinModuleSize, "smallest printable module edge in mm"},
	}
}

// addConfigFlags registers one flag per tunable geometry parameter and
// returns a function that copies changed flags onto the config. The apply
// function must run after the optional config file is loaded, so the
// precedence is defaults, then file, then flags.
func addConfigFlags(cmd *cobra.Command, cfg *enclosure.Config) func() {
	bindings := configFlagBindings(cfg)
	for name, b := range bindings {
		cmd.Flags().Float64(name, *b.target, b.help)
	}
	return func() {
		for name, b := range bindings {
			if cmd.Flags().Changed(name) {
				v, err := cmd.Flags().GetFloat64(name)
				if err == nil {
					*b.target = v
				}
			}
		}
	}
}
