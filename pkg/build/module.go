package build

import (
	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/kernel"
)

// ModuleGeometry is one module's finished solids, ready for meshing.
type ModuleGeometry struct {
	Module  enclosure.Module
	Chassis kernel.Solid
	Lid     kernel.Solid
}

// BuildModule realizes both parts of one module.
func BuildModule(m enclosure.Module, cfg enclosure.Config) (ModuleGeometry, error) {
	chassis, err := BuildChassis(m, cfg)
	if err != nil {
		return ModuleGeometry{}, err
	}
	lid, err := BuildLid(m, cfg)
	if err != nil {
		return ModuleGeometry{}, err
	}
	return ModuleGeometry{Module: m, Chassis: chassis, Lid: lid}, nil
}
