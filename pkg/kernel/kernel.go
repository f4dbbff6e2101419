// Package kernel wraps the solid-modeling primitives the builders consume:
// box/cylinder/cone solids, translation, boolean union/subtract, and mesh
// export. It is a thin layer over soypat/sdf; the rest of the repository
// never touches the CSG library directly.
//
// Primitive constructors are centered at the origin, matching the
// underlying library. BoxMin places a box by its min corner instead, which
// is how the builders think (the global frame's origin is the enclosure's
// front-left-bottom corner).
package kernel

import (
	"errors"
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2"
	"github.com/soypat/sdf/form3"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrKernel reports a rejected geometry operation, e.g. a degenerate
// primitive or a failed export.
var ErrKernel = errors.New("kernel failure")

// Solid is a 3D solid under construction.
type Solid = sdf.SDF3

// DefaultMeshCells is the octree resolution used for STL meshing.
const DefaultMeshCells = 300

// Box returns a box of the given size centered at the origin. A non-zero
// round radius fillets every edge.
func Box(length, width, height, round float64) (Solid, error) {
	s, err := form3.Box(r3.Vec{X: length, Y: width, Z: height}, round)
	if err != nil {
		return nil, fmt.Errorf("%w: box %gx%gx%g: %v", ErrKernel, length, width, height, err)
	}
	return s, nil
}

// BoxMin returns a box placed by its min corner.
func BoxMin(x, y, z, length, width, height, round float64) (Solid, error) {
	s, err := Box(length, width, height, round)
	if err != nil {
		return nil, err
	}
	return Translate(s, x+length/2, y+width/2, z+height/2), nil
}

// Cylinder returns a Z-axis cylinder centered at the origin.
func Cylinder(height, radius float64) (Solid, error) {
	s, err := form3.Cylinder(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: cylinder h=%g r=%g: %v", ErrKernel, height, radius, err)
	}
	return s, nil
}

// Cone returns a Z-axis truncated cone centered at the origin, with base
// radius r0 and top radius r1.
func Cone(height, r0, r1 float64) (Solid, error) {
	s, err := form3.Cone(height, r0, r1, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: cone h=%g r0=%g r1=%g: %v", ErrKernel, height, r0, r1, err)
	}
	return s, nil
}

// RoundedSlab returns a vertical extrusion of a rounded rectangle, placed by
// its min corner. Only the vertical edges are filleted, which is the profile
// of a walled enclosure part: rounded outer corners, flat top and bottom.
func RoundedSlab(x, y, z, length, width, height, round float64) (Solid, error) {
	profile, err := form2.Box(r2.Vec{X: length, Y: width}, round)
	if err != nil {
		return nil, fmt.Errorf("%w: slab profile %gx%g round=%g: %v", ErrKernel, length, width, round, err)
	}
	return Translate(sdf.Extrude3D(profile, height), x+length/2, y+width/2, z+height/2), nil
}

// Intersect keeps the volume common to both solids.
func Intersect(a, b Solid) Solid {
	return sdf.Intersect3D(a, b)
}

// RotateX rotates a solid around the X axis.
func RotateX(s Solid, radians float64) Solid {
	return sdf.Transform3D(s, sdf.RotateX(radians))
}

// RotateY rotates a solid around the Y axis.
func RotateY(s Solid, radians float64) Solid {
	return sdf.Transform3D(s, sdf.RotateY(radians))
}

// Translate moves a solid by (x, y, z).
func Translate(s Solid, x, y, z float64) Solid {
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{X: x, Y: y, Z: z}))
}

// Union combines solids. At least one solid is required.
func Union(solids ...Solid) (Solid, error) {
	if len(solids) == 0 {
		return nil, fmt.Errorf("%w: union of nothing", ErrKernel)
	}
	if len(solids) == 1 {
		return solids[0], nil
	}
	return sdf.Union3D(solids...), nil
}

// Subtract removes the tool solids from base.
func Subtract(base Solid, tools ...Solid) Solid {
	for _, tool := range tools {
		base = sdf.Difference3D(base, tool)
	}
	return base
}

// WriteSTL meshes the solid with an octree renderer and writes a binary STL
// file. meshCells controls resolution; DefaultMeshCells suits enclosure
// sized parts.
func WriteSTL(path string, s Solid, meshCells int) error {
	if meshCells <= 0 {
		meshCells = DefaultMeshCells
	}
	if err := render.CreateSTL(path, render.NewOctreeRenderer(s, meshCells)); err != nil {
		return fmt.Errorf("%w: export %s: %v", ErrKernel, path, err)
	}
	return nil
}
