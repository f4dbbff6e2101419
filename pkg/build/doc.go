// Package build turns enclosure modules into printable solids.
//
// Every feature is computed in two steps: a pure planning function that
// derives positions and footprints in the module's local frame (cheap,
// deterministic, unit-testable), and a realization step that turns the plan
// into solids through pkg/kernel. Seam continuity is a planning concern:
// the plans for two adjacent modules must agree at the shared boundary, and
// the tests in this package pin that down.
//
// Local frame conventions, shared by all builders: the origin is the
// module's inner front-left corner, X runs left to right, Y front to back.
// For the chassis, Z zero is the underside of the bottom plate. The lid is
// modeled in print orientation, diffuser plate down, with Z zero at the
// underside of the plate.
package build
