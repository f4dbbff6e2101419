package kernel

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBoxMinBounds(t *testing.T) {
	s, err := BoxMin(10, 20, 0, 100, 50, 5, 0)
	if err != nil {
		t.Fatalf("BoxMin failed: %v", err)
	}
	bb := s.Bounds()
	if !almost(bb.Min.X, 10) || !almost(bb.Min.Y, 20) || !almost(bb.Min.Z, 0) {
		t.Errorf("bounding box min = %v, want (10, 20, 0)", bb.Min)
	}
	if !almost(bb.Max.X, 110) || !almost(bb.Max.Y, 70) || !almost(bb.Max.Z, 5) {
		t.Errorf("bounding box max = %v, want (110, 70, 5)", bb.Max)
	}
}

func TestBoxRejectsDegenerateSize(t *testing.T) {
	if _, err := Box(0, 10, 10, 0); !errors.Is(err, ErrKernel) {
		t.Errorf("Box with zero length error = %v, want ErrKernel", err)
	}
	if _, err := Box(10, -1, 10, 0); !errors.Is(err, ErrKernel) {
		t.Errorf("Box with negative width error = %v, want ErrKernel", err)
	}
}

func TestCylinderRejectsDegenerateSize(t *testing.T) {
	if _, err := Cylinder(0, 5); !errors.Is(err, ErrKernel) {
		t.Errorf("Cylinder with zero height error = %v, want ErrKernel", err)
	}
}

func TestUnionBounds(t *testing.T) {
	a, err := BoxMin(0, 0, 0, 10, 10, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BoxMin(50, 0, 0, 10, 10, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	u, err := Union(a, b)
	if err != nil {
		t.Fatalf("Union failed: %v", err)
	}
	bb := u.Bounds()
	if !almost(bb.Min.X, 0) || !almost(bb.Max.X, 60) {
		t.Errorf("union bounding box X = [%g, %g], want [0, 60]", bb.Min.X, bb.Max.X)
	}
}

func TestUnionOfNothing(t *testing.T) {
	if _, err := Union(); !errors.Is(err, ErrKernel) {
		t.Errorf("Union() error = %v, want ErrKernel", err)
	}
}

func TestSubtractKeepsBaseBounds(t *testing.T) {
	base, err := BoxMin(0, 0, 0, 100, 100, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	hole, err := Cylinder(20, 5)
	if err != nil {
		t.Fatal(err)
	}
	s := Subtract(base, Translate(hole, 50, 50, 5))
	bb := s.Bounds()
	if !almost(bb.Max.X, 100) || !almost(bb.Max.Y, 100) {
		t.Errorf("subtract changed base bounds: %v", bb)
	}
	// The hole center lies outside the solid, the base interior inside.
	if s.Evaluate(r3.Vec{X: 50, Y: 50, Z: 5}) <= 0 {
		t.Error("hole center should evaluate outside the solid")
	}
	if s.Evaluate(r3.Vec{X: 1, Y: 1, Z: 5}) >= 0 {
		t.Error("base interior should evaluate inside the solid")
	}
}
