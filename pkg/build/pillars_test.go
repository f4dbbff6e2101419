package build

import (
	"errors"
	"testing"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
)

func TestPillarPositionsGrid(t *testing.T) {
	m := enclosure.Module{
		Inner: geom.Rect{Size: geom.Dim2{Length: 100, Width: 50}},
	}
	spec := enclosure.DefaultConfig().Pillar

	positions, err := PillarPositions(m, spec)
	if err != nil {
		t.Fatalf("PillarPositions failed: %v", err)
	}
	// Spacing 25 over 100x50 mm: centers at X 12.5..87.5, Y 12.5..37.5.
	want := []geom.Pos2{
		{X: 12.5, Y: 12.5}, {X: 37.5, Y: 12.5}, {X: 62.5, Y: 12.5}, {X: 87.5, Y: 12.5},
		{X: 12.5, Y: 37.5}, {X: 37.5, Y: 37.5}, {X: 62.5, Y: 37.5}, {X: 87.5, Y: 37.5},
	}
	if len(positions) != len(want) {
		t.Fatalf("got %d positions, want %d: %v", len(positions), len(want), positions)
	}
	for i, p := range positions {
		if !geom.AlmostEqual(p.X, want[i].X) || !geom.AlmostEqual(p.Y, want[i].Y) {
			t.Errorf("position %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestPillarPositionsSkipConnectors(t *testing.T) {
	m := enclosure.Module{
		Inner: geom.Rect{Size: geom.Dim2{Length: 100, Width: 50}},
		// Connector footprint square over the second candidate.
		Connectors: []geom.Rect{{
			Size:     geom.Dim2{Length: 20, Width: 20},
			Position: geom.Pos2{X: 27.5, Y: 2.5},
		}},
	}

	positions, err := PillarPositions(m, enclosure.DefaultConfig().Pillar)
	if err != nil {
		t.Fatalf("PillarPositions failed: %v", err)
	}
	for _, p := range positions {
		if geom.AlmostEqual(p.X, 37.5) && geom.AlmostEqual(p.Y, 12.5) {
			t.Errorf("candidate over the connector at %v was not skipped", p)
		}
	}
	if len(positions) != 7 {
		t.Errorf("got %d positions, want 7", len(positions))
	}
}

func TestPillarPositionsAllCollide(t *testing.T) {
	m := enclosure.Module{
		Inner: geom.Rect{Size: geom.Dim2{Length: 30, Width: 30}},
		// One connector covering the whole module.
		Connectors: []geom.Rect{{Size: geom.Dim2{Length: 30, Width: 30}}},
	}

	_, err := PillarPositions(m, enclosure.DefaultConfig().Pillar)
	if !errors.Is(err, enclosure.ErrFeatureCollision) {
		t.Errorf("error = %v, want ErrFeatureCollision", err)
	}
}

func TestPillarPositionsTooSmallForAny(t *testing.T) {
	// A module narrower than one spacing has no candidates at all, which is
	// not a collision.
	m := enclosure.Module{
		Inner: geom.Rect{Size: geom.Dim2{Length: 20, Width: 20}},
	}
	positions, err := PillarPositions(m, enclosure.DefaultConfig().Pillar)
	if err != nil {
		t.Fatalf("PillarPositions failed: %v", err)
	}
	if len(positions) != 0 {
		t.Errorf("got %d positions, want none", len(positions))
	}
}
