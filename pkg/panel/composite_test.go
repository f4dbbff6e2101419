package panel

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pmuller/led-matrix-enclosure/pkg/geom"
)

func rect(l, w, x, y float64) geom.Rect {
	return geom.Rect{Size: geom.Dim2{Length: l, Width: w}, Position: geom.Pos2{X: x, Y: y}}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"NoRows", nil},
		{"EmptyRow", []string{"16x16", ""}},
		{"UnknownProfile", []string{"16x16,64x64"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.rows)
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("ParseLayout(%v) error = %v, want ErrInvalidLayout", tt.rows, err)
			}
		})
	}
}

func TestShape(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want geom.Dim2
	}{
		{"Single8x8", []string{"8x8"}, geom.Dim2{Length: 8, Width: 8}},
		{"RowOfTwo", []string{"16x16,16x16"}, geom.Dim2{Length: 32, Width: 16}},
		{"TwoRows", []string{"16x16,16x16", "32x8"}, geom.Dim2{Length: 32, Width: 24}},
		{"RaggedRows", []string{"8x8", "32x8"}, geom.Dim2{Length: 32, Width: 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseLayout(tt.rows)
			if err != nil {
				t.Fatalf("ParseLayout(%v) failed: %v", tt.rows, err)
			}
			if got := c.Shape(); got != tt.want {
				t.Errorf("Shape() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSize(t *testing.T) {
	c, err := ParseLayout([]string{"16x16,16x16", "32x8"})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Size(); got != (geom.Dim2{Length: 320, Width: 240}) {
		t.Errorf("Size() = %v, want 320x240", got)
	}
	if got := c.MinHeight(); got != 1.25 {
		t.Errorf("MinHeight() = %v, want 1.25", got)
	}
	if got := c.PixelSize(); got != 10 {
		t.Errorf("PixelSize() = %v, want 10", got)
	}
}

func TestPlacements(t *testing.T) {
	c, err := ParseLayout([]string{"16x16,16x16", "32x8"})
	if err != nil {
		t.Fatal(err)
	}
	got := c.Placements()
	want := []geom.Rect{
		rect(160, 160, 0, 0),
		rect(160, 160, 160, 0),
		rect(320, 80, 0, 160),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d placements, want %d", len(got), len(want))
	}
	for i, placement := range got {
		if placement.Rect != want[i] {
			t.Errorf("placement %d = %v, want %v", i, placement.Rect, want[i])
		}
	}
}

func TestBackWireSlots(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []geom.Rect
	}{
		{
			name: "Single8x8",
			rows: []string{"8x8"},
			want: []geom.Rect{rect(15, 50, 12, 15), rect(15, 50, 32, 15), rect(15, 50, 52, 15)},
		},
		{
			name: "RowOfTwo8x8",
			rows: []string{"8x8,8x8"},
			want: []geom.Rect{
				rect(15, 50, 12, 15), rect(15, 50, 32, 15), rect(15, 50, 52, 15),
				rect(15, 50, 92, 15), rect(15, 50, 112, 15), rect(15, 50, 132, 15),
			},
		},
		{
			name: "SecondRowIgnored",
			rows: []string{"8x8,8x8", "8x8,8x8"},
			want: []geom.Rect{
				rect(15, 50, 12, 15), rect(15, 50, 32, 15), rect(15, 50, 52, 15),
				rect(15, 50, 92, 15), rect(15, 50, 112, 15), rect(15, 50, 132, 15),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseLayout(tt.rows)
			if err != nil {
				t.Fatal(err)
			}
			if got := c.BackWireSlots(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BackWireSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScopedBackWireSlots(t *testing.T) {
	c, err := ParseLayout([]string{"8x8", "8x8"})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name           string
		offset, length float64
		want           []geom.Rect
	}{
		{
			name: "FirstHalf", offset: 0, length: 40,
			want: []geom.Rect{rect(15, 50, 12, 15), rect(15, 50, 32, 15)},
		},
		{
			name: "SecondHalf", offset: 40, length: 40,
			// The slot straddling the cut keeps its global position,
			// expressed in the second module's frame.
			want: []geom.Rect{rect(15, 50, -8, 15), rect(15, 50, 12, 15)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ScopedBackWireSlots(tt.offset, tt.length); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScopedBackWireSlots(%v, %v) = %v, want %v", tt.offset, tt.length, got, tt.want)
			}
		})
	}
}

func TestScopedConnectors(t *testing.T) {
	c, err := ParseLayout([]string{"8x8,8x8"})
	if err != nil {
		t.Fatal(err)
	}
	scope := rect(80, 80, 80, 0)
	got := c.ScopedConnectors(scope)
	want := []geom.Rect{rect(15, 50, 12, 15), rect(15, 50, 32, 15), rect(15, 50, 52, 15)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScopedConnectors(%v) = %v, want %v", scope, got, want)
	}
}

func TestProfileConnectorsFitWithinPanel(t *testing.T) {
	// A connector footprint hanging outside its panel would break the
	// pillar collision rule for panels on the enclosure edge.
	for name, p := range Profiles {
		panel := geom.Rect{Size: p.Size()}
		for i, connector := range p.Connectors {
			for _, corner := range connector.Corners() {
				if !panel.Contains(corner) {
					t.Errorf("profile %s connector %d exceeds panel bounds: %v", name, i, connector)
				}
			}
		}
	}
}
