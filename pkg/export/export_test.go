package export

import "testing"

func TestFileName(t *testing.T) {
	tests := []struct {
		name      string
		buildName string
		label     string
		suffix    string
		want      string
	}{
		{
			name:   "NoBuildName",
			label:  "module:x=0,y=0",
			suffix: "chassis",
			want:   "module:x=0,y=0.chassis.stl",
		},
		{
			name:      "WithBuildName",
			buildName: "desk-matrix",
			label:     "module:x=1,y=0",
			suffix:    "lid",
			want:      "desk-matrix.module:x=1,y=0.lid.stl",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileName(tt.buildName, tt.label, tt.suffix); got != tt.want {
				t.Errorf("fileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
