package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/panel"
)

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Layout: []string{"8x8"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults failed: %v", err)
	}
	if opts.Split != DefaultSplit {
		t.Errorf("Split = %q, want %q", opts.Split, DefaultSplit)
	}
	if opts.OutDir != DefaultOutDir {
		t.Errorf("OutDir = %q, want %q", opts.OutDir, DefaultOutDir)
	}
	if opts.Config == (enclosure.Config{}) {
		t.Error("zero Config should be replaced by defaults")
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Layout: []string{"8x8"}, Split: "1x1"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	first := opts.Config
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Config != first {
		t.Error("second validation changed the options")
	}
}

func TestValidateRequiresLayout(t *testing.T) {
	opts := Options{}
	err := opts.ValidateAndSetDefaults()
	if err == nil {
		t.Fatal("empty layout should not validate")
	}
	if !errors.Is(err, panel.ErrInvalidLayout) {
		t.Errorf("error = %v, want ErrInvalidLayout", err)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg := enclosure.DefaultConfig()
	cfg.Border.Thickness = -1
	opts := Options{Layout: []string{"8x8"}, Config: cfg}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("invalid config should not validate")
	}
}

func TestResolve(t *testing.T) {
	runner := NewRunner(nil)
	composite, modules, err := runner.Resolve(Options{
		Layout: []string{"16x16,16x16", "32x8"},
		Split:  "2x1",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if composite.PanelCount() != 3 {
		t.Errorf("PanelCount = %d, want 3", composite.PanelCount())
	}
	if len(modules) != 2 {
		t.Errorf("got %d modules, want 2", len(modules))
	}
}

func TestResolveErrors(t *testing.T) {
	runner := NewRunner(nil)

	if _, _, err := runner.Resolve(Options{Layout: []string{"9x9"}}); !errors.Is(err, panel.ErrInvalidLayout) {
		t.Errorf("unknown panel error = %v, want ErrInvalidLayout", err)
	}
	if _, _, err := runner.Resolve(Options{Layout: []string{"8x8"}, Split: "0x1"}); !errors.Is(err, enclosure.ErrInvalidSplit) {
		t.Errorf("bad split error = %v, want ErrInvalidSplit", err)
	}
}

func TestExecuteSkipExport(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		Layout:     []string{"8x8"},
		SkipExport: true,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Stats.ModuleCount != 1 {
		t.Errorf("ModuleCount = %d, want 1", result.Stats.ModuleCount)
	}
	if len(result.Geometry) != 1 {
		t.Errorf("got %d geometries, want 1", len(result.Geometry))
	}
	if result.Manifest.RunID != "" {
		t.Error("skipped export should leave the manifest empty")
	}
	if _, err := os.Stat(filepath.Join(DefaultOutDir, "manifest.json")); !os.IsNotExist(err) {
		t.Error("skipped export should not write files")
	}
}
