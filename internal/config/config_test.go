package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Shape != "torus" || cfg.Size != 512 || cfg.Supersample != 2 || cfg.Frames != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.OutputDir != "renders" || cfg.Distance != 5 || cfg.FOVDeg != 45 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"shape": "box", "size": 128, "frames": 8, "pitch_deg": 15}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{Shape: "sphere", Size: 256})

	if cfg.Shape != "sphere" {
		t.Errorf("flag did not override shape: %q", cfg.Shape)
	}
	if cfg.Size != 256 {
		t.Errorf("flag did not override size: %d", cfg.Size)
	}
	if cfg.Frames != 8 {
		t.Errorf("file value lost: frames = %d", cfg.Frames)
	}
	if cfg.PitchDeg != 15 {
		t.Errorf("file value lost: pitch = %v", cfg.PitchDeg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing config file")
	}
}
