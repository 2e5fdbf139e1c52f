package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Bake.TextureSize != 1024 {
		t.Errorf("expected texture_size 1024, got %d", cfg.Bake.TextureSize)
	}
	if cfg.Bake.UpscaleFactor != 2 {
		t.Errorf("expected upscale_factor 2, got %d", cfg.Bake.UpscaleFactor)
	}
	if cfg.Bake.MedianFilterSize != 3 {
		t.Errorf("expected median_filter_size 3, got %d", cfg.Bake.MedianFilterSize)
	}
	if cfg.Bake.BlurFilterRadius != 1 {
		t.Errorf("expected blur_filter_radius 1, got %d", cfg.Bake.BlurFilterRadius)
	}
	if cfg.Bake.Origin != "bottom-left" {
		t.Errorf("expected origin bottom-left, got %s", cfg.Bake.Origin)
	}

	if cfg.Output.Path != "output.glb" {
		t.Errorf("expected output path output.glb, got %s", cfg.Output.Path)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
bake:
  texture_size: 512
  upscale_factor: 4
  origin: top-left
output:
  path: baked.glb
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Bake.TextureSize != 512 {
		t.Errorf("expected texture_size 512, got %d", cfg.Bake.TextureSize)
	}
	if cfg.Bake.UpscaleFactor != 4 {
		t.Errorf("expected upscale_factor 4, got %d", cfg.Bake.UpscaleFactor)
	}
	if cfg.Bake.Origin != "top-left" {
		t.Errorf("expected origin top-left, got %s", cfg.Bake.Origin)
	}
	if cfg.Output.Path != "baked.glb" {
		t.Errorf("expected output path baked.glb, got %s", cfg.Output.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}

	// Values absent from the file keep their defaults.
	if cfg.Bake.MedianFilterSize != 3 {
		t.Errorf("expected median_filter_size default 3, got %d", cfg.Bake.MedianFilterSize)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Bake.TextureSize = 256
	cfg.Output.Path = "saved.glb"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Bake.TextureSize != 256 {
		t.Errorf("expected texture_size 256, got %d", loaded.Bake.TextureSize)
	}
	if loaded.Output.Path != "saved.glb" {
		t.Errorf("expected output path saved.glb, got %s", loaded.Output.Path)
	}
}
