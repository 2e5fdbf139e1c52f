package convert

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dylanebert/InstantTexture/internal/config"
)

func writeOBJ(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

const coloredTriangle = `
v 0.0 0.0 0.0 1.0 0.0 0.0
v 1.0 0.0 0.0 0.0 1.0 0.0
v 0.0 1.0 0.0 0.0 0.0 1.0
f 1 2 3
`

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Bake.TextureSize = 32
	cfg.Bake.UpscaleFactor = 1
	return cfg
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "output.glb"},
		{"correct", "mesh.glb", "mesh.glb"},
		{"uppercase", "mesh.GLB", "mesh.GLB"},
		{"wrong extension", "mesh.obj", "mesh.glb"},
		{"no extension", "mesh", "mesh.glb"},
		{"nested", filepath.Join("out", "mesh.gltf"), filepath.Join("out", "mesh.glb")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateOutputPath(tt.in); got != tt.want {
				t.Errorf("ValidateOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeOBJ(t, dir, "triangle.obj", coloredTriangle)
	output := filepath.Join(dir, "triangle.glb")

	c, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := c.Convert(input, output)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != output {
		t.Errorf("Convert returned %q, want %q", got, output)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) < 12 {
		t.Fatalf("output too short: %d bytes", len(data))
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != 0x46546C67 {
		t.Errorf("output magic = %#x, want glTF", magic)
	}
	if total := binary.LittleEndian.Uint32(data[8:12]); int(total) != len(data) {
		t.Errorf("declared length %d != file size %d", total, len(data))
	}
}

func TestConvertCorrectsExtension(t *testing.T) {
	dir := t.TempDir()
	input := writeOBJ(t, dir, "triangle.obj", coloredTriangle)

	c, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := c.Convert(input, filepath.Join(dir, "out.gltf"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	want := filepath.Join(dir, "out.glb")
	if got != want {
		t.Errorf("Convert returned %q, want corrected %q", got, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("corrected output missing: %v", err)
	}
}

func TestConvertRejectsUncoloredMesh(t *testing.T) {
	dir := t.TempDir()
	input := writeOBJ(t, dir, "plain.obj", `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)

	c, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = c.Convert(input, filepath.Join(dir, "out.glb"))
	if !errors.Is(err, ErrNoVertexColors) {
		t.Errorf("Convert error = %v, want ErrNoVertexColors", err)
	}

	// No output may be produced for a mesh with nothing to bake.
	if _, statErr := os.Stat(filepath.Join(dir, "out.glb")); !os.IsNotExist(statErr) {
		t.Error("output file should not exist")
	}
}

func TestConvertMissingInput(t *testing.T) {
	c, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := c.Convert(filepath.Join(t.TempDir(), "missing.obj"), ""); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestConvertBufferDump(t *testing.T) {
	dir := t.TempDir()
	input := writeOBJ(t, dir, "triangle.obj", coloredTriangle)
	dump := filepath.Join(dir, "buffer.png")

	cfg := smallConfig()
	cfg.Output.DumpBuffer = dump

	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := c.Convert(input, filepath.Join(dir, "out.glb")); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if _, err := os.Stat(dump); err != nil {
		t.Errorf("expected buffer dump at %s: %v", dump, err)
	}
}
