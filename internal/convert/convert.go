// Package convert wires the full pipeline: load a vertex-colored OBJ,
// unwrap it, bake the colors into a texture and export a textured GLB.
package convert

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/dylanebert/InstantTexture/internal/bake"
	"github.com/dylanebert/InstantTexture/internal/config"
	"github.com/dylanebert/InstantTexture/internal/logger"
	"github.com/dylanebert/InstantTexture/pkg/formats"
	"github.com/dylanebert/InstantTexture/pkg/geom"
	"github.com/dylanebert/InstantTexture/pkg/mesh"
	"github.com/dylanebert/InstantTexture/pkg/unwrap"
)

// ErrNoVertexColors signals an input mesh without per-vertex colors: there
// is nothing to bake. It is reported as a warning, not a crash.
var ErrNoVertexColors = errors.New("input mesh has no vertex colors")

// glbExt is the canonical output extension. Paths with a different or
// missing extension are corrected, never rejected.
const glbExt = ".glb"

// Converter converts vertex-colored OBJ meshes to UV-mapped, textured GLB
// meshes.
type Converter struct {
	baker      *bake.Baker
	unwrapper  unwrap.Unwrapper
	dumpBuffer string
}

// New builds a Converter from configuration.
func New(cfg *config.Config) (*Converter, error) {
	baker, err := bake.New(bake.Options{
		TextureSize:   cfg.Bake.TextureSize,
		UpscaleFactor: cfg.Bake.UpscaleFactor,
		MedianSize:    cfg.Bake.MedianFilterSize,
		BlurRadius:    cfg.Bake.BlurFilterRadius,
		Origin:        bake.Origin(cfg.Bake.Origin),
	})
	if err != nil {
		return nil, err
	}
	return &Converter{
		baker:      baker,
		unwrapper:  unwrap.Grid{},
		dumpBuffer: cfg.Output.DumpBuffer,
	}, nil
}

// SetUnwrapper replaces the UV unwrapper (e.g. with an xatlas binding).
func (c *Converter) SetUnwrapper(u unwrap.Unwrapper) {
	c.unwrapper = u
}

// ValidateOutputPath coerces a requested output path to the canonical .glb
// extension. An empty path falls back to "output.glb"; a wrong extension is
// replaced with a warning.
func ValidateOutputPath(path string) string {
	if path == "" {
		return "output" + glbExt
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != glbExt {
		fixed := strings.TrimSuffix(path, filepath.Ext(path)) + glbExt
		logger.Warn("output extension corrected",
			zap.String("requested", path),
			zap.String("saving_as", fixed))
		return fixed
	}
	return path
}

// Convert bakes inputPath's vertex colors into a texture and writes a
// textured GLB to outputPath, returning the (possibly corrected) path the
// asset was written to.
func (c *Converter) Convert(inputPath, outputPath string) (string, error) {
	outputPath = ValidateOutputPath(outputPath)

	m, err := mesh.LoadOBJ(inputPath)
	if err != nil {
		return "", err
	}
	if !m.HasColors() {
		logger.Warn("input mesh must carry per-vertex colors; nothing to bake",
			zap.String("input", inputPath))
		return "", fmt.Errorf("%s: %w", inputPath, ErrNoVertexColors)
	}

	logger.Info("loaded mesh",
		zap.String("input", inputPath),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)))

	res, err := c.unwrapper.Unwrap(m.Vertices, m.Faces)
	if err != nil {
		return "", fmt.Errorf("unwrapping: %w", err)
	}

	// Unwrapping remaps vertex identity; carry positions and colors into
	// the new UV vertex space.
	vertices := make([]geom.Vec3, len(res.Mapping))
	colors := make([]mesh.Color8, len(res.Mapping))
	for i, orig := range res.Mapping {
		vertices[i] = m.Vertices[orig]
		colors[i] = m.Colors[orig]
	}

	if c.dumpBuffer != "" {
		if err := c.writeBufferDump(res.Faces, res.UVs, colors); err != nil {
			logger.Warn("buffer dump failed", zap.Error(err))
		}
	}

	img, err := c.baker.Bake(res.Faces, res.UVs, colors)
	if err != nil {
		return "", fmt.Errorf("baking: %w", err)
	}

	asset := formats.NewAsset(vertices, res.UVs, res.Faces, img)
	if err := formats.ExportGLB(outputPath, asset); err != nil {
		return "", err
	}

	logger.Info("processed mesh saved", zap.String("output", outputPath))
	return outputPath, nil
}

// writeBufferDump writes the filled raster buffer as a PNG for inspection.
func (c *Converter) writeBufferDump(faces [][3]int, uvs []geom.Vec2, colors []mesh.Color8) error {
	buf, err := c.baker.BakeBuffer(faces, uvs, colors)
	if err != nil {
		return err
	}

	f, err := os.Create(c.dumpBuffer)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, buf.Image()); err != nil {
		return err
	}
	logger.Debug("raster buffer dumped", zap.String("path", c.dumpBuffer))
	return nil
}
