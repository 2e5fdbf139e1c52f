// Package mesh provides the triangle mesh model and the Wavefront OBJ reader
// used as the baker's input format.
package mesh

import (
	"errors"
	"fmt"

	"github.com/dylanebert/InstantTexture/pkg/geom"
)

// Mesh errors.
var (
	ErrFaceIndexOutOfRange = errors.New("face index out of range")
	ErrColorCountMismatch  = errors.New("vertex color count does not match vertex count")
)

// Color8 is an 8-bit RGBA vertex color.
type Color8 struct {
	R, G, B, A uint8
}

// Float returns the color as a float working color.
func (c Color8) Float() geom.Color {
	return geom.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

// Mesh is an indexed triangle mesh with optional per-vertex colors.
type Mesh struct {
	Vertices []geom.Vec3
	Faces    [][3]int
	Colors   []Color8
}

// HasColors reports whether the mesh carries one color per vertex.
func (m *Mesh) HasColors() bool {
	return len(m.Colors) > 0 && len(m.Colors) == len(m.Vertices)
}

// Validate checks that every face index is valid and, when colors are
// present, that they are co-indexed with the vertices.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrFaceIndexOutOfRange, i, idx, len(m.Vertices))
			}
		}
	}
	if len(m.Colors) > 0 && len(m.Colors) != len(m.Vertices) {
		return fmt.Errorf("%w: %d colors for %d vertices", ErrColorCountMismatch, len(m.Colors), len(m.Vertices))
	}
	return nil
}
