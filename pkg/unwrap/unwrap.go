// Package unwrap produces UV parameterizations for triangle meshes. The
// baker only depends on the Unwrapper contract, so an external atlas packer
// (e.g. an xatlas binding) can be dropped in without touching the pipeline.
package unwrap

import (
	"errors"

	"github.com/dylanebert/InstantTexture/pkg/geom"
)

// ErrEmptyMesh is returned when a mesh has no faces to parameterize.
var ErrEmptyMesh = errors.New("mesh has no faces")

// Result is a UV parameterization. Unwrapping may split vertices at seams,
// so the result defines a new vertex space: Mapping[i] is the original
// vertex index behind UV-space vertex i, Faces index into that new space,
// and UVs holds one [0,1]^2 coordinate per new vertex.
type Result struct {
	Mapping []int
	Faces   [][3]int
	UVs     []geom.Vec2
}

// Unwrapper computes a UV atlas for an indexed triangle mesh.
type Unwrapper interface {
	Unwrap(vertices []geom.Vec3, faces [][3]int) (*Result, error)
}
