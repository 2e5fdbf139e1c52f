package unwrap

import (
	"math"

	"github.com/dylanebert/InstantTexture/pkg/geom"
)

// Grid is a minimal built-in unwrapper. Every face becomes its own chart: a
// right triangle filling the lower-left half of a grid cell, with all cells
// packed into a ceil(sqrt(n)) square grid. Gutter is the fraction of a cell
// left empty on each side so neighboring charts never share texels; the gap
// is closed later by the baker's hole filler.
//
// It wastes half of every cell and ignores 3D adjacency entirely, but it
// satisfies the Unwrapper contract and needs no native dependency.
type Grid struct {
	Gutter float64
}

// Unwrap implements Unwrapper.
func (g Grid) Unwrap(vertices []geom.Vec3, faces [][3]int) (*Result, error) {
	if len(faces) == 0 {
		return nil, ErrEmptyMesh
	}

	gutter := g.Gutter
	if gutter <= 0 {
		gutter = 0.125
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(faces)))))
	cell := 1.0 / float64(cols)

	res := &Result{
		Mapping: make([]int, 0, len(faces)*3),
		Faces:   make([][3]int, len(faces)),
		UVs:     make([]geom.Vec2, 0, len(faces)*3),
	}

	// Chart-local corners of the right triangle, before gutter inset.
	corners := [3]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	for fi, face := range faces {
		col := fi % cols
		row := fi / cols
		origin := geom.Vec2{X: float64(col) * cell, Y: float64(row) * cell}
		inner := cell * (1 - 2*gutter)

		for k := 0; k < 3; k++ {
			uv := origin.Add(geom.Vec2{X: gutter * cell, Y: gutter * cell}).
				Add(corners[k].Scale(inner))
			res.Faces[fi][k] = len(res.Mapping)
			res.Mapping = append(res.Mapping, face[k])
			res.UVs = append(res.UVs, uv)
		}
	}

	return res, nil
}
