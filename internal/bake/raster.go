package bake

import (
	"math"

	"github.com/dylanebert/InstantTexture/pkg/geom"
	"github.com/dylanebert/InstantTexture/pkg/mesh"
)

// Rasterize bakes per-vertex colors into the buffer, one triangle at a time.
// UVs are mapped to integer texel coordinates with floor(uv * (side-1)), the
// triangle's bounding box is clamped to the buffer, and every texel whose
// center (x+0.5, y+0.5) lies inside the triangle receives the interpolated
// color with full coverage. Overlapping faces simply overwrite each other;
// overlap only happens along shared edges where the colors agree anyway.
//
// UVs outside [0,1] are not validated: they clamp into the border texels and
// produce garbage there rather than an error. The unwrapper owns that
// contract.
func Rasterize(buf *Buffer, faces [][3]int, uvs []geom.Vec2, colors []mesh.Color8) {
	side := buf.Side()
	scale := float64(side - 1)

	for _, face := range faces {
		p0 := texelCoord(uvs[face[0]], scale)
		p1 := texelCoord(uvs[face[1]], scale)
		p2 := texelCoord(uvs[face[2]], scale)

		c0 := colors[face[0]].Float()
		c1 := colors[face[1]].Float()
		c2 := colors[face[2]].Float()

		minX := geom.Clamp(int(math.Min(p0.X, math.Min(p1.X, p2.X))), 0, side-1)
		maxX := geom.Clamp(int(math.Max(p0.X, math.Max(p1.X, p2.X))), 0, side-1)
		minY := geom.Clamp(int(math.Min(p0.Y, math.Min(p1.Y, p2.Y))), 0, side-1)
		maxY := geom.Clamp(int(math.Max(p0.Y, math.Max(p1.Y, p2.Y))), 0, side-1)

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				p := geom.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
				if !geom.PointInTriangle(p, p0, p1, p2) {
					continue
				}
				c := geom.BarycentricInterpolate(p0, p1, p2, c0, c1, c2, p)
				r, g, bl, _ := c.Bytes()
				buf.Set(x, y, mesh.Color8{R: r, G: g, B: bl, A: 255})
			}
		}
	}
}

// texelCoord maps a normalized UV to integer texel space, truncating like
// the buffer write does.
func texelCoord(uv geom.Vec2, scale float64) geom.Vec2 {
	return geom.Vec2{
		X: math.Floor(uv.X * scale),
		Y: math.Floor(uv.Y * scale),
	}
}
