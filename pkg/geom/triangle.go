package geom

import "math"

// degenerateDenom is the threshold below which a triangle's barycentric
// denominator (twice the squared area) is treated as zero.
const degenerateDenom = 1e-8

// edgeSign returns the cross product of (p1-p3) and (p2-p3). Its sign tells
// which side of the directed edge p2->p3 the point p1 lies on.
func edgeSign(p1, p2, p3 Vec2) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

// PointInTriangle reports whether p lies inside the triangle v0 v1 v2,
// inclusive of edges and vertices. A point is outside only if the three edge
// signs mix strictly positive and strictly negative values, so boundary
// texels (zero signs) are kept regardless of winding.
func PointInTriangle(p, v0, v1, v2 Vec2) bool {
	d1 := edgeSign(p, v0, v1)
	d2 := edgeSign(p, v1, v2)
	d3 := edgeSign(p, v2, v0)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// BarycentricInterpolate computes the color at p inside the triangle
// (v0,v1,v2) with vertex colors (c0,c1,c2), solving the standard dot-product
// 2x2 system for the barycentric weights.
//
// Degenerate triangles (near-zero denominator) fall back to the unweighted
// average of the three colors. Each weight is clamped to [0,1] independently
// without renormalizing afterwards; the blended result is clamped to [0,255].
func BarycentricInterpolate(v0, v1, v2 Vec2, c0, c1, c2 Color, p Vec2) Color {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	ep := p.Sub(v0)

	d00 := e1.Dot(e1)
	d01 := e1.Dot(e2)
	d11 := e2.Dot(e2)
	d20 := ep.Dot(e1)
	d21 := ep.Dot(e2)

	denom := d00*d11 - d01*d01
	if math.Abs(denom) < degenerateDenom {
		return c0.Add(c1).Add(c2).Scale(1.0 / 3.0)
	}

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1.0 - v - w

	u = Clamp(u, 0, 1)
	v = Clamp(v, 0, 1)
	w = Clamp(w, 0, 1)

	return c0.Scale(u).Add(c1.Scale(v)).Add(c2.Scale(w)).Clamped()
}
