package various

import (
	"github.com/Flokey82/go_gens/vectors"
)

// CentroidOfTriangle returns the centroid of a triangle defined by
// the points a, b, c.
func CentroidOfTriangle(a, b, c vectors.Vec3) vectors.Vec3 {
	return vectors.Vec3{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
		Z: (a.Z + b.Z + c.Z) / 3,
	}
}

// TriangleNormal returns the (unnormalized) normal of the triangle a, b, c.
// Its length is twice the triangle area, so a near-zero length indicates
// collinear points.
func TriangleNormal(a, b, c vectors.Vec3) vectors.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// TriangleArea returns the area of the triangle a, b, c.
func TriangleArea(a, b, c vectors.Vec3) float64 {
	return TriangleNormal(a, b, c).Len() / 2
}
