package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

// DistSquared3 returns the squared euclidean distance between two points.
func DistSquared3(a, b vectors.Vec3) float64 {
	xDiff := a.X - b.X
	yDiff := a.Y - b.Y
	zDiff := a.Z - b.Z
	return xDiff*xDiff + yDiff*yDiff + zDiff*zDiff
}

// Dist3 returns the euclidean distance between two points.
func Dist3(a, b vectors.Vec3) float64 {
	return math.Sqrt(DistSquared3(a, b))
}

// MidPoint3 returns the midpoint between two points.
func MidPoint3(a, b vectors.Vec3) vectors.Vec3 {
	return a.Add(b).Mul(0.5)
}

// Lerp3 interpolates between a and b at fraction t.
func Lerp3(a, b vectors.Vec3, t float64) vectors.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// ConvToVec3 converts a float slice containing 3 values into a vectors.Vec3.
func ConvToVec3(xyz []float64) vectors.Vec3 {
	return vectors.Vec3{
		X: xyz[0],
		Y: xyz[1],
		Z: xyz[2],
	}
}
