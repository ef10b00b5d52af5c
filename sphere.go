package spherolization

import (
	"fmt"
	"math"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/mammaspappa/Spherolization/noise"
	"github.com/mammaspappa/Spherolization/various"
)

// goldenAngle is the longitude increment of the Fibonacci lattice spiral,
// 2*pi / phi^2 (~2.39996 rad) with phi being the golden ratio.
// See: http://web.archive.org/web/20120421191837/http://www.cgafaq.info/wiki/Evenly_distributed_points_on_sphere
var goldenAngle = 2 * math.Pi / math.Pow((1+math.Sqrt(5))/2, 2)

// PointSet is an ordered sequence of points on a sphere. Indices are
// assigned at generation time and never change; the coordinates are
// immutable once generated.
type PointSet struct {
	Radius float64
	XYZ    []vectors.Vec3 // Point coordinates, pole axis +Y
	LatLon [][2]float64   // Latitude and longitude in degrees per point
}

// NumPoints returns the number of points in the set.
func (ps *PointSet) NumPoints() int {
	return len(ps.XYZ)
}

// GeneratePoints places count points quasi-uniformly on a sphere of the
// given radius using the Fibonacci lattice. The mapping from (i, count,
// radius) to a point is a pure function; no randomness is involved.
func GeneratePoints(count int, radius float64) (*PointSet, error) {
	return generatePoints(count, radius, 0, 0)
}

// generatePoints is the jitter-aware generator behind GeneratePoints.
// Jitter displaces points tangentially using seeded opensimplex noise, so
// identical (seed, count, radius, jitter) inputs always yield the identical
// point set.
func generatePoints(count int, radius, jitter float64, seed int64) (*PointSet, error) {
	if count < 1 {
		return nil, fmt.Errorf("spherolization: invalid point count %d", count)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("spherolization: invalid radius %g", radius)
	}

	var nzPhi, nzTheta *noise.Noise
	if jitter > 0 {
		nzPhi = noise.NewNoise(2, 0.75, seed)
		nzTheta = noise.NewNoise(2, 0.75, seed+1)
	}

	// Approximate angular spacing between neighboring points.
	spacing := 3.6 / math.Sqrt(float64(count))

	ps := &PointSet{
		Radius: radius,
		XYZ:    make([]vectors.Vec3, 0, count),
		LatLon: make([][2]float64, 0, count),
	}
	for i := 0; i < count; i++ {
		phi := math.Acos(1 - 2*(float64(i)+0.5)/float64(count))
		theta := float64(i) * goldenAngle

		if jitter > 0 {
			u := unitFromAngles(phi, theta)
			phi += jitter * spacing * (nzPhi.Eval3(u.X, u.Y, u.Z) - 0.5)
			theta += jitter * spacing * (nzTheta.Eval3(u.X, u.Y, u.Z) - 0.5) /
				math.Max(math.Sin(phi), 1e-9)
			phi = math.Max(0, math.Min(math.Pi, phi))
		}

		u := unitFromAngles(phi, theta)
		ps.XYZ = append(ps.XYZ, u.Mul(radius))

		lat, lon := various.LatLonFromVec3(u)
		ps.LatLon = append(ps.LatLon, [2]float64{lat, lon})
	}
	return ps, nil
}

// unitFromAngles converts a polar angle (0 at the +Y pole) and a longitude
// angle into a unit vector.
func unitFromAngles(phi, theta float64) vectors.Vec3 {
	return vectors.Vec3{
		X: math.Sin(phi) * math.Cos(theta),
		Y: math.Cos(phi),
		Z: math.Sin(phi) * math.Sin(theta),
	}
}
