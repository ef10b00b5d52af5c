package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// LatLonFromVec3 converts a position to latitude and longitude in degrees.
// The pole axis is +Y, so latitude is measured against the XZ plane.
// The position does not need to be normalized.
func LatLonFromVec3(position vectors.Vec3) (float64, float64) {
	l := position.Len()
	if l == 0 {
		return 0, 0
	}
	return RadToDeg(math.Asin(position.Y / l)), // Lat
		RadToDeg(math.Atan2(position.Z, position.X)) // Lon
}

// LatLonToCartesian converts latitude and longitude in degrees to a unit
// vector with pole axis +Y.
func LatLonToCartesian(latDeg, lonDeg float64) vectors.Vec3 {
	latRad := DegToRad(latDeg)
	lonRad := DegToRad(lonDeg)
	return vectors.Vec3{
		X: math.Cos(latRad) * math.Cos(lonRad),
		Y: math.Sin(latRad),
		Z: math.Cos(latRad) * math.Sin(lonRad),
	}
}

// GreatArcDistance returns the geodesic distance between two points on the
// sphere of the given radius. Both points are expected to lie on that sphere.
func GreatArcDistance(a, b vectors.Vec3, radius float64) float64 {
	cosAngle := a.Dot(b) / (radius * radius)
	// Clamp against floating point drift before taking the arc cosine.
	if cosAngle > 1 {
		cosAngle = 1
	} else if cosAngle < -1 {
		cosAngle = -1
	}
	return radius * math.Acos(cosAngle)
}

// Haversine returns the great arc distance (in radians) between two
// lat/long pairs given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLatSin := math.Sin(DegToRad(lat2-lat1) / 2)
	dLonSin := math.Sin(DegToRad(lon2-lon1) / 2)
	a := dLatSin*dLatSin + dLonSin*dLonSin*math.Cos(DegToRad(lat1))*math.Cos(DegToRad(lat2))
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
