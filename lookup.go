package spherolization

import (
	"github.com/Flokey82/geoquad"
)

// newQuadTreeFromLatLon indexes the given lat/lon coordinates for
// nearest-neighbor lookup, keyed by point index.
func newQuadTreeFromLatLon(latLon [][2]float64) *geoquad.QuadTree {
	points := make([]geoquad.Point, 0, len(latLon))
	for i := range latLon {
		ll := latLon[i]
		points = append(points, geoquad.Point{
			Lat:  ll[0],
			Lon:  ll[1],
			Data: i,
		})
	}
	return geoquad.NewQuadTree(points)
}

// NearestVertex returns the index of the mesh vertex closest to the given
// latitude and longitude in degrees.
func (m *Mesh) NearestVertex(lat, lon float64) (int, bool) {
	res, ok := m.regQuadTree.FindNearestNeighbor(geoquad.Point{Lat: lat, Lon: lon})
	if !ok {
		return -1, false
	}
	return res.Data.(int), true
}
