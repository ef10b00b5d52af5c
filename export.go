package spherolization

import (
	geojson "github.com/paulmach/go.geojson"
)

// GetGeoJSONVertices returns all mesh vertices as a GeoJSON feature
// collection of points, tagged with index, degree and classification.
func (m *Mesh) GetGeoJSONVertices() ([]byte, error) {
	geoJSON := geojson.NewFeatureCollection()
	for i, ll := range m.PointSet.LatLon {
		f := geojson.NewPointFeature([]float64{ll[1], ll[0]})
		f.SetProperty("index", i)
		f.SetProperty("degree", m.Graph.Degree(i))
		f.SetProperty("class", m.Classification.Classes[i].String())
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}

// GetGeoJSONEdges returns all graph edges as a GeoJSON feature collection
// of line strings. Edges crossing the antimeridian are split-free here;
// viewers that wrap longitudes handle them.
func (m *Mesh) GetGeoJSONEdges() ([]byte, error) {
	geoJSON := geojson.NewFeatureCollection()
	for i, e := range m.Graph.Edges {
		a := m.PointSet.LatLon[e.A]
		b := m.PointSet.LatLon[e.B]
		f := geojson.NewLineStringFeature([][]float64{
			{a[1], a[0]},
			{b[1], b[0]},
		})
		f.SetProperty("index", i)
		f.SetProperty("a", e.A)
		f.SetProperty("b", e.B)
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}
