package spherolization

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/davvo/mercator"
	"github.com/llgcode/draw2d/draw2dimg"
)

// maxRenderLatitude clamps latitudes outside the mercator domain.
const maxRenderLatitude = 85.0

// GetImage renders the graph edges and the pentagonal vertices onto a
// mercator-projected image of the whole sphere at the given zoom level.
// This is an offline debug artifact, not a real-time rendering surface.
func (m *Mesh) GetImage(zoom int) image.Image {
	size := sizeFromZoom(zoom)
	dest := image.NewRGBA(image.Rect(0, 0, size, size))
	gc := draw2dimg.NewGraphicContext(dest)

	// Draw the edges.
	gc.SetLineWidth(1)
	gc.SetStrokeColor(color.NRGBA{R: 60, G: 60, B: 60, A: 255})
	for _, e := range m.Graph.Edges {
		a := m.PointSet.LatLon[e.A]
		b := m.PointSet.LatLon[e.B]

		// Skip edges that wrap around the antimeridian instead of
		// dragging a line across the whole image.
		if math.Abs(a[1]-b[1]) > 180 {
			continue
		}
		x1, y1 := latLonToPixels(a[0], a[1], zoom)
		x2, y2 := latLonToPixels(b[0], b[1], zoom)
		gc.BeginPath()
		gc.MoveTo(x1, y1)
		gc.LineTo(x2, y2)
		gc.Stroke()
	}

	// Mark the pentagonal vertices.
	gc.SetFillColor(color.NRGBA{R: 220, G: 40, B: 40, A: 255})
	for _, p := range m.Classification.Pentagons {
		ll := m.PointSet.LatLon[p]
		x, y := latLonToPixels(ll[0], ll[1], zoom)
		gc.BeginPath()
		gc.MoveTo(x-2, y-2)
		gc.LineTo(x+2, y-2)
		gc.LineTo(x+2, y+2)
		gc.LineTo(x-2, y+2)
		gc.Close()
		gc.Fill()
	}
	return dest
}

// ExportPng exports the mesh as a PNG image with the given name.
func (m *Mesh) ExportPng(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, m.GetImage(2))
}

// latLonToPixels converts latitude and longitude to absolute pixel
// coordinates at the given zoom level, with the latitude flipped into
// image orientation.
func latLonToPixels(lat, lon float64, zoom int) (float64, float64) {
	if lat > maxRenderLatitude {
		lat = maxRenderLatitude
	} else if lat < -maxRenderLatitude {
		lat = -maxRenderLatitude
	}
	return mercator.LatLonToPixels(-1*lat, lon, zoom)
}

// sizeFromZoom returns the pixel size of the world map at the given zoom
// level.
func sizeFromZoom(zoom int) int {
	return 256 * (1 << zoom)
}
