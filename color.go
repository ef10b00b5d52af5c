package spherolization

import (
	"image/color"
	"math/rand"

	"github.com/mammaspappa/Spherolization/various"
	"github.com/mazznoer/colorgrad"
)

// ColorPolicy assigns a color to one emitted triangle. Policies are
// entirely decoupled from the geometry computation; the extractor leaves
// the color slot empty and the caller fills it in afterwards.
type ColorPolicy func(t *Triangle) color.Color

// ApplyColors fills the color slot of every triangle in the batch.
func (tb *TriangleBatch) ApplyColors(policy ColorPolicy) {
	for i := range tb.Triangles {
		t := &tb.Triangles[i]
		t.Color = policy(t)
	}
}

// FlatEdgeColors returns a policy that assigns every edge a flat random
// color, shared by the one or two triangles emitted for that edge. The
// colors are drawn from a seeded source, so identical seeds reproduce
// identical colorings.
func FlatEdgeColors(seed int64, numEdges int) ColorPolicy {
	rnd := rand.New(rand.NewSource(seed))
	cols := make([]color.Color, numEdges)
	for i := range cols {
		cols[i] = color.NRGBA{
			R: uint8(rnd.Intn(256)),
			G: uint8(rnd.Intn(256)),
			B: uint8(rnd.Intn(256)),
			A: 255,
		}
	}
	return func(t *Triangle) color.Color {
		return cols[t.EdgeIndex]
	}
}

// GradientColors returns a policy that maps the latitude of each triangle
// centroid onto the given gradient.
func GradientColors(grad colorgrad.Gradient) ColorPolicy {
	return func(t *Triangle) color.Color {
		lat, _ := various.LatLonFromVec3(t.Centroid())
		return flattenColor(grad.At((lat + 90) / 180))
	}
}

// flattenColor converts any color to fully opaque 8-bit NRGBA.
func flattenColor(col color.Color) color.Color {
	var out color.NRGBA
	cr, cg, cb, _ := col.RGBA()
	out.R = uint8(float64(255) * float64(cr) / float64(0xffff))
	out.G = uint8(float64(255) * float64(cg) / float64(0xffff))
	out.B = uint8(float64(255) * float64(cb) / float64(0xffff))
	out.A = 255
	return out
}
