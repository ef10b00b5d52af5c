package spherolization

import (
	"fmt"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/fogleman/delaunay"
)

// DelaunayBuilder computes the spherical Delaunay triangulation of the
// point set and uses its 1-skeleton as the neighbor graph. The sphere is
// mapped onto the plane with a stereographic projection; since the
// projection is conformal and circle-preserving, every planar Delaunay
// triangle corresponds to a spherical Delaunay triangle whose empty
// circumcap avoids the projection pole.
// See: https://en.wikipedia.org/wiki/Stereographic_projection
//
// A single chart misses the triangles around its own projection pole
// (they map to the unbounded face outside the convex hull), so the
// triangulation runs once from each of the two antipodal poles and the
// edge sets are unioned. Every spherical Delaunay triangle has an empty
// circumcap avoiding at least one of the two poles, so the union covers
// the full closed triangulation with E = 3N-6.
type DelaunayBuilder struct {
	Eps float64 // denominator floor applied next to the projection pole
}

// NewDelaunayBuilder returns a builder with the default projection epsilon.
func NewDelaunayBuilder() *DelaunayBuilder {
	return &DelaunayBuilder{Eps: DefaultProjectionEps}
}

// BuildGraph implements GraphBuilder.
func (b *DelaunayBuilder) BuildGraph(ps *PointSet) (*Graph, *Diagnostics, error) {
	n := ps.NumPoints()
	diag := newDiagnostics()
	if n < 4 {
		// Too few points for a triangulation; connect all pairs so the
		// downstream stages still have a symmetric graph to work with.
		diag.warnf("degenerate point count %d, connecting all pairs", n)
		set := make(map[Edge]struct{})
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				set[NewEdge(i, j)] = struct{}{}
			}
		}
		return newGraphFromEdgeSet(n, set), diag, nil
	}

	set := make(map[Edge]struct{}, 3*n)
	for _, pole := range []float64{1, -1} {
		if err := b.chartEdges(ps, pole, set, diag); err != nil {
			return nil, diag, err
		}
	}
	return newGraphFromEdgeSet(n, set), diag, nil
}

// chartEdges triangulates the stereographic chart projected from the
// given pole and adds the resulting undirected edges to the set.
func (b *DelaunayBuilder) chartEdges(ps *PointSet, pole float64, set map[Edge]struct{}, diag *Diagnostics) error {
	pts := make([]delaunay.Point, ps.NumPoints())
	for i, v := range ps.XYZ {
		x, y := b.project(v, ps.Radius, pole, diag)
		pts[i] = delaunay.Point{X: x, Y: y}
	}

	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return fmt.Errorf("spherolization: delaunay triangulation: %w", err)
	}

	for t := 0; t < len(tri.Triangles); t += 3 {
		p0 := tri.Triangles[t]
		p1 := tri.Triangles[t+1]
		p2 := tri.Triangles[t+2]
		set[NewEdge(p0, p1)] = struct{}{}
		set[NewEdge(p1, p2)] = struct{}{}
		set[NewEdge(p0, p2)] = struct{}{}
	}
	return nil
}

// project maps a point on the sphere to the plane via stereographic
// projection from (0, pole, 0) with pole being +1 or -1, using the X and
// Z axes as the plane basis. The denominator is floored at Eps so a point
// coinciding with the projection pole stays finite; this is a known
// precision compromise, not an exact projection.
func (b *DelaunayBuilder) project(v vectors.Vec3, radius, pole float64, diag *Diagnostics) (float64, float64) {
	u := v.Mul(1 / radius)
	den := 1 - pole*u.Y
	if den < b.Eps {
		den = b.Eps
		if diag != nil {
			diag.Degenerate++
		}
	}
	return u.X / den, u.Z / den
}
