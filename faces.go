package spherolization

import (
	"image/color"
	"math"
	"sort"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/mammaspappa/Spherolization/various"
)

// CoplanarityTolerance is the default tolerance for ValidateCoplanarity.
const CoplanarityTolerance = 1e-4

// EdgeFaces records the vertices completing the triangular faces adjacent
// to one edge. On a closed triangulated sphere every edge has exactly two
// opposing vertices; a single one marks a boundary edge, which is handled
// but not expected.
type EdgeFaces struct {
	EdgeIndex int
	A, B      int
	Opposing  []int // at most two entries
}

// Triangle is one inset edge triangle with consistent outward winding:
// two vertices coincide with the edge endpoints (possibly swapped) and the
// apex sits between the edge midpoint and the opposite vertex.
type Triangle struct {
	EdgeIndex      int
	IndexA, IndexB int // edge endpoint indices in emitted order
	Opposite       int // opposite vertex index
	A, B, Apex     vectors.Vec3
	Normal         vectors.Vec3
	Color          color.Color // opaque slot, filled by a caller-supplied policy
}

// Centroid returns the centroid of the emitted triangle.
func (t *Triangle) Centroid() vectors.Vec3 {
	return various.CentroidOfTriangle(t.A, t.B, t.Apex)
}

// TriangleBatch is a flat, order-preserving sequence of edge triangles plus
// the per-edge face records they were derived from. Ephemeral: it is
// recomputed whenever the points or edges are recomputed and holds no
// rendering state.
type TriangleBatch struct {
	Triangles []Triangle
	EdgeFaces []EdgeFaces
	FillRatio float64
}

// ExtractFaceTriangles finds, for every edge, the opposing vertices that
// complete its adjacent triangular faces (the intersection of the endpoint
// neighbor sets) and emits one inset triangle per (edge, opposing vertex)
// pair. The apex is interpolated from the edge midpoint toward the
// opposing vertex at the given fill ratio; a ratio of 0 degenerates the
// apex onto the midpoint, which is legal.
//
// Works with any builder backend; non-planar input graphs can yield more
// than two opposing vertices per edge, in which case the two closest to
// the edge are kept and a warning is recorded.
func ExtractFaceTriangles(ps *PointSet, g *Graph, fillRatio float64) (*TriangleBatch, *Diagnostics) {
	diag := newDiagnostics()
	batch := &TriangleBatch{
		EdgeFaces: make([]EdgeFaces, len(g.Edges)),
		FillRatio: fillRatio,
	}

	// The per-edge neighbor intersections are independent and read-only
	// over the graph, so they fan out over chunk workers.
	various.KickOffChunkWorkers(len(g.Edges), func(start, end int) {
		for ei := start; ei < end; ei++ {
			e := g.Edges[ei]
			batch.EdgeFaces[ei] = EdgeFaces{
				EdgeIndex: ei,
				A:         e.A,
				B:         e.B,
				Opposing:  intersectSorted(g.Neighbors[e.A], g.Neighbors[e.B]),
			}
		}
	})

	for ei := range batch.EdgeFaces {
		f := &batch.EdgeFaces[ei]
		if len(f.Opposing) == 0 {
			diag.warnf("edge %d-%d completes no face", f.A, f.B)
			continue
		}
		if len(f.Opposing) > 2 {
			diag.warnf("edge %d-%d shared by %d faces, keeping the closest two", f.A, f.B, len(f.Opposing))
			f.Opposing = closestTwo(ps, f.A, f.B, f.Opposing)
		}
		for _, c := range f.Opposing {
			t, ok := makeEdgeTriangle(ps, ei, f.A, f.B, c, fillRatio)
			if !ok {
				diag.Degenerate++
				continue
			}
			batch.Triangles = append(batch.Triangles, t)
		}
	}
	return batch, diag
}

// makeEdgeTriangle computes the inset triangle for one edge and opposing
// vertex. Returns false for degenerate (collinear) faces, which are
// skipped rather than emitted.
func makeEdgeTriangle(ps *PointSet, edgeIndex, ia, ib, ic int, fillRatio float64) (Triangle, bool) {
	a, b, c := ps.XYZ[ia], ps.XYZ[ib], ps.XYZ[ic]

	normal := various.TriangleNormal(a, b, c)
	if normal.Len() < 1e-12 {
		return Triangle{}, false
	}
	normal = normal.Normalize()

	mid := various.MidPoint3(a, b)
	apex := various.Lerp3(mid, c, fillRatio)

	// The outward-facing triangle must wind counter-clockwise viewed from
	// outside the sphere: flip the emitted edge order if the normal points
	// inward.
	if normal.Dot(various.CentroidOfTriangle(a, b, c)) <= 0 {
		ia, ib = ib, ia
		a, b = b, a
		normal = normal.Mul(-1)
	}

	return Triangle{
		EdgeIndex: edgeIndex,
		IndexA:    ia,
		IndexB:    ib,
		Opposite:  ic,
		A:         a,
		B:         b,
		Apex:      apex,
		Normal:    normal,
	}, true
}

// ValidateCoplanarity recomputes the apex offset of every emitted triangle
// against the plane through its source face and returns the number of
// triangles deviating by more than tol. Pure validation; the geometry is
// never mutated.
func (tb *TriangleBatch) ValidateCoplanarity(tol float64) int {
	var violations int
	for i := range tb.Triangles {
		t := &tb.Triangles[i]
		if math.Abs(t.Apex.Sub(t.A).Dot(t.Normal)) > tol {
			violations++
		}
	}
	return violations
}

// intersectSorted returns the intersection of two sorted int slices.
func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// closestTwo keeps the two opposing vertices closest to the edge midpoint.
func closestTwo(ps *PointSet, ia, ib int, opposing []int) []int {
	mid := various.MidPoint3(ps.XYZ[ia], ps.XYZ[ib])
	sorted := append([]int(nil), opposing...)
	sort.Slice(sorted, func(i, j int) bool {
		return various.DistSquared3(ps.XYZ[sorted[i]], mid) < various.DistSquared3(ps.XYZ[sorted[j]], mid)
	})
	return sorted[:2]
}
