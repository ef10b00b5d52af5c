package spherolization

import (
	"github.com/Flokey82/go_gens/vectors"
)

// DetectCrossings returns the index pairs of all non-adjacent edges whose
// geodesic arcs intersect on the sphere surface. A planar graph yields an
// empty result. O(E^2) over all edge pairs; intended for offline
// validation of a built graph, not for interactive use at large N.
func DetectCrossings(ps *PointSet, edges []Edge) [][2]int {
	var crossings [][2]int
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			ei, ej := edges[i], edges[j]
			if ei.A == ej.A || ei.A == ej.B || ei.B == ej.A || ei.B == ej.B {
				continue
			}
			if arcsCross(ps.XYZ[ei.A], ps.XYZ[ei.B], ps.XYZ[ej.A], ps.XYZ[ej.B]) {
				crossings = append(crossings, [2]int{i, j})
			}
		}
	}
	return crossings
}

// arcsCross applies the great-circle separation test: the arcs (a,b) and
// (c,d) can only cross if a and b lie on opposite sides of the great
// circle through c and d, and vice versa. The separation test alone also
// fires when the ANTIPODE of one arc crosses the other, so the candidate
// intersection point (the great circle normals' cross product) is
// additionally confirmed to lie on both arcs.
func arcsCross(a, b, c, d vectors.Vec3) bool {
	nab := a.Cross(b)
	ncd := c.Cross(d)
	if signOf(ncd.Dot(a)) == signOf(ncd.Dot(b)) || signOf(nab.Dot(c)) == signOf(nab.Dot(d)) {
		return false
	}

	p := nab.Cross(ncd)
	if p.Len() < 1e-12 {
		// The arcs share a great circle; with the separation test already
		// passed this is a grazing degenerate case, not a proper crossing.
		return false
	}
	p = p.Normalize()
	if onArc(p, a, b, nab) && onArc(p, c, d, ncd) {
		return true
	}
	q := p.Mul(-1)
	return onArc(q, a, b, nab) && onArc(q, c, d, ncd)
}

// onArc reports whether q, a point on the great circle through a and b
// with normal n, lies on the minor arc between them.
func onArc(q, a, b, n vectors.Vec3) bool {
	return a.Cross(q).Dot(n) >= 0 && q.Cross(b).Dot(n) >= 0
}

func signOf(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
