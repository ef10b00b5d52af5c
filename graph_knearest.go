package spherolization

import (
	"log"

	"github.com/mammaspappa/Spherolization/various"
)

// KNearestTrimBuilder approximates the mesh graph by unioning the k-nearest
// candidate sets of every point and trimming vertices above the valence
// cap. The candidate search is brute force over all point pairs, which is
// O(N^2) and only acceptable for point counts up to a few thousand.
//
// The union rule adds the edge (a,b) if b is among a's candidates OR a is
// among b's candidates. Not requiring mutuality is intentional: it yields a
// superset graph that trimming then reduces toward the target valence.
type KNearestTrimBuilder struct {
	SearchK       int // initial candidate pool per point
	MaxDegree     int // hard valence cap enforced by trimming
	TargetDegree  int // ideal valence; reached for most vertices, not enforced
	TrimMaxPasses int // full trim passes before reporting non-convergence
}

// NewKNearestTrimBuilder returns a builder with the default tuning.
func NewKNearestTrimBuilder() *KNearestTrimBuilder {
	return &KNearestTrimBuilder{
		SearchK:       DefaultSearchK,
		MaxDegree:     DefaultMaxDegree,
		TargetDegree:  DefaultTargetDegree,
		TrimMaxPasses: DefaultTrimMaxPasses,
	}
}

// BuildGraph implements GraphBuilder.
func (b *KNearestTrimBuilder) BuildGraph(ps *PointSet) (*Graph, *Diagnostics, error) {
	n := ps.NumPoints()
	diag := newDiagnostics()
	if n < 2 {
		diag.warnf("degenerate point count %d, graph has no edges", n)
		return newGraphFromEdgeSet(n, nil), diag, nil
	}

	// Union the candidate sets into the initial (superset) edge set.
	candidates := b.findCandidates(ps)
	set := make(map[Edge]struct{}, n*b.SearchK/2)
	for i, cands := range candidates {
		for _, j := range cands {
			set[NewEdge(i, j)] = struct{}{}
		}
	}
	g := newGraphFromEdgeSet(n, set)

	b.trim(ps, g, diag)

	// Report valences that ended up out of bounds. Classification still
	// proceeds with whatever degree resulted.
	for i := range g.Neighbors {
		if deg := g.Degree(i); deg < 3 || deg > b.MaxDegree {
			if diag.Residual == nil {
				diag.Residual = make(map[int]int)
			}
			diag.Residual[i] = deg
		}
	}
	if len(diag.Residual) > 0 {
		diag.warnf("%d vertices with degree outside [3,%d] after trimming", len(diag.Residual), b.MaxDegree)
	}
	return g, diag, nil
}

// findCandidates returns the SearchK nearest point indices for every point.
// The per-point searches are independent and read-only over the shared
// point array, so they fan out over chunk workers.
func (b *KNearestTrimBuilder) findCandidates(ps *PointSet) [][]int {
	n := ps.NumPoints()
	k := b.SearchK
	if k > n-1 {
		k = n - 1
	}
	candidates := make([][]int, n)
	various.KickOffChunkWorkers(n, func(start, end int) {
		bestIdx := make([]int, k)
		bestDist := make([]float64, k)
		for i := start; i < end; i++ {
			size := 0
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				d := various.DistSquared3(ps.XYZ[i], ps.XYZ[j])
				if size == k && d >= bestDist[size-1] {
					continue
				}
				// Insertion sort into the fixed-size candidate buffer.
				if size < k {
					size++
				}
				pos := size - 1
				for pos > 0 && bestDist[pos-1] > d {
					bestDist[pos] = bestDist[pos-1]
					bestIdx[pos] = bestIdx[pos-1]
					pos--
				}
				bestDist[pos] = d
				bestIdx[pos] = j
			}
			candidates[i] = append([]int(nil), bestIdx[:size]...)
		}
	})
	return candidates
}

// trim repeatedly scans all vertices and, for any vertex above the valence
// cap, removes its single longest incident edge from both endpoints. Scans
// repeat until a pass removes nothing or the pass limit is exhausted, in
// which case non-convergence is reported instead of looping forever.
func (b *KNearestTrimBuilder) trim(ps *PointSet, g *Graph, diag *Diagnostics) {
	for pass := 0; pass < b.TrimMaxPasses; pass++ {
		removed := false
		for v := range g.Neighbors {
			if g.Degree(v) <= b.MaxDegree {
				continue
			}
			longest, longestDist := -1, -1.0
			for _, nb := range g.Neighbors[v] {
				if d := various.DistSquared3(ps.XYZ[v], ps.XYZ[nb]); d > longestDist {
					longest, longestDist = nb, d
				}
			}
			g.removeEdge(v, longest)
			removed = true
		}
		if !removed {
			g.rebuildEdges()
			return
		}
	}
	g.rebuildEdges()

	// A removal on the final pass may have been the last one needed;
	// only an actual leftover violation counts as non-convergence.
	for v := range g.Neighbors {
		if g.Degree(v) > b.MaxDegree {
			diag.Converged = false
			diag.warnf("trimming did not converge within %d passes", b.TrimMaxPasses)
			log.Printf("spherolization: trimming did not converge within %d passes", b.TrimMaxPasses)
			return
		}
	}
}
