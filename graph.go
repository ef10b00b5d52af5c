package spherolization

import (
	"fmt"
	"sort"
)

// Edge is an unordered pair of point indices with A < B. The edge set of a
// graph never contains self-loops or duplicate pairs.
type Edge struct {
	A, B int
}

// NewEdge returns the normalized edge for the given endpoints.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Graph is a symmetric neighbor relation over a point set: b is in
// Neighbors[a] exactly when a is in Neighbors[b] exactly when the edge
// (a,b) is in Edges.
type Graph struct {
	Edges     []Edge  // deduplicated, sorted by (A, B)
	Neighbors [][]int // sorted adjacency list per point index
}

// Degree returns the valence of the given vertex.
func (g *Graph) Degree(i int) int {
	return len(g.Neighbors[i])
}

// ExpectedDegreeDeficit is the total degree deficit of any full
// triangulation of the sphere. Euler's formula (V - E + F = 2) fixes the
// net value at exactly 12 no matter how the individual valences fall: an
// icosahedral mesh concentrates it in 12 pentagonal vertices, while a
// Fibonacci lattice spreads it over spiral chains of degree-5/7 pairs
// whose surplus fives and sevens cancel. Only the net deficit is a
// topological invariant, so this is what validation checks.
const ExpectedDegreeDeficit = 12

// DegreeDeficit returns the sum of (6 - degree) over all vertices.
func (g *Graph) DegreeDeficit() int {
	var d int
	for i := range g.Neighbors {
		d += 6 - g.Degree(i)
	}
	return d
}

// HasEdge reports whether the vertices a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	if a < 0 || a >= len(g.Neighbors) {
		return false
	}
	nbs := g.Neighbors[a]
	idx := sort.SearchInts(nbs, b)
	return idx < len(nbs) && nbs[idx] == b
}

// GraphBuilder builds the neighbor graph for a point set. Soft failures
// (degeneracies, non-convergence) are collected in the returned
// Diagnostics; an error is only returned when no usable graph could be
// produced at all.
type GraphBuilder interface {
	BuildGraph(points *PointSet) (*Graph, *Diagnostics, error)
}

// NewGraphBuilder returns the builder selected by the config.
func NewGraphBuilder(cfg *Config) GraphBuilder {
	if cfg.Backend == BackendKNearestTrim {
		return &KNearestTrimBuilder{
			SearchK:       cfg.SearchK,
			MaxDegree:     cfg.MaxDegree,
			TargetDegree:  cfg.TargetDegree,
			TrimMaxPasses: cfg.TrimMaxPasses,
		}
	}
	return &DelaunayBuilder{Eps: cfg.ProjectionEps}
}

// newGraphFromEdgeSet builds sorted neighbor lists and an ordered,
// deduplicated edge list from an unordered edge set.
func newGraphFromEdgeSet(numPoints int, set map[Edge]struct{}) *Graph {
	edges := make([]Edge, 0, len(set))
	for e := range set {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	nbs := make([][]int, numPoints)
	for _, e := range edges {
		nbs[e.A] = append(nbs[e.A], e.B)
		nbs[e.B] = append(nbs[e.B], e.A)
	}
	for i := range nbs {
		sort.Ints(nbs[i])
	}
	return &Graph{Edges: edges, Neighbors: nbs}
}

// rebuildEdges regenerates the edge list from the neighbor lists,
// re-symmetrizing on the way: an adjacency recorded on either side is kept
// on both.
func (g *Graph) rebuildEdges() {
	set := make(map[Edge]struct{}, len(g.Edges))
	for a, nbs := range g.Neighbors {
		for _, b := range nbs {
			if a != b {
				set[NewEdge(a, b)] = struct{}{}
			}
		}
	}
	rebuilt := newGraphFromEdgeSet(len(g.Neighbors), set)
	g.Edges = rebuilt.Edges
	g.Neighbors = rebuilt.Neighbors
}

// removeEdge deletes the adjacency between a and b from both neighbor
// lists. The edge list is left untouched; callers rebuild it once after a
// batch of removals.
func (g *Graph) removeEdge(a, b int) {
	g.Neighbors[a] = removeSortedInt(g.Neighbors[a], b)
	g.Neighbors[b] = removeSortedInt(g.Neighbors[b], a)
}

func removeSortedInt(s []int, v int) []int {
	idx := sort.SearchInts(s, v)
	if idx < len(s) && s[idx] == v {
		return append(s[:idx], s[idx+1:]...)
	}
	return s
}

// Diagnostics collects soft failures of a pipeline stage. Stages never
// abort on these; each stage returns its best-effort result plus the
// diagnostics, and the caller decides whether anomalies are acceptable.
type Diagnostics struct {
	Degenerate int         // degenerate geometry cases clamped or skipped
	Residual   map[int]int // vertex -> degree for valences still out of bounds after trimming
	Converged  bool        // false if trimming exhausted its pass limit
	Warnings   []string
}

func newDiagnostics() *Diagnostics {
	return &Diagnostics{Converged: true}
}

func (d *Diagnostics) warnf(format string, args ...interface{}) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// HasAnomalies reports whether any soft failure was recorded.
func (d *Diagnostics) HasAnomalies() bool {
	return d.Degenerate > 0 || len(d.Residual) > 0 || !d.Converged || len(d.Warnings) > 0
}
