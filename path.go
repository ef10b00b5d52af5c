package spherolization

import (
	"fmt"

	goastar "github.com/beefsack/go-astar"
	"github.com/mammaspappa/Spherolization/various"
)

// Navigator answers shortest-path queries over the mesh graph, with edge
// costs equal to the great arc distance between adjacent vertices.
type Navigator struct {
	points *PointSet
	graph  *Graph
	nodes  map[int]*meshNode
}

// NewNavigator returns a navigator over the given points and graph.
func NewNavigator(ps *PointSet, g *Graph) *Navigator {
	return &Navigator{
		points: ps,
		graph:  g,
		nodes:  make(map[int]*meshNode),
	}
}

// ShortestPath returns the vertex indices of the shortest path from one
// vertex to another (inclusive of both) and its total great arc length.
func (nv *Navigator) ShortestPath(from, to int) ([]int, float64, error) {
	n := nv.points.NumPoints()
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, 0, fmt.Errorf("spherolization: path endpoints %d, %d out of range", from, to)
	}
	path, dist, found := goastar.Path(nv.node(from), nv.node(to))
	if !found {
		return nil, 0, fmt.Errorf("spherolization: no path from %d to %d", from, to)
	}
	out := make([]int, len(path))
	for i, p := range path {
		out[i] = p.(*meshNode).index
	}
	// goastar unwinds the path from the destination.
	if len(out) > 0 && out[0] != from {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, dist, nil
}

// node returns the cached path node for the given index, so repeated
// queries re-use pre-existing nodes.
func (nv *Navigator) node(i int) *meshNode {
	if n, ok := nv.nodes[i]; ok {
		return n
	}
	n := &meshNode{nav: nv, index: i}
	nv.nodes[i] = n
	return n
}

func (nv *Navigator) arcDist(i, j int) float64 {
	return various.GreatArcDistance(nv.points.XYZ[i], nv.points.XYZ[j], nv.points.Radius)
}

// meshNode adapts a mesh vertex to the goastar.Pather interface.
type meshNode struct {
	nav   *Navigator
	index int
}

// PathNeighbors returns the direct neighboring vertices of this vertex.
func (n *meshNode) PathNeighbors() []goastar.Pather {
	nbs := make([]goastar.Pather, 0, 7)
	for _, i := range n.nav.graph.Neighbors[n.index] {
		nbs = append(nbs, n.nav.node(i))
	}
	return nbs
}

// PathNeighborCost returns the great arc distance to an adjacent vertex.
func (n *meshNode) PathNeighborCost(to goastar.Pather) float64 {
	return n.nav.arcDist(n.index, to.(*meshNode).index)
}

// PathEstimatedCost estimates the remaining cost as the direct great arc
// distance, which never overestimates the on-graph distance.
func (n *meshNode) PathEstimatedCost(to goastar.Pather) float64 {
	return n.nav.arcDist(n.index, to.(*meshNode).index)
}
