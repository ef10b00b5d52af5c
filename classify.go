package spherolization

// VertexClass labels a vertex by its valence.
type VertexClass uint8

const (
	// Hexagonal marks a vertex of degree 6 or higher.
	Hexagonal VertexClass = iota
	// Pentagonal marks a vertex of degree 5 or lower.
	Pentagonal
)

func (c VertexClass) String() string {
	if c == Pentagonal {
		return "pentagonal"
	}
	return "hexagonal"
}

// Classification is the per-vertex pentagonal/hexagonal labeling derived
// from the final vertex degrees.
type Classification struct {
	Classes   []VertexClass
	Pentagons []int // indices of pentagonal vertices in ascending order
}

// PentagonCount returns the number of pentagonal vertices.
func (c *Classification) PentagonCount() int {
	return len(c.Pentagons)
}

// Classify labels every vertex of the graph from its degree. Pure function
// over the neighbor lists; no side effects, recompute on demand.
func Classify(g *Graph) *Classification {
	c := &Classification{
		Classes: make([]VertexClass, len(g.Neighbors)),
	}
	for i := range g.Neighbors {
		if g.Degree(i) <= 5 {
			c.Classes[i] = Pentagonal
			c.Pentagons = append(c.Pentagons, i)
		}
	}
	return c
}
