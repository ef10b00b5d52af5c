package spherolization

import (
	"image/color"
	"testing"

	"github.com/mammaspappa/Spherolization/various"
	"github.com/mazznoer/colorgrad"
	"github.com/stretchr/testify/require"
)

func TestExtractFaceTrianglesOnDelaunay(t *testing.T) {
	ps, g, _ := buildDelaunay(t, 200, 1.0)
	batch, diag := ExtractFaceTriangles(ps, g, DefaultFillRatio)
	require.False(t, diag.HasAnomalies(), "warnings: %v", diag.Warnings)

	// Every edge of a closed triangulated sphere borders exactly two
	// faces; boundary edges (one face) are tolerated but not expected.
	require.Len(t, batch.EdgeFaces, len(g.Edges))
	var triangles int
	for _, f := range batch.EdgeFaces {
		require.GreaterOrEqual(t, len(f.Opposing), 1, "edge %d-%d", f.A, f.B)
		require.LessOrEqual(t, len(f.Opposing), 2, "edge %d-%d", f.A, f.B)
		for _, c := range f.Opposing {
			require.True(t, g.HasEdge(f.A, c))
			require.True(t, g.HasEdge(f.B, c))
		}
		triangles += len(f.Opposing)
	}
	require.Len(t, batch.Triangles, triangles)

	require.Zero(t, batch.ValidateCoplanarity(CoplanarityTolerance))
}

func TestExtractFaceTrianglesWinding(t *testing.T) {
	ps, g, _ := buildDelaunay(t, 150, 2.0)
	batch, _ := ExtractFaceTriangles(ps, g, DefaultFillRatio)
	for i := range batch.Triangles {
		tr := &batch.Triangles[i]
		centroid := various.CentroidOfTriangle(ps.XYZ[tr.IndexA], ps.XYZ[tr.IndexB], ps.XYZ[tr.Opposite])
		require.Greater(t, tr.Normal.Dot(centroid), 0.0, "triangle %d faces inward", i)
		require.InDelta(t, 1.0, tr.Normal.Len(), 1e-9)

		// The emitted edge endpoints are the face's edge, in some order.
		e := g.Edges[tr.EdgeIndex]
		require.ElementsMatch(t, []int{e.A, e.B}, []int{tr.IndexA, tr.IndexB})
	}
}

func TestExtractFaceTrianglesZeroFillRatio(t *testing.T) {
	// fillRatio 0 collapses the apex onto the edge midpoint. Degenerate,
	// but it must neither crash nor emit non-coplanar geometry.
	ps, g, _ := buildDelaunay(t, 100, 1.0)
	batch, _ := ExtractFaceTriangles(ps, g, 0)
	require.NotEmpty(t, batch.Triangles)
	for i := range batch.Triangles {
		tr := &batch.Triangles[i]
		mid := various.MidPoint3(ps.XYZ[tr.IndexA], ps.XYZ[tr.IndexB])
		require.InDelta(t, 0, various.Dist3(tr.Apex, mid), 1e-12)
	}
	require.Zero(t, batch.ValidateCoplanarity(CoplanarityTolerance))
}

func TestExtractFaceTrianglesApexPlacement(t *testing.T) {
	ps, g, _ := buildDelaunay(t, 100, 1.0)
	batch, _ := ExtractFaceTriangles(ps, g, 0.5)
	for i := range batch.Triangles {
		tr := &batch.Triangles[i]
		mid := various.MidPoint3(ps.XYZ[tr.IndexA], ps.XYZ[tr.IndexB])
		want := various.Lerp3(mid, ps.XYZ[tr.Opposite], 0.5)
		require.InDelta(t, 0, various.Dist3(tr.Apex, want), 1e-12)
	}
}

func TestExtractFaceTrianglesDegenerateInput(t *testing.T) {
	// Three collinear points: the only face candidates are zero-area and
	// must be skipped, counted as degenerate.
	ps, err := GeneratePoints(3, 1.0)
	require.NoError(t, err)
	ps.XYZ[0] = ps.XYZ[2].Mul(0.5).Add(ps.XYZ[1].Mul(0.5))

	set := map[Edge]struct{}{
		NewEdge(0, 1): {},
		NewEdge(1, 2): {},
		NewEdge(0, 2): {},
	}
	g := newGraphFromEdgeSet(3, set)
	batch, diag := ExtractFaceTriangles(ps, g, DefaultFillRatio)
	require.Empty(t, batch.Triangles)
	require.Equal(t, 3, diag.Degenerate)
}

func TestColorPolicies(t *testing.T) {
	ps, g, _ := buildDelaunay(t, 60, 1.0)
	batch, _ := ExtractFaceTriangles(ps, g, DefaultFillRatio)

	// Geometry leaves the color slot empty.
	for i := range batch.Triangles {
		require.Nil(t, batch.Triangles[i].Color)
	}

	// Flat edge colors: seeded, reproducible, shared per edge.
	batch.ApplyColors(FlatEdgeColors(7, len(g.Edges)))
	perEdge := make(map[int]color.Color)
	for i := range batch.Triangles {
		tr := &batch.Triangles[i]
		require.NotNil(t, tr.Color)
		if prev, ok := perEdge[tr.EdgeIndex]; ok {
			require.Equal(t, prev, tr.Color)
		}
		perEdge[tr.EdgeIndex] = tr.Color
	}

	other, _ := ExtractFaceTriangles(ps, g, DefaultFillRatio)
	other.ApplyColors(FlatEdgeColors(7, len(g.Edges)))
	for i := range batch.Triangles {
		require.Equal(t, batch.Triangles[i].Color, other.Triangles[i].Color)
	}

	// Gradient colors fill every slot as opaque colors.
	batch.ApplyColors(GradientColors(colorgrad.Rainbow()))
	for i := range batch.Triangles {
		c, ok := batch.Triangles[i].Color.(color.NRGBA)
		require.True(t, ok)
		require.EqualValues(t, 255, c.A)
	}
}
