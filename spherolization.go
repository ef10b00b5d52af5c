// Package spherolization converts an unstructured set of points on a
// sphere into a consistent, mostly-hexagonal planar graph (a geodesic
// soccer-ball mesh): Fibonacci lattice point placement, neighbor graph
// construction via one of two interchangeable backends, pentagon/hexagon
// valence classification and inset face triangle extraction. Offline
// validation helpers check planarity, the Euler degree deficit and face
// coplanarity.
package spherolization

import (
	"log"

	"github.com/Flokey82/geoquad"
)

// Mesh bundles all state derived from one parameter set. A parameter
// change discards the mesh and rebuilds everything from scratch; there is
// no incremental update path, so no stage ever observes partially updated
// points or edges.
type Mesh struct {
	*PointSet
	*Graph
	*Classification
	Triangles *TriangleBatch

	GraphDiag *Diagnostics // builder stage diagnostics
	FaceDiag  *Diagnostics // extractor stage diagnostics

	regQuadTree *geoquad.QuadTree // vertex lookup by lat/lon
}

// NewMesh generates the points, builds the neighbor graph with the
// configured backend, classifies the vertices and extracts the edge
// triangles. Invalid parameters surface as an error before any
// computation; everything the stages recover from locally lands in the
// mesh diagnostics instead.
func NewMesh(seed int64, cfg *Config) (*Mesh, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	ps, err := generatePoints(cfg.NumPoints, cfg.Radius, cfg.Jitter, seed)
	if err != nil {
		return nil, err
	}

	g, gdiag, err := NewGraphBuilder(cfg).BuildGraph(ps)
	if err != nil {
		return nil, err
	}

	batch, fdiag := ExtractFaceTriangles(ps, g, cfg.FillRatio)

	m := &Mesh{
		PointSet:       ps,
		Graph:          g,
		Classification: Classify(g),
		Triangles:      batch,
		GraphDiag:      gdiag,
		FaceDiag:       fdiag,
		regQuadTree:    newQuadTreeFromLatLon(ps.LatLon),
	}
	if gdiag.HasAnomalies() || fdiag.HasAnomalies() {
		log.Printf("spherolization: mesh built with anomalies (backend %s): graph=%v faces=%v",
			cfg.Backend, gdiag.Warnings, fdiag.Warnings)
	}
	return m, nil
}

// Validate runs the offline topology checks over the built mesh: the
// Euler degree deficit, edge crossings and face coplanarity. The results
// are reported as diagnostics for test and validation tooling; nothing is
// raised during normal use.
//
// The pentagon count itself is reported by the classification but not
// asserted here: a faithful Delaunay of a Fibonacci lattice carries
// degree-5/7 defect pairs along the spiral seams, so only the net deficit
// is fixed by the topology.
func (m *Mesh) Validate() *Diagnostics {
	diag := newDiagnostics()
	if d := m.Graph.DegreeDeficit(); d != ExpectedDegreeDeficit {
		diag.warnf("degree deficit %d, want %d", d, ExpectedDegreeDeficit)
	}
	if crossings := DetectCrossings(m.PointSet, m.Graph.Edges); len(crossings) > 0 {
		diag.warnf("%d crossing edge pairs detected", len(crossings))
	}
	if v := m.Triangles.ValidateCoplanarity(CoplanarityTolerance); v > 0 {
		diag.warnf("%d face coplanarity violations above %g", v, CoplanarityTolerance)
	}
	return diag
}
