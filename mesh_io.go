package spherolization

import (
	"encoding/binary"
	"io"

	"github.com/mammaspappa/Spherolization/various"
)

// WriteTo writes the generated points and the edge list to the given
// writer in a little-endian binary layout. Derived state (neighbor lists,
// classification, triangles) is rebuilt on read rather than persisted.
func (m *Mesh) WriteTo(w io.Writer) error {
	// Write the radius.
	if err := binary.Write(w, binary.LittleEndian, m.PointSet.Radius); err != nil {
		return err
	}

	// Write the XYZ coordinates as a flat slice.
	xyz := make([]float64, 0, 3*m.NumPoints())
	for _, v := range m.PointSet.XYZ {
		xyz = append(xyz, v.X, v.Y, v.Z)
	}
	if err := various.WriteFloatSlice(w, xyz); err != nil {
		return err
	}

	// Write the LatLon coordinates.
	if err := various.Write2FloatSlice(w, m.PointSet.LatLon); err != nil {
		return err
	}

	// Write the edge list as flat index pairs.
	flat := make([]int, 0, 2*len(m.Graph.Edges))
	for _, e := range m.Graph.Edges {
		flat = append(flat, e.A, e.B)
	}
	return various.WriteIntSlice(w, flat)
}

// ReadMesh reads a mesh written by WriteTo and rebuilds all derived state
// (neighbor lists, classification, triangles, lookup index) with the given
// fill ratio.
func ReadMesh(r io.Reader, fillRatio float64) (*Mesh, error) {
	var radius float64
	if err := binary.Read(r, binary.LittleEndian, &radius); err != nil {
		return nil, err
	}
	xyz, err := various.ReadFloatSlice(r)
	if err != nil {
		return nil, err
	}
	latLon, err := various.Read2FloatSlice(r)
	if err != nil {
		return nil, err
	}
	flat, err := various.ReadIntSlice(r)
	if err != nil {
		return nil, err
	}

	ps := &PointSet{
		Radius: radius,
		LatLon: latLon,
	}
	for i := 0; i+2 < len(xyz); i += 3 {
		ps.XYZ = append(ps.XYZ, various.ConvToVec3(xyz[i:i+3]))
	}

	set := make(map[Edge]struct{}, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		set[NewEdge(flat[i], flat[i+1])] = struct{}{}
	}
	g := newGraphFromEdgeSet(ps.NumPoints(), set)

	batch, fdiag := ExtractFaceTriangles(ps, g, fillRatio)
	return &Mesh{
		PointSet:       ps,
		Graph:          g,
		Classification: Classify(g),
		Triangles:      batch,
		GraphDiag:      newDiagnostics(),
		FaceDiag:       fdiag,
		regQuadTree:    newQuadTreeFromLatLon(ps.LatLon),
	}, nil
}
