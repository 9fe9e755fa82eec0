package mesh

import "github.com/nzakh/meshseg/geom"

// FaceKey is the identity of a Face: its ordered vertex triple. Two Faces
// with the same vertices in the same order are the same face regardless of
// their current Colour. Every map keyed on "which face" throughout
// dualgraph, distance, and segment uses FaceKey, never Face.
type FaceKey struct {
	V1, V2, V3 geom.Vector
}

// Face is a triangle: three vertex references and a mutable colour tag.
// The zero value's Colour is the Go zero Colour (0,0,0); use NewFace to get
// the specified default of white.
type Face struct {
	V1, V2, V3 geom.Vector
	Colour     geom.Colour
}

// NewFace returns a Face over the given vertices with the default white
// colour.
func NewFace(v1, v2, v3 geom.Vector) Face {
	return Face{V1: v1, V2: v2, V3: v3, Colour: geom.ColourWhite}
}

// Key returns f's identity, independent of its current Colour.
func (f Face) Key() FaceKey {
	return FaceKey{V1: f.V1, V2: f.V2, V3: f.V3}
}

// Vertices returns f's three vertices in winding order.
func (f Face) Vertices() [3]geom.Vector {
	return [3]geom.Vector{f.V1, f.V2, f.V3}
}

// Center returns the centroid of f.
func (f Face) Center() geom.Vector {
	return f.V1.Add(f.V2).Add(f.V3).Div(3)
}

// Normal returns the unit normal of f, following the input winding order
// with no flipping: (v1-v2) × (v1-v3), normalized. Returns geom.ErrZeroLength
// for a degenerate (zero-area) triangle.
func (f Face) Normal() (geom.Vector, error) {
	edge1 := f.V1.Sub(f.V2)
	edge2 := f.V1.Sub(f.V3)

	return edge1.Cross(edge2).Normalize()
}
