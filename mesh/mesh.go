package mesh

import "github.com/nzakh/meshseg/geom"

// Mesh is an ordered vertex list and an ordered, deduplicated face list.
//
// Faces retain the order established at construction time: distance-table
// and clustering output are iterated against Mesh.Faces directly, so
// nothing in this package or its callers is permitted to reorder m.Faces
// after New returns.
type Mesh struct {
	Vertices []geom.Vector
	Faces    []Face

	vertexIndex map[geom.Vector]int
}

// New builds a Mesh from vertices and faces. Duplicate faces (identical
// ordered vertex triples) are collapsed to one, keeping the first
// occurrence.
func New(vertices []geom.Vector, faces []Face) (*Mesh, error) {
	index := make(map[geom.Vector]int, len(vertices))
	for i, v := range vertices {
		if _, ok := index[v]; !ok {
			index[v] = i
		}
	}

	seen := make(map[FaceKey]struct{}, len(faces))
	out := make([]Face, 0, len(faces))
	for _, f := range faces {
		k := f.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, f)
	}

	return &Mesh{
		Vertices:    vertices,
		Faces:       out,
		vertexIndex: index,
	}, nil
}

// NumFaces returns the number of faces in m.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// NumVertices returns the number of vertices in m.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// VertexIndex returns the index of v within m.Vertices in amortised O(1),
// for PLY writing. The second return is false if v was never one of the
// vertices the Mesh was constructed from.
func (m *Mesh) VertexIndex(v geom.Vector) (int, bool) {
	i, ok := m.vertexIndex[v]
	return i, ok
}

// Clone returns a Mesh that shares m's vertex list but owns an independent
// copy of the face slice, so mutating the clone's face colours never
// affects m. FaceKey identity (vertex triples) is unchanged by Clone, so
// distance-table lookups keyed on the original mesh still resolve against
// a clone's faces.
func (m *Mesh) Clone() *Mesh {
	faces := make([]Face, len(m.Faces))
	copy(faces, m.Faces)

	return &Mesh{
		Vertices:    m.Vertices,
		Faces:       faces,
		vertexIndex: m.vertexIndex,
	}
}
