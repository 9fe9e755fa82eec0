package dualgraph_test

import (
	"testing"

	"github.com/nzakh/meshseg/dualgraph"
	"github.com/nzakh/meshseg/geom"
	"github.com/nzakh/meshseg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoAdjacentTriangles(t *testing.T) *mesh.Mesh {
	t.Helper()

	a := geom.Vector{X: 0, Y: 0, Z: 0}
	b := geom.Vector{X: 1, Y: 0, Z: 0}
	c := geom.Vector{X: 0, Y: 1, Z: 0}
	d := geom.Vector{X: 1, Y: 1, Z: 0}

	verts := []geom.Vector{a, b, c, d}
	faces := []mesh.Face{
		mesh.NewFace(a, b, c),
		mesh.NewFace(b, d, c),
	}

	m, err := mesh.New(verts, faces)
	require.NoError(t, err)

	return m
}

func tetrahedron(t *testing.T) *mesh.Mesh {
	t.Helper()

	a := geom.Vector{X: 0, Y: 0, Z: 0}
	b := geom.Vector{X: 1, Y: 0, Z: 0}
	c := geom.Vector{X: 0, Y: 1, Z: 0}
	d := geom.Vector{X: 0, Y: 0, Z: 1}

	verts := []geom.Vector{a, b, c, d}
	faces := []mesh.Face{
		mesh.NewFace(a, c, b),
		mesh.NewFace(a, b, d),
		mesh.NewFace(a, d, c),
		mesh.NewFace(b, c, d),
	}

	m, err := mesh.New(verts, faces)
	require.NoError(t, err)

	return m
}

func TestBuildEmptyMesh(t *testing.T) {
	m, err := mesh.New(nil, nil)
	require.NoError(t, err)

	_, err = dualgraph.Build(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, dualgraph.ErrEmptyMesh)
}

func TestBuildTwoAdjacentTriangles(t *testing.T) {
	m := twoAdjacentTriangles(t)

	g, err := dualgraph.Build(m)
	require.NoError(t, err)

	keys := make([]mesh.FaceKey, len(m.Faces))
	for i, f := range m.Faces {
		keys[i] = f.Key()
	}

	n0 := g.Neighbours(keys[0])
	n1 := g.Neighbours(keys[1])
	require.Len(t, n0, 1)
	require.Len(t, n1, 1)
	assert.Equal(t, keys[1], n0[0].Face)
	assert.Equal(t, keys[0], n1[0].Face)
	assert.Equal(t, n0[0].Edge, n1[0].Edge)
	assert.GreaterOrEqual(t, n0[0].Edge.Weight, 0.0)
}

func TestBuildTetrahedronAdjacencySymmetryAndCardinality(t *testing.T) {
	m := tetrahedron(t)

	g, err := dualgraph.Build(m)
	require.NoError(t, err)

	for _, f := range g.Faces() {
		ns := g.Neighbours(f)
		// each face of a tetrahedron is adjacent to the other three.
		require.Len(t, ns, 3)
		for _, n := range ns {
			back := g.Neighbours(n.Face)
			found := false
			for _, b := range back {
				if b.Face == f {
					found = true
					assert.Equal(t, n.Edge, b.Edge)
				}
			}
			assert.True(t, found, "adjacency symmetry: %v must list %v back", n.Face, f)
		}
	}
}

func TestBuildDisconnectedPair(t *testing.T) {
	a := geom.Vector{X: 0, Y: 0, Z: 0}
	b := geom.Vector{X: 1, Y: 0, Z: 0}
	c := geom.Vector{X: 0, Y: 1, Z: 0}

	d := geom.Vector{X: 10, Y: 10, Z: 10}
	e := geom.Vector{X: 11, Y: 10, Z: 10}
	f := geom.Vector{X: 10, Y: 11, Z: 10}

	verts := []geom.Vector{a, b, c, d, e, f}
	faces := []mesh.Face{mesh.NewFace(a, b, c), mesh.NewFace(d, e, f)}

	m, err := mesh.New(verts, faces)
	require.NoError(t, err)

	g, err := dualgraph.Build(m)
	require.NoError(t, err)

	for _, k := range g.Faces() {
		assert.Empty(t, g.Neighbours(k))
	}
}

func TestNeighboursSortedByWeightThenIndex(t *testing.T) {
	m := tetrahedron(t)

	g, err := dualgraph.Build(m)
	require.NoError(t, err)

	index := make(map[mesh.FaceKey]int, len(m.Faces))
	for i, f := range m.Faces {
		index[f.Key()] = i
	}

	for _, f := range g.Faces() {
		ns := g.Neighbours(f)
		for i := 1; i < len(ns); i++ {
			assert.True(t, ns[i-1].Edge.Weight <= ns[i].Edge.Weight)
			if ns[i-1].Edge.Weight == ns[i].Edge.Weight {
				assert.Less(t, index[ns[i-1].Face], index[ns[i].Face])
			}
		}
	}
}

func TestBuildEdgeHashMatchesBruteForce(t *testing.T) {
	m := tetrahedron(t)

	bf, err := dualgraph.Build(m, dualgraph.WithAdjacencyMode(dualgraph.AdjacencyBruteForce))
	require.NoError(t, err)

	eh, err := dualgraph.Build(m, dualgraph.WithAdjacencyMode(dualgraph.AdjacencyEdgeHash))
	require.NoError(t, err)

	for _, f := range bf.Faces() {
		bfN := bf.Neighbours(f)
		ehN := eh.Neighbours(f)
		require.Len(t, ehN, len(bfN))
		for i := range bfN {
			assert.Equal(t, bfN[i].Face, ehN[i].Face)
			assert.InDelta(t, bfN[i].Edge.Weight, ehN[i].Edge.Weight, 1e-9)
		}
	}
}
