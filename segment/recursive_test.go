package segment_test

import (
	"context"
	"sort"
	"testing"

	"github.com/nzakh/meshseg/distance"
	"github.com/nzakh/meshseg/dualgraph"
	"github.com/nzakh/meshseg/geom"
	"github.com/nzakh/meshseg/mesh"
	"github.com/nzakh/meshseg/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubeMesh returns the 12-triangle surface triangulation of a unit cube.
func cubeMesh(t *testing.T) *mesh.Mesh {
	t.Helper()

	v0 := geom.Vector{X: 0, Y: 0, Z: 0}
	v1 := geom.Vector{X: 1, Y: 0, Z: 0}
	v2 := geom.Vector{X: 0, Y: 1, Z: 0}
	v3 := geom.Vector{X: 1, Y: 1, Z: 0}
	v4 := geom.Vector{X: 0, Y: 0, Z: 1}
	v5 := geom.Vector{X: 1, Y: 0, Z: 1}
	v6 := geom.Vector{X: 0, Y: 1, Z: 1}
	v7 := geom.Vector{X: 1, Y: 1, Z: 1}

	verts := []geom.Vector{v0, v1, v2, v3, v4, v5, v6, v7}
	faces := []mesh.Face{
		mesh.NewFace(v0, v1, v3), mesh.NewFace(v0, v3, v2), // bottom
		mesh.NewFace(v4, v5, v7), mesh.NewFace(v4, v7, v6), // top
		mesh.NewFace(v0, v1, v5), mesh.NewFace(v0, v5, v4), // front
		mesh.NewFace(v2, v3, v7), mesh.NewFace(v2, v7, v6), // back
		mesh.NewFace(v0, v2, v6), mesh.NewFace(v0, v6, v4), // left
		mesh.NewFace(v1, v3, v7), mesh.NewFace(v1, v7, v5), // right
	}

	m, err := mesh.New(verts, faces)
	require.NoError(t, err)
	require.Equal(t, 12, m.NumFaces())

	return m
}

// connectedByColour reports whether every face of colour c in m forms a
// single connected component under g's adjacency, ignoring edge weight.
func connectedByColour(m *mesh.Mesh, g *dualgraph.Graph, c geom.Colour) bool {
	var group []mesh.FaceKey
	set := make(map[mesh.FaceKey]bool)
	for _, f := range m.Faces {
		if f.Colour == c {
			k := f.Key()
			group = append(group, k)
			set[k] = true
		}
	}
	if len(group) == 0 {
		return true
	}

	visited := make(map[mesh.FaceKey]bool)
	queue := []mesh.FaceKey{group[0]}
	visited[group[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbours(cur) {
			if set[n.Face] && !visited[n.Face] {
				visited[n.Face] = true
				queue = append(queue, n.Face)
			}
		}
	}

	return len(visited) == len(group)
}

func TestRecursiveCubeLevelOne(t *testing.T) {
	m := cubeMesh(t)
	g, err := dualgraph.Build(m)
	require.NoError(t, err)
	table, err := distance.Build(context.Background(), g)
	require.NoError(t, err)

	out, err := segment.Recursive(context.Background(), m, table, segment.RecursiveOptions{Levels: 1, Seed: 1})
	require.NoError(t, err)
	require.Len(t, out.Faces, 12)

	colours := map[geom.Colour]int{}
	for _, f := range out.Faces {
		colours[f.Colour]++
	}

	// Contiguity only holds for the dominant cluster colours, not for the
	// unsure blend, which marks a boundary that need not be a single
	// contiguous patch.
	dominant := topColours(colours, 2)
	outGraph, err := dualgraph.Build(out)
	require.NoError(t, err)
	for _, c := range dominant {
		assert.True(t, connectedByColour(out, outGraph, c), "colour %v not contiguous", c)
	}
}

// topColours returns up to n colours with the highest face counts.
func topColours(counts map[geom.Colour]int, n int) []geom.Colour {
	type kv struct {
		c geom.Colour
		n int
	}
	kvs := make([]kv, 0, len(counts))
	for c, cnt := range counts {
		kvs = append(kvs, kv{c, cnt})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].n > kvs[j].n })

	if n > len(kvs) {
		n = len(kvs)
	}
	out := make([]geom.Colour, n)
	for i := 0; i < n; i++ {
		out[i] = kvs[i].c
	}

	return out
}

func TestRecursiveCubeLevelTwo(t *testing.T) {
	m := cubeMesh(t)
	g, err := dualgraph.Build(m)
	require.NoError(t, err)
	table, err := distance.Build(context.Background(), g)
	require.NoError(t, err)

	out, err := segment.Recursive(context.Background(), m, table, segment.RecursiveOptions{Levels: 2, Seed: 7})
	require.NoError(t, err)
	require.Len(t, out.Faces, 12)

	colours := map[geom.Colour]int{}
	for _, f := range out.Faces {
		colours[f.Colour]++
	}
	assert.NotEmpty(t, colours)
}

func TestRecursiveRejectsZeroLevels(t *testing.T) {
	m := cubeMesh(t)
	g, err := dualgraph.Build(m)
	require.NoError(t, err)
	table, err := distance.Build(context.Background(), g)
	require.NoError(t, err)

	_, err = segment.Recursive(context.Background(), m, table, segment.RecursiveOptions{Levels: 0})
	require.Error(t, err)
}
