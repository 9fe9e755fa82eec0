package ply_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nzakh/meshseg/geom"
	"github.com/nzakh/meshseg/mesh"
	"github.com/nzakh/meshseg/ply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTriangle = `ply
format ascii 1.0
comment sample
element vertex 3
property float x
property float y
property float z
element face 1
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
0 1 0
3 0 1 2
`

func TestReadSingleTriangle(t *testing.T) {
	m, err := ply.Read(strings.NewReader(sampleTriangle))
	require.NoError(t, err)

	require.Equal(t, 3, m.NumVertices())
	require.Equal(t, 1, m.NumFaces())
	assert.Equal(t, geom.Vector{X: 0, Y: 0, Z: 0}, m.Faces[0].V1)
	assert.Equal(t, geom.Vector{X: 1, Y: 0, Z: 0}, m.Faces[0].V2)
	assert.Equal(t, geom.Vector{X: 0, Y: 1, Z: 0}, m.Faces[0].V3)
}

func TestReadRejectsNonTriangularFace(t *testing.T) {
	bad := strings.Replace(sampleTriangle, "3 0 1 2", "4 0 1 2 0", 1)

	_, err := ply.Read(strings.NewReader(bad))
	require.Error(t, err)
}

func TestReadRejectsMissingMagic(t *testing.T) {
	bad := strings.TrimPrefix(sampleTriangle, "ply\n")

	_, err := ply.Read(strings.NewReader(bad))
	require.Error(t, err)
}

func TestReadRejectsOutOfRangeVertexIndex(t *testing.T) {
	bad := strings.Replace(sampleTriangle, "3 0 1 2", "3 0 1 9", 1)

	_, err := ply.Read(strings.NewReader(bad))
	require.Error(t, err)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	a := geom.Vector{X: 0, Y: 0, Z: 0}
	b := geom.Vector{X: 1, Y: 0, Z: 0}
	c := geom.Vector{X: 0, Y: 1, Z: 0}

	face := mesh.NewFace(a, b, c)
	face.Colour = geom.ColourRed

	m, err := mesh.New([]geom.Vector{a, b, c}, []mesh.Face{face})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ply.Write(&buf, m))

	got, err := ply.Read(&buf)
	require.NoError(t, err)

	require.Equal(t, 3, got.NumVertices())
	require.Len(t, got.Faces, 1)
	assert.Equal(t, a, got.Faces[0].V1)
	assert.Equal(t, b, got.Faces[0].V2)
	assert.Equal(t, c, got.Faces[0].V3)
}

func TestWriteEmitsColourHeaderAndFields(t *testing.T) {
	a := geom.Vector{X: 0, Y: 0, Z: 0}
	b := geom.Vector{X: 1, Y: 0, Z: 0}
	c := geom.Vector{X: 0, Y: 1, Z: 0}

	face := mesh.NewFace(a, b, c)
	face.Colour = geom.Colour{R: 10, G: 20, B: 30}

	m, err := mesh.New([]geom.Vector{a, b, c}, []mesh.Face{face})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ply.Write(&buf, m))

	out := buf.String()
	assert.Contains(t, out, "property uint8 red")
	assert.Contains(t, out, "property uint8 green")
	assert.Contains(t, out, "property uint8 blue")
	assert.Contains(t, out, "3 0 1 2 10 20 30")
}
