package ply

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nzakh/meshseg/mesh"
	"github.com/nzakh/meshseg/segerr"
	"github.com/pkg/errors"
)

// WriteFile creates (or truncates) path and writes m to it as an ASCII
// PLY 1.0 mesh.
func WriteFile(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return segerr.Input(errors.Wrapf(err, "ply: creating %q", path))
	}
	defer f.Close()

	if err := Write(f, m); err != nil {
		return err
	}

	return f.Close()
}

// Write serialises m as an ASCII PLY 1.0 mesh, augmenting each face line
// with its colour and declaring `property uint8 red/green/blue` after the
// vertex-indices list.
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, magicLine)
	fmt.Fprintln(bw, formatLine)
	fmt.Fprintln(bw, "comment segmented mesh")
	fmt.Fprintf(bw, "element vertex %d\n", m.NumVertices())
	fmt.Fprintln(bw, "property float x")
	fmt.Fprintln(bw, "property float y")
	fmt.Fprintln(bw, "property float z")
	fmt.Fprintf(bw, "element face %d\n", m.NumFaces())
	fmt.Fprintln(bw, "property list uchar int vertex_indices")
	fmt.Fprintln(bw, "property uint8 red")
	fmt.Fprintln(bw, "property uint8 green")
	fmt.Fprintln(bw, "property uint8 blue")
	fmt.Fprintln(bw, endHeaderLine)

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "%g %g %g\n", v.X, v.Y, v.Z)
	}

	for _, f := range m.Faces {
		i1, ok := m.VertexIndex(f.V1)
		if !ok {
			return segerr.Internal(ErrUnknownVertex)
		}
		i2, ok := m.VertexIndex(f.V2)
		if !ok {
			return segerr.Internal(ErrUnknownVertex)
		}
		i3, ok := m.VertexIndex(f.V3)
		if !ok {
			return segerr.Internal(ErrUnknownVertex)
		}

		fmt.Fprintf(bw, "3 %d %d %d %d %d %d\n", i1, i2, i3, f.Colour.R, f.Colour.G, f.Colour.B)
	}

	if err := bw.Flush(); err != nil {
		return segerr.Internal(errors.Wrap(err, "ply: flushing output"))
	}

	return nil
}
