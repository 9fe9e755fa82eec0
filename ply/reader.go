package ply

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nzakh/meshseg/geom"
	"github.com/nzakh/meshseg/mesh"
	"github.com/nzakh/meshseg/segerr"
	"github.com/pkg/errors"
)

const (
	magicLine     = "ply"
	formatLine    = "format ascii 1.0"
	endHeaderLine = "end_header"
	elementVertex = "element vertex"
	elementFace   = "element face"
)

// ReadFile opens path and parses it as an ASCII PLY 1.0 mesh. The file
// must exist and be named with a .ply extension; both failures classify
// as a segerr.Input.
func ReadFile(path string) (*mesh.Mesh, error) {
	if !strings.HasSuffix(path, ".ply") {
		return nil, segerr.Input(errors.Errorf("ply: %q does not have a .ply extension", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, segerr.Input(errors.Wrapf(err, "ply: opening %q", path))
	}
	defer f.Close()

	return Read(f)
}

// Read parses r as an ASCII PLY 1.0 mesh: a vertex element with x/y/z
// properties, followed by a face element with a vertex-index list.
// Only triangular faces are accepted; any other declared property is
// read past and ignored.
func Read(r io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(r)

	numVertices, numFaces, err := readHeader(scanner)
	if err != nil {
		return nil, segerr.Input(err)
	}

	vertices, err := readVertices(scanner, numVertices)
	if err != nil {
		return nil, segerr.Input(err)
	}

	faces, err := readFaces(scanner, vertices, numFaces)
	if err != nil {
		return nil, segerr.Input(err)
	}

	if err := scanner.Err(); err != nil {
		return nil, segerr.Input(errors.Wrap(err, "ply: reading input"))
	}

	return mesh.New(vertices, faces)
}

func readHeader(scanner *bufio.Scanner) (numVertices, numFaces int, err error) {
	if !scanner.Scan() {
		return 0, 0, errors.Wrap(ErrNotPLY, "empty input")
	}
	if strings.TrimSpace(scanner.Text()) != magicLine {
		return 0, 0, ErrNotPLY
	}

	sawFormat := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == endHeaderLine:
			if !sawFormat {
				return 0, 0, ErrNoFormatLine
			}
			return numVertices, numFaces, nil
		case line == formatLine:
			sawFormat = true
		case strings.HasPrefix(line, "format "):
			return 0, 0, ErrUnsupportedFormat
		case strings.HasPrefix(line, elementVertex):
			n, perr := parseTrailingInt(line)
			if perr != nil {
				return 0, 0, perr
			}
			numVertices = n
		case strings.HasPrefix(line, elementFace):
			n, perr := parseTrailingInt(line)
			if perr != nil {
				return 0, 0, perr
			}
			numFaces = n
		default:
			// comment, property, or other declarations: ignored.
		}
	}

	return 0, 0, ErrTruncatedHeader
}

func parseTrailingInt(line string) (int, error) {
	fields := strings.Fields(line)
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, errors.Wrapf(err, "ply: parsing element count in %q", line)
	}

	return n, nil
}

func readVertices(scanner *bufio.Scanner, n int) ([]geom.Vector, error) {
	vertices := make([]geom.Vector, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, ErrTruncatedBody
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			return nil, errors.Errorf("ply: vertex line %d has fewer than 3 fields", i)
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ply: parsing vertex %d x", i)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ply: parsing vertex %d y", i)
		}
		z, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ply: parsing vertex %d z", i)
		}

		vertices = append(vertices, geom.Vector{X: x, Y: y, Z: z})
	}

	return vertices, nil
}

func readFaces(scanner *bufio.Scanner, vertices []geom.Vector, n int) ([]mesh.Face, error) {
	faces := make([]mesh.Face, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, ErrTruncatedBody
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, errors.Errorf("ply: face line %d is malformed", i)
		}

		count, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "ply: parsing face %d vertex count", i)
		}
		if count != 3 {
			return nil, fmt.Errorf("%w: face %d declares %d vertices", ErrNonTriangularFace, i, count)
		}

		idx := make([]int, 3)
		for j := 0; j < 3; j++ {
			v, err := strconv.Atoi(fields[1+j])
			if err != nil {
				return nil, errors.Wrapf(err, "ply: parsing face %d vertex index %d", i, j)
			}
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("%w: face %d index %d", ErrVertexIndexOutOfRange, i, v)
			}
			idx[j] = v
		}

		faces = append(faces, mesh.NewFace(vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]))
	}

	return faces, nil
}
