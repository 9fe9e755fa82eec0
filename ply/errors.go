package ply

import "errors"

// Sentinel errors wrapped by segerr.Input before reaching callers, except
// ErrUnknownVertex, which Write wraps with segerr.Internal.
var (
	// ErrNotPLY indicates the input's first line is not "ply".
	ErrNotPLY = errors.New("ply: missing 'ply' magic header line")
	// ErrNoFormatLine indicates the header never declared an ASCII 1.0
	// format line.
	ErrNoFormatLine = errors.New("ply: missing 'format ascii 1.0' header line")
	// ErrUnsupportedFormat indicates a declared format other than ASCII
	// 1.0 (e.g. a binary PLY variant).
	ErrUnsupportedFormat = errors.New("ply: only 'format ascii 1.0' is supported")
	// ErrTruncatedHeader indicates end_header was never reached.
	ErrTruncatedHeader = errors.New("ply: truncated header, no end_header line")
	// ErrTruncatedBody indicates fewer vertex or face lines were present
	// than the header declared.
	ErrTruncatedBody = errors.New("ply: fewer vertex/face lines than declared")
	// ErrNonTriangularFace indicates a face line did not declare exactly
	// 3 vertex indices.
	ErrNonTriangularFace = errors.New("ply: only triangular faces are supported")
	// ErrVertexIndexOutOfRange indicates a face referenced a vertex index
	// outside [0, numVertices).
	ErrVertexIndexOutOfRange = errors.New("ply: face vertex index out of range")
	// ErrUnknownVertex indicates Write was asked to serialise a face
	// whose vertex is not one of the mesh's own vertices.
	ErrUnknownVertex = errors.New("ply: face references a vertex not present in the mesh's vertex list")
)
