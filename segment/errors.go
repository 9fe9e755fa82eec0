package segment

import "errors"

// ErrFaceCountMismatch indicates Recursive's final assembly produced a
// face count different from the input mesh's, signalling a bug in the
// partition/reassembly bookkeeping rather than anything about the input
// mesh.
var ErrFaceCountMismatch = errors.New("segment: reassembled face count does not match original")

// ErrTooFewColours indicates a coloured sub-mesh did not have at least two
// distinct colours to partition by, meaning Binary was never run on it (or
// ran on a degenerate single-colour result).
var ErrTooFewColours = errors.New("segment: mesh has fewer than two distinct colours to partition by")

// errLevelsBelowOne indicates RecursiveOptions.Levels was less than 1.
var errLevelsBelowOne = errors.New("segment: Levels must be >= 1")
