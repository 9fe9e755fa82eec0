package geom

import "errors"

// ErrZeroLength indicates a normalize operation was attempted on a
// zero-length vector, for which direction is undefined.
var ErrZeroLength = errors.New("geom: zero-length vector")
