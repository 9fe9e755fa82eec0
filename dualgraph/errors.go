package dualgraph

import "errors"

// ErrEmptyMesh indicates Build was called with a mesh that has no faces.
var ErrEmptyMesh = errors.New("dualgraph: mesh has no faces")
