// Package segerr defines the error taxonomy shared across the segmentation
// pipeline and maps it to CLI exit codes.
//
// Every package in this module keeps its own sentinel errors for specific
// failure sites (dualgraph.ErrEmptyMesh, geom.ErrZeroLength, ...); segerr
// exists because the taxonomy in which those sentinels are classified — input,
// geometry, config, internal, cancelled — is cross-cutting: an InputError
// originates in ply or dualgraph, a ConfigError in cmd/segment's own flag
// validation or in segment, and a GeometryError in dualgraph (wrapping
// sentinels from geom). Centralizing the
// classification lets cmd/segment map any returned error to an exit code
// with a single errors.As, without importing every leaf package's sentinels.
package segerr
