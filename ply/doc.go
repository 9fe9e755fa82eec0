// Package ply reads and writes the ASCII PLY 1.0 meshes the segmentation
// pipeline uses as its on-disk file format.
//
// Read accepts the reference header shape — a vertex element with x/y/z
// properties and a face element with a vertex-index list — ignoring any
// additional declared properties, and rejects anything but triangles.
// Write always emits the reference shape augmented with a per-face RGB
// triple, declaring `property uint8 red/green/blue` after the
// vertex-indices list.
package ply
