// Package mesh defines the triangle-mesh model shared by every later stage
// of the segmentation pipeline: vertices, faces, and the mesh that owns
// them.
//
// A Face's identity — the key used throughout dualgraph, distance, and
// segment — is its ordered vertex triple (FaceKey), not the Face value
// itself. A Face also carries a Colour field that later stages mutate
// freely; because FaceKey deliberately excludes it, colouring a Face never
// perturbs its place in any adjacency or distance table.
package mesh
