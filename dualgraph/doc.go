// Package dualgraph builds the dual graph of a triangle mesh: one node per
// face, one edge per pair of faces sharing exactly two vertices, weighted by
// a blend of angular and geodesic distance across the shared edge.
//
// Construction has two phases. Build first discovers adjacency — either the
// reference O(F²) pairwise-intersection scan, or an O(F) edge-to-faces hash
// join for larger meshes, selectable via WithAdjacencyMode — then computes
// each edge's angular and geodesic distance and blends them into a single
// weight using the running averages over every discovered edge.
//
// Graph is read-only once built: Neighbours returns a face's adjacency list
// pre-sorted by (weight ascending, mesh index ascending) so that distance's
// parallel Dijkstra fan-out sees a fixed, deterministic iteration order
// regardless of which adjacency algorithm produced the edge set or how many
// workers are relaxing edges concurrently.
package dualgraph
