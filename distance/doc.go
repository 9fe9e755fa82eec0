// Package distance computes all-pairs shortest-path distances over a
// dualgraph.Graph by running one pruned Dijkstra per source face, fanned
// out across a worker pool.
//
// Each Dijkstra relaxes only the N_smallest lowest-weight outgoing edges of
// the node it pops, per the graph's pre-sorted neighbour order. This is a
// deliberate approximation: resulting distances may overestimate the true
// shortest path, which is acceptable because segment uses them only as a
// dissimilarity measure, not as exact geodesics.
//
// Build's worker pool shares no mutable graph state: each goroutine reads
// the dualgraph.Graph (itself immutable after construction) and writes
// only its own row of the result table, so no lock guards the graph and
// only the table assembly needs synchronisation.
package distance
