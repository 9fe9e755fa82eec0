package dualgraph

import "github.com/nzakh/meshseg/geom"

// facePair is one discovered adjacency: faces at indices I, J (I < J) share
// the edge C1-C2.
type facePair struct {
	I, J   int
	C1, C2 geom.Vector
}

// vectorLess provides an arbitrary total order over Vector, used only to
// canonicalise an unordered pair of vertices into a map key.
func vectorLess(a, b geom.Vector) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.Z < b.Z
}

func canonicalEdge(a, b geom.Vector) [2]geom.Vector {
	if vectorLess(b, a) {
		return [2]geom.Vector{b, a}
	}

	return [2]geom.Vector{a, b}
}

// sharedVertices returns the vertices common to both triples and true iff
// there are exactly two of them.
func sharedVertices(a, b [3]geom.Vector) (geom.Vector, geom.Vector, bool) {
	var shared []geom.Vector
	for _, va := range a {
		for _, vb := range b {
			if va == vb {
				shared = append(shared, va)
				break
			}
		}
	}
	if len(shared) != 2 {
		return geom.Vector{}, geom.Vector{}, false
	}

	return shared[0], shared[1], true
}

// discoverBruteForce is the reference O(F²) adjacency scan: for every
// unordered face pair, intersect their vertex sets and accept iff the
// intersection has cardinality 2.
func discoverBruteForce(faces []faceVerts) []facePair {
	var pairs []facePair
	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			c1, c2, ok := sharedVertices(faces[i].v, faces[j].v)
			if !ok {
				continue
			}
			pairs = append(pairs, facePair{I: i, J: j, C1: c1, C2: c2})
		}
	}

	return pairs
}

// discoverEdgeHash is the O(F) adjacency scan: map each undirected edge to
// the faces that contain it, then emit a pair per co-occurring pair of
// faces sharing that edge, keeping only pairs that share exactly two
// vertices so the result matches discoverBruteForce.
func discoverEdgeHash(faces []faceVerts) []facePair {
	buckets := make(map[[2]geom.Vector][]int)
	for i, f := range faces {
		edges := [3][2]geom.Vector{
			canonicalEdge(f.v[0], f.v[1]),
			canonicalEdge(f.v[1], f.v[2]),
			canonicalEdge(f.v[2], f.v[0]),
		}
		for _, e := range edges {
			buckets[e] = append(buckets[e], i)
		}
	}

	var pairs []facePair
	for edge, members := range buckets {
		for a := 0; a < len(members); a++ {
			for b := a + 1; b < len(members); b++ {
				i, j := members[a], members[b]
				if i > j {
					i, j = j, i
				}
				if _, _, ok := sharedVertices(faces[i].v, faces[j].v); !ok {
					continue
				}
				pairs = append(pairs, facePair{I: i, J: j, C1: edge[0], C2: edge[1]})
			}
		}
	}

	return pairs
}

type faceVerts struct {
	v [3]geom.Vector
}

func chooseMode(mode AdjacencyMode, numFaces int) AdjacencyMode {
	if mode != AdjacencyAuto {
		return mode
	}
	if numFaces > edgeHashThreshold {
		return AdjacencyEdgeHash
	}

	return AdjacencyBruteForce
}

func discoverAdjacency(faces []faceVerts, mode AdjacencyMode) []facePair {
	switch mode {
	case AdjacencyEdgeHash:
		return discoverEdgeHash(faces)
	default:
		return discoverBruteForce(faces)
	}
}
