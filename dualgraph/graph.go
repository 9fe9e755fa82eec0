package dualgraph

import (
	"sort"

	"github.com/nzakh/meshseg/geom"
	"github.com/nzakh/meshseg/mesh"
	"github.com/nzakh/meshseg/segerr"
)

// NeighbourEdge pairs a neighbouring face with the Edge connecting it to
// the face Neighbours was called on.
type NeighbourEdge struct {
	Face mesh.FaceKey
	Edge Edge
}

// Graph is the dual graph of a mesh: one node per face, edges between
// faces sharing a mesh edge. It is immutable once Build returns.
type Graph struct {
	order      []mesh.FaceKey
	index      map[mesh.FaceKey]int
	neighbours map[mesh.FaceKey][]NeighbourEdge
}

// Faces returns every face in the graph, in the mesh's original order.
func (g *Graph) Faces() []mesh.FaceKey {
	out := make([]mesh.FaceKey, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbours returns k's adjacency list, sorted by (Edge.Weight ascending,
// then mesh index ascending) so iteration order is deterministic
// regardless of the adjacency algorithm or goroutine scheduling that built
// the graph.
func (g *Graph) Neighbours(k mesh.FaceKey) []NeighbourEdge {
	ns := g.neighbours[k]
	out := make([]NeighbourEdge, len(ns))
	copy(out, ns)

	return out
}

// Build constructs the dual graph of m: it discovers face adjacency, then
// computes and blends each edge's angular and geodesic distance. Returns
// segerr.Input(ErrEmptyMesh) if m has no faces, or segerr.Geometry for a
// degenerate (zero-area or zero-length-edge) face encountered while
// computing normals or the shared-edge direction.
func Build(m *mesh.Mesh, opts ...Option) (*Graph, error) {
	if m.NumFaces() == 0 {
		return nil, segerr.Input(ErrEmptyMesh)
	}
	cfg := newConfig(opts...)

	order := make([]mesh.FaceKey, m.NumFaces())
	verts := make([]faceVerts, m.NumFaces())
	normals := make([]geom.Vector, m.NumFaces())
	centers := make([]geom.Vector, m.NumFaces())
	for i, f := range m.Faces {
		order[i] = f.Key()
		verts[i] = faceVerts{v: f.Vertices()}

		n, err := f.Normal()
		if err != nil {
			return nil, segerr.Geometry(err)
		}
		normals[i] = n
		centers[i] = f.Center()
	}

	index := make(map[mesh.FaceKey]int, len(order))
	for i, k := range order {
		index[k] = i
	}

	mode := chooseMode(cfg.mode, len(verts))
	cfg.logger.WithField("faces", len(verts)).WithField("mode", mode).Debug("dualgraph: discovering adjacency")
	pairs := discoverAdjacency(verts, mode)

	type rawEdge struct {
		i, j      int
		ang, geod float64
	}
	raws := make([]rawEdge, 0, len(pairs))

	var angSum, geodSum float64
	for _, p := range pairs {
		nf, ng := normals[p.I], normals[p.J]
		// Orient the shared edge as it runs in face J's winding order, so the
		// convexity test sees the same direction whichever discovery mode
		// produced the pair.
		c1, c2 := p.C1, p.C2
		vj := verts[p.J].v
		for k := 0; k < 3; k++ {
			if vj[k] == c2 && vj[(k+1)%3] == c1 {
				c1, c2 = c2, c1
				break
			}
		}
		edgeVec := c2.Sub(c1)
		ang := angularDistance(nf, ng, edgeVec, cfg.eta, cfg.convex)

		geod, err := geodesicDistance(centers[p.I], centers[p.J], p.C1, p.C2)
		if err != nil {
			return nil, segerr.Geometry(err)
		}

		raws = append(raws, rawEdge{i: p.I, j: p.J, ang: ang, geod: geod})
		angSum += ang
		geodSum += geod
	}

	var angAvg, geodAvg float64
	if len(raws) > 0 {
		angAvg = angSum / float64(len(raws))
		geodAvg = geodSum / float64(len(raws))
	}

	neighbours := make(map[mesh.FaceKey][]NeighbourEdge, len(order))
	for _, r := range raws {
		w := blendWeight(r.ang, r.geod, angAvg, geodAvg, cfg.delta)
		e := Edge{AngDistance: r.ang, GeodDistance: r.geod, Weight: w}

		ki, kj := order[r.i], order[r.j]
		neighbours[ki] = append(neighbours[ki], NeighbourEdge{Face: kj, Edge: e})
		neighbours[kj] = append(neighbours[kj], NeighbourEdge{Face: ki, Edge: e})
	}

	for k, ns := range neighbours {
		sort.Slice(ns, func(a, b int) bool {
			if ns[a].Edge.Weight != ns[b].Edge.Weight {
				return ns[a].Edge.Weight < ns[b].Edge.Weight
			}
			return index[ns[a].Face] < index[ns[b].Face]
		})
		neighbours[k] = ns
	}

	cfg.logger.WithField("edges", len(raws)).Debug("dualgraph: built")

	return &Graph{order: order, index: index, neighbours: neighbours}, nil
}

// blendWeight combines ang and geod into the blended edge weight:
// w = (1-δ)·ang/ang̅ + δ·geod/geod̅, substituting 0 for a term whose
// average is zero rather than producing NaN.
func blendWeight(ang, geod, angAvg, geodAvg, delta float64) float64 {
	var angTerm, geodTerm float64
	if angAvg != 0 {
		angTerm = ang / angAvg
	}
	if geodAvg != 0 {
		geodTerm = geod / geodAvg
	}

	return (1-delta)*angTerm + delta*geodTerm
}
