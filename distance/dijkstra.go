package distance

import (
	"container/heap"
	"context"
	"math"

	"github.com/nzakh/meshseg/dualgraph"
	"github.com/nzakh/meshseg/mesh"
	"github.com/nzakh/meshseg/segerr"
)

// item is one entry of the Dijkstra priority queue.
type item struct {
	face mesh.FaceKey
	dist float64
}

// itemHeap is a min-heap of *item ordered by dist ascending. Ties do not
// need a tiebreak here: the pruning step that precedes each relax already
// fixed neighbour order, and heap ordering among equal distances has no
// effect on the final dist map.
type itemHeap []*item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*item)) }
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// dijkstraFrom runs a pruned, single-source Dijkstra over g from source,
// visiting every face reachable through the edges the pruning relaxes.
// Unreached faces are left at +Inf. At each popped node, only the first nSmallest
// entries of g.Neighbours (already sorted weight ascending, then mesh
// index ascending) are relaxed, trading a small amount of shortest-path
// accuracy on high-degree faces for a bounded per-node relax cost.
//
// ctx is checked on every heap pop; a cancelled context aborts the search
// and returns segerr.Cancelled.
func dijkstraFrom(ctx context.Context, g *dualgraph.Graph, faces []mesh.FaceKey, source mesh.FaceKey, nSmallest int) (map[mesh.FaceKey]float64, error) {
	dist := make(map[mesh.FaceKey]float64, len(faces))
	for _, f := range faces {
		dist[f] = math.Inf(1)
	}
	dist[source] = 0

	visited := make(map[mesh.FaceKey]bool, len(faces))

	pq := make(itemHeap, 0, len(faces))
	heap.Push(&pq, &item{face: source, dist: 0})

	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, segerr.Cancelled(ctx.Err())
		default:
		}

		cur := heap.Pop(&pq).(*item)
		if visited[cur.face] {
			continue
		}
		visited[cur.face] = true

		neighbours := g.Neighbours(cur.face)
		limit := nSmallest
		if limit > len(neighbours) {
			limit = len(neighbours)
		}

		for _, n := range neighbours[:limit] {
			if visited[n.Face] {
				continue
			}

			candidate := cur.dist + n.Edge.Weight
			if candidate < dist[n.Face] {
				dist[n.Face] = candidate
				heap.Push(&pq, &item{face: n.Face, dist: candidate})
			}
		}
	}

	return dist, nil
}
