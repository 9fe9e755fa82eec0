package distance

import (
	"context"
	"math"
	"sync"

	"github.com/nzakh/meshseg/dualgraph"
	"github.com/nzakh/meshseg/mesh"
	"golang.org/x/sync/errgroup"
)

// Table is the all-pairs distance table produced by Build. It is
// read-only: Distance never mutates it.
type Table struct {
	rows map[mesh.FaceKey]map[mesh.FaceKey]float64
}

// Distance returns the shortest-path weight from a to b, or +Inf if b is
// unreachable from a or either face is unknown to the table.
// Distance(a, a) is always 0.
func (t *Table) Distance(a, b mesh.FaceKey) float64 {
	if a == b {
		return 0
	}
	row, ok := t.rows[a]
	if !ok {
		return math.Inf(1)
	}
	d, ok := row[b]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// Build computes the all-pairs distance table of g: one pruned Dijkstra per
// face, fanned out over a worker pool. ctx is cooperative; a cancelled ctx
// aborts every in-flight worker and Build returns the cancellation error
// with no partial table.
func Build(ctx context.Context, g *dualgraph.Graph, opts ...Option) (*Table, error) {
	cfg := newConfig(opts...)
	faces := g.Faces()

	rows := make(map[mesh.FaceKey]map[mesh.FaceKey]float64, len(faces))
	var mu sync.Mutex

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.workers)

	for _, f := range faces {
		source := f
		grp.Go(func() error {
			row, err := dijkstraFrom(ctx, g, faces, source, cfg.nSmallest)
			if err != nil {
				return err
			}

			mu.Lock()
			rows[source] = row
			mu.Unlock()

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	cfg.logger.WithField("faces", len(faces)).WithField("workers", cfg.workers).Debug("distance: table built")

	return &Table{rows: rows}, nil
}
