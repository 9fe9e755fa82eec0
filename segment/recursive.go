package segment

import (
	"context"
	"math/rand"
	"sort"

	"github.com/nzakh/meshseg/distance"
	"github.com/nzakh/meshseg/geom"
	"github.com/nzakh/meshseg/mesh"
	"github.com/nzakh/meshseg/segerr"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Recursive drives a work queue of sub-meshes through Binary once per
// level, reusing the distance table across every subdivision, and
// reassembles the final level's sub-meshes into a single Mesh with up to
// 2^opts.Levels coloured partitions.
func Recursive(ctx context.Context, m *mesh.Mesh, table *distance.Table, opts RecursiveOptions) (*mesh.Mesh, error) {
	if opts.Levels < 1 {
		return nil, segerr.Config(errLevelsBelowOne)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = defaultLogger()
	}

	origFaceCount := m.NumFaces()
	queue := []*mesh.Mesh{m}
	var results []*mesh.Mesh

	for level := 0; level < opts.Levels; level++ {
		palette := RandomPalette(2*len(queue), opts.Seed+int64(level))

		logger.WithField("level", level+1).WithField("submeshes", len(queue)).Debug("segment: segmenting level")

		grp, gctx := errgroup.WithContext(ctx)
		grp.SetLimit(workers)

		results = make([]*mesh.Mesh, len(queue))
		for idx, sub := range queue {
			idx, sub := idx, sub
			c0, c1 := palette[idx*2], palette[idx*2+1]

			grp.Go(func() error {
				colouredOut, err := Binary(gctx, sub, table, WithColours(c0, c1), WithLogger(logger))
				if err != nil {
					return err
				}
				results[idx] = colouredOut

				return nil
			})
		}
		if err := grp.Wait(); err != nil {
			return nil, err
		}

		if level == opts.Levels-1 {
			break
		}

		nextQueue := make([]*mesh.Mesh, 0, len(results)*2)
		for i, r := range results {
			left, right, err := divideMesh(r, opts.Seed+int64(level)+int64(i)+1)
			if err != nil {
				return nil, err
			}
			nextQueue = append(nextQueue, left, right)
		}
		queue = nextQueue
	}

	out, err := combineMeshes(results)
	if err != nil {
		return nil, err
	}
	if out.NumFaces() != origFaceCount {
		return nil, segerr.Internal(ErrFaceCountMismatch)
	}

	return out, nil
}

// divideMesh partitions r's faces by its two most frequent colours
// (ties among equally-frequent colours break by first-seen order);
// faces with neither colour are distributed uniformly at random between
// the two halves, seeded so the split is reproducible.
func divideMesh(r *mesh.Mesh, seed int64) (*mesh.Mesh, *mesh.Mesh, error) {
	type count struct {
		colour geom.Colour
		n      int
	}

	var order []geom.Colour
	counts := make(map[geom.Colour]int)
	for _, f := range r.Faces {
		if _, seen := counts[f.Colour]; !seen {
			order = append(order, f.Colour)
		}
		counts[f.Colour]++
	}

	if len(order) < 2 {
		return nil, nil, segerr.Internal(ErrTooFewColours)
	}

	ranked := make([]count, len(order))
	for i, c := range order {
		ranked[i] = count{colour: c, n: counts[c]}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].n > ranked[j].n })

	colour0, colour1 := ranked[0].colour, ranked[1].colour

	rng := rand.New(rand.NewSource(seed))
	var left, right []mesh.Face
	for _, f := range r.Faces {
		switch f.Colour {
		case colour0:
			left = append(left, f)
		case colour1:
			right = append(right, f)
		default:
			if rng.Intn(2) == 0 {
				left = append(left, f)
			} else {
				right = append(right, f)
			}
		}
	}

	leftMesh, err := mesh.New(r.Vertices, left)
	if err != nil {
		return nil, nil, err
	}
	rightMesh, err := mesh.New(r.Vertices, right)
	if err != nil {
		return nil, nil, err
	}

	return leftMesh, rightMesh, nil
}

// combineMeshes concatenates every sub-mesh's face list (in queue order)
// into a single Mesh sharing the first sub-mesh's vertex list, which for
// Recursive's internal call graph is always the original mesh's vertices.
func combineMeshes(meshes []*mesh.Mesh) (*mesh.Mesh, error) {
	var faces []mesh.Face
	for _, m := range meshes {
		faces = append(faces, m.Faces...)
	}

	return mesh.New(meshes[0].Vertices, faces)
}

func defaultLogger() *logrus.Logger { return logrus.StandardLogger() }
