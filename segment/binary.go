package segment

import (
	"context"
	"math"

	"github.com/nzakh/meshseg/distance"
	"github.com/nzakh/meshseg/mesh"
	"github.com/nzakh/meshseg/segerr"
)

// membership holds a face's current fuzzy probability of belonging to
// cluster 0 versus cluster 1; p0 + p1 == 1.
type membership struct {
	p0, p1 float64
}

// Binary runs fuzzy 2-medoid clustering over m's faces using table as the
// dissimilarity measure, and returns a new Mesh (m is not mutated) in
// which every face carries one of two cluster colours or their saturating
// sum, "unsure".
func Binary(ctx context.Context, m *mesh.Mesh, table *distance.Table, opts ...Option) (*mesh.Mesh, error) {
	cfg := newOptions(opts...)
	out := m.Clone()

	if out.NumFaces() == 0 {
		return out, nil
	}

	keys := make([]mesh.FaceKey, out.NumFaces())
	for i, f := range out.Faces {
		keys[i] = f.Key()
	}

	r0, r1 := initMedoids(keys, table)
	probs := make(map[mesh.FaceKey]membership, len(keys))
	for _, k := range keys {
		probs[k] = membership{}
	}

	cfg.logger.WithField("faces", len(keys)).Debug("segment: forming initial coarse clusters")

	for iter := 0; iter < cfg.maxIters; iter++ {
		select {
		case <-ctx.Done():
			return nil, segerr.Cancelled(ctx.Err())
		default:
		}

		curR0, curR1 := r0, r1
		updateProbs(keys, table, r0, r1, probs)
		r0, r1 = updateMedoids(keys, table, probs)

		if r0 == curR0 && r1 == curR1 {
			break
		}
	}

	cfg.logger.Debug("segment: updating face colours")
	unsure := cfg.colours[0].Add(cfg.colours[1])
	for i, k := range keys {
		p := probs[k]
		switch {
		case p.p0 > cfg.probThreshold:
			out.Faces[i].Colour = cfg.colours[0]
		case p.p1 > cfg.probThreshold:
			out.Faces[i].Colour = cfg.colours[1]
		default:
			out.Faces[i].Colour = unsure
		}
	}

	return out, nil
}

// initMedoids picks the face pair maximising their table distance,
// scanning in ascending (i,j) order and keeping the first pair to strictly
// exceed the running maximum, so ties break toward the lowest-indexed
// pair.
func initMedoids(keys []mesh.FaceKey, table *distance.Table) (mesh.FaceKey, mesh.FaceKey) {
	r0, r1 := keys[0], keys[0]
	maxDist := 0.0

	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if d := table.Distance(keys[i], keys[j]); d > maxDist {
				maxDist = d
				r0, r1 = keys[i], keys[j]
			}
		}
	}

	return r0, r1
}

// updateProbs recomputes, in place, each face's membership probabilities
// given the current medoid pair.
func updateProbs(keys []mesh.FaceKey, table *distance.Table, r0, r1 mesh.FaceKey, probs map[mesh.FaceKey]membership) {
	for _, f := range keys {
		d0 := table.Distance(f, r0)
		d1 := table.Distance(f, r1)

		inf0, inf1 := math.IsInf(d0, 1), math.IsInf(d1, 1)

		var p membership
		switch {
		case inf0 && inf1:
			p = membership{p0: 0.5, p1: 0.5}
		case inf0:
			p = membership{p0: 0, p1: 1}
		case inf1:
			p = membership{p0: 1, p1: 0}
		default:
			denom := d0 + d1
			if denom == 0 {
				p = membership{p0: 0.5, p1: 0.5}
			} else {
				p = membership{p0: d1 / denom, p1: d0 / denom}
			}
		}

		probs[f] = p
	}
}

// updateMedoids recomputes the medoid pair minimising the membership-
// weighted distance sum S_k(f) = Σ_g p_k(g)·d(g,f), scanning faces in mesh
// order and keeping the first face to strictly improve the running
// minimum, so ties break toward the lowest mesh index. The argmin ranges
// over every face, not only those already closer to the current medoid.
// p.p0/p.p1 are gated behind a zero check so an unreachable face (distance
// +Inf) with exactly zero membership in a cluster contributes 0, not
// 0*Inf = NaN, to that cluster's sum.
func updateMedoids(keys []mesh.FaceKey, table *distance.Table, probs map[mesh.FaceKey]membership) (mesh.FaceKey, mesh.FaceKey) {
	var r0, r1 mesh.FaceKey
	min0, min1 := math.Inf(1), math.Inf(1)

	for _, f := range keys {
		var s0, s1 float64
		for _, g := range keys {
			p := probs[g]
			d := table.Distance(g, f)
			if p.p0 != 0 {
				s0 += p.p0 * d
			}
			if p.p1 != 0 {
				s1 += p.p1 * d
			}
		}

		if s0 < min0 {
			min0 = s0
			r0 = f
		}
		if s1 < min1 {
			min1 = s1
			r1 = f
		}
	}

	return r0, r1
}
