package dualgraph

import "github.com/nzakh/meshseg/geom"

// angularDistance computes ang(F,G) = μ·(1 − cos θ), θ = angle(nF, nG),
// attenuating convex dihedrals by eta per cfg.convex: a convex fold between
// two faces is a weaker segmentation boundary than a concave one, so it
// contributes less to the dual-graph edge weight.
func angularDistance(normalF, normalG, edgeVector geom.Vector, eta float64, convex ConvexityFunc) float64 {
	mu := 1.0
	if convex(normalF, normalG, edgeVector) {
		mu = eta
	}

	return mu * (1 - normalF.CosAngle(normalG))
}

// geodesicDistance computes the unfolded-centroid geodesic distance across
// the shared edge c1c2: unfold the two triangles into the plane containing
// the edge, and take the Euclidean distance between the unfolded
// centroids.
//
// m is the edge midpoint; h_F, h_G are each centroid's orthogonal distance
// to the edge line; p_F, p_G are each centroid's signed projection onto the
// edge direction, measured from m. The result is
// √((p_F−p_G)² + (h_F+h_G)²).
func geodesicDistance(centerF, centerG, c1, c2 geom.Vector) (float64, error) {
	edge := c2.Sub(c1)
	dir, err := edge.Normalize()
	if err != nil {
		return 0, err
	}

	m := c1.Add(c2).Scale(0.5)

	pF := centerF.Sub(m).Dot(dir)
	pG := centerG.Sub(m).Dot(dir)

	hF := perpendicularDistance(centerF, m, dir)
	hG := perpendicularDistance(centerG, m, dir)

	dp := pF - pG
	dh := hF + hG

	return geom.Vector{X: dp, Y: dh}.Length(), nil
}

// perpendicularDistance returns the distance from point to the line through
// origin with unit direction dir.
func perpendicularDistance(point, origin, dir geom.Vector) float64 {
	offset := point.Sub(origin)
	proj := offset.Dot(dir)
	perp := offset.Sub(dir.Scale(proj))

	return perp.Length()
}
