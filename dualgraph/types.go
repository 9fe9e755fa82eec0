package dualgraph

import (
	"github.com/nzakh/meshseg/geom"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultDelta is the angular/geodesic blend weight.
	DefaultDelta = 0.5
	// DefaultEta attenuates convex dihedrals relative to concave ones.
	DefaultEta = 0.01
	// edgeHashThreshold is the face count above which AdjacencyAuto
	// switches from the reference O(F²) scan to the O(F) edge-hash join,
	// which pays off once the quadratic pairwise scan starts to dominate
	// build time.
	edgeHashThreshold = 2000
)

// Edge holds the per-adjacency distances and blended weight between two
// faces sharing an edge.
type Edge struct {
	AngDistance  float64
	GeodDistance float64
	Weight       float64
}

// ConvexityFunc decides whether the dihedral between two adjacent face
// normals, joined at edgeVector, is convex. A convex dihedral is
// attenuated by Eta in the angular-distance calculation.
//
// edgeVector runs along the shared edge in the winding direction of the
// face whose normal is normalG; Build always orients it that way. A signed
// test depends on this direction: reversing edgeVector reverses its sign.
type ConvexityFunc func(normalF, normalG, edgeVector geom.Vector) bool

// ConvexitySignedDihedral is the default ConvexityFunc. It signs the
// dihedral via (nF × nG) · edgeVector, with edgeVector oriented as described
// on ConvexityFunc: for consistently wound faces, a negative projection
// indicates the faces fold away from each other (convex).
func ConvexitySignedDihedral(normalF, normalG, edgeVector geom.Vector) bool {
	return normalF.Cross(normalG).Dot(edgeVector) < 0
}

// ConvexityNever never reports a convex dihedral, so every fold is scored
// as concave (no eta attenuation). Kept as an explicit, always-concave
// alternative for callers who want angular distance without the convexity
// discount; it is not the default.
func ConvexityNever(geom.Vector, geom.Vector, geom.Vector) bool {
	return false
}

// AdjacencyMode selects the adjacency-discovery algorithm.
type AdjacencyMode int

const (
	// AdjacencyAuto picks AdjacencyEdgeHash above edgeHashThreshold faces,
	// AdjacencyBruteForce otherwise.
	AdjacencyAuto AdjacencyMode = iota
	// AdjacencyBruteForce is the reference O(F²) pairwise vertex-set
	// intersection scan.
	AdjacencyBruteForce
	// AdjacencyEdgeHash is the O(F) edge-to-faces hash join.
	AdjacencyEdgeHash
)

func (m AdjacencyMode) String() string {
	switch m {
	case AdjacencyBruteForce:
		return "brute-force"
	case AdjacencyEdgeHash:
		return "edge-hash"
	default:
		return "auto"
	}
}

type config struct {
	delta  float64
	eta    float64
	convex ConvexityFunc
	mode   AdjacencyMode
	logger *logrus.Logger
}

// Option configures Build.
type Option func(*config)

// WithDelta overrides the angular/geodesic blend weight (default
// DefaultDelta).
func WithDelta(delta float64) Option {
	return func(c *config) { c.delta = delta }
}

// WithEta overrides the convex-dihedral attenuation factor (default
// DefaultEta).
func WithEta(eta float64) Option {
	return func(c *config) { c.eta = eta }
}

// WithConvexityTest overrides the convexity test (default
// ConvexitySignedDihedral).
func WithConvexityTest(fn ConvexityFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.convex = fn
		}
	}
}

// WithAdjacencyMode overrides the adjacency-discovery algorithm (default
// AdjacencyAuto).
func WithAdjacencyMode(mode AdjacencyMode) Option {
	return func(c *config) { c.mode = mode }
}

// WithLogger injects a logger for per-stage progress messages. The default
// is a logrus.Logger at its package-default settings.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		delta:  DefaultDelta,
		eta:    DefaultEta,
		convex: ConvexitySignedDihedral,
		mode:   AdjacencyAuto,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
