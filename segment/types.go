package segment

import (
	"github.com/nzakh/meshseg/geom"
	"github.com/sirupsen/logrus"
)

// DefaultMaxIters bounds the medoid-refinement loop.
const DefaultMaxIters = 10

// DefaultProbThreshold is the membership-probability cutoff above which a
// face is assigned a cluster colour outright rather than the unsure blend.
const DefaultProbThreshold = 0.5

type options struct {
	maxIters      int
	probThreshold float64
	colours       [2]geom.Colour
	logger        *logrus.Logger
}

// Option configures Binary.
type Option func(*options)

// WithMaxIters overrides the medoid-refinement iteration cap (default
// DefaultMaxIters).
func WithMaxIters(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIters = n
		}
	}
}

// WithProbThreshold overrides the membership-probability cutoff (default
// DefaultProbThreshold).
func WithProbThreshold(t float64) Option {
	return func(o *options) { o.probThreshold = t }
}

// WithColours overrides the two cluster colours (default blue, red). The
// unsure colour is always their saturating sum, recomputed from whatever
// pair is supplied.
func WithColours(c0, c1 geom.Colour) Option {
	return func(o *options) { o.colours = [2]geom.Colour{c0, c1} }
}

// WithLogger injects a logger for per-stage progress messages.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		maxIters:      DefaultMaxIters,
		probThreshold: DefaultProbThreshold,
		colours:       [2]geom.Colour{geom.ColourBlue, geom.ColourRed},
		logger:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// RecursiveOptions configures Recursive.
type RecursiveOptions struct {
	// Levels is the recursion depth L ≥ 1; the result has up to 2^L
	// coloured partitions.
	Levels int
	// Workers bounds how many sub-meshes of a single level run their
	// Binary pass concurrently. Values less than 1 default to 1.
	Workers int
	// Seed drives RandomPalette; the same Seed and Levels reproduce the
	// same sequence of per-level palettes and unsure-face coin flips.
	Seed int64
	// Logger receives per-level progress messages.
	Logger *logrus.Logger
}
