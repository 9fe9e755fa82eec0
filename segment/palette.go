package segment

import (
	"math/rand"

	"github.com/nzakh/meshseg/geom"
)

// RandomPalette returns n independently-random RGB colours, seeded so that
// the same (n, seed) pair always reproduces the same sequence. Recursive
// draws a fresh palette per level so that the whole pipeline is
// reproducible given a seed.
func RandomPalette(n int, seed int64) []geom.Colour {
	rng := rand.New(rand.NewSource(seed))

	out := make([]geom.Colour, n)
	for i := range out {
		out[i] = geom.Colour{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		}
	}

	return out
}
