package geom_test

import (
	"testing"

	"github.com/nzakh/meshseg/geom"
	"github.com/stretchr/testify/assert"
)

func TestColourAddSaturates(t *testing.T) {
	c := geom.Colour{R: 200, G: 10, B: 0}.Add(geom.Colour{R: 100, G: 20, B: 0})
	assert.Equal(t, geom.Colour{R: 255, G: 30, B: 0}, c)
}

func TestColourAddNoOverflow(t *testing.T) {
	c := geom.ColourBlue.Add(geom.ColourRed)
	assert.Equal(t, geom.Colour{R: 255, G: 0, B: 255}, c)
}

func TestColourString(t *testing.T) {
	assert.Equal(t, "255 0 0", geom.ColourRed.String())
}
