package segerr_test

import (
	"errors"
	"testing"

	"github.com/nzakh/meshseg/segerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{segerr.Input(errors.New("x")), 2},
		{segerr.Config(errors.New("x")), 2},
		{segerr.Geometry(errors.New("x")), 3},
		{segerr.Internal(errors.New("x")), 4},
		{segerr.Cancelled(errors.New("x")), 130},
		{errors.New("unclassified"), 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, segerr.ExitCode(c.err))
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := segerr.Geometry(cause)
	require.ErrorIs(t, err, cause)
}

func TestNilIsNotClassified(t *testing.T) {
	assert.Nil(t, segerr.Input(nil))
}
