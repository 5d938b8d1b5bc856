package tracker

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceToSelfIsZero(t *testing.T) {
	positions := []BallPosition{
		{X: 0, Y: 0, Size: 10},
		{X: 100, Y: 100, Size: 20},
		{X: -42.5, Y: 13.7, Size: 36.6},
	}
	for _, p := range positions {
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistanceNormalizedBySize(t *testing.T) {
	a := BallPosition{X: 100, Y: 100, Size: 20}
	b := BallPosition{X: 140, Y: 100, Size: 20}
	//40 pixels apart, 20 pixel diameter: two ball widths
	assert.InDelta(t, 2.0, Distance(a, b), 1e-9)

	//same pixel gap with doubled ball size halves the normalized distance
	a.Size, b.Size = 40, 40
	assert.InDelta(t, 1.0, Distance(a, b), 1e-9)
}

func TestDistanceSymmetric(t *testing.T) {
	a := BallPosition{X: 10, Y: 20, Size: 16}
	b := BallPosition{X: 31, Y: 7, Size: 24}
	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestValidateRejectsNonFinite(t *testing.T) {
	valid := BallPosition{X: 1, Y: 2, Size: 3}
	assert.NoError(t, valid.Validate())

	bad := []BallPosition{
		{X: math.NaN(), Y: 0, Size: 10},
		{X: 0, Y: math.Inf(1), Size: 10},
		{X: 0, Y: 0, Size: math.Inf(-1)},
	}
	for _, p := range bad {
		err := p.Validate()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidGeometry))
	}
}
