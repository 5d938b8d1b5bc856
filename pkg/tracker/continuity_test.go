package tracker

import (
	"testing"

	"github.com/chenBenjamin97/snooker-tracker/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBallsRepositionsWithinThreshold(t *testing.T) {
	known := NewColourBallSet(settings.BallColours)
	known[settings.Red] = []BallPosition{{X: 100, Y: 100, Size: 20}}

	//4 pixels over a 20 pixel ball: normalized 0.2, inside the threshold
	observed := []BallPosition{{X: 104, Y: 100, Size: 20}}
	UpdateBalls(known, settings.BallColours, observed)

	require.Len(t, known[settings.Red], 1)
	assert.Equal(t, BallPosition{X: 104, Y: 100, Size: 20}, known[settings.Red][0])
}

func TestUpdateBallsDropsUnmatchedObservations(t *testing.T) {
	known := NewColourBallSet(settings.BallColours)
	known[settings.Red] = []BallPosition{{X: 100, Y: 100, Size: 20}}

	//20 pixels away: normalized 1.0, past the threshold; blob is dropped
	observed := []BallPosition{{X: 120, Y: 100, Size: 20}}
	UpdateBalls(known, settings.BallColours, observed)

	assert.Equal(t, BallPosition{X: 100, Y: 100, Size: 20}, known[settings.Red][0])
}

func TestUpdateBallsNeverGrowsTheSet(t *testing.T) {
	known := NewColourBallSet(settings.BallColours)
	known[settings.White] = []BallPosition{{X: 50, Y: 50, Size: 20}}
	known[settings.Red] = []BallPosition{{X: 100, Y: 100, Size: 20}, {X: 300, Y: 300, Size: 20}}
	before := known.TotalBalls()

	observed := []BallPosition{
		{X: 51, Y: 50, Size: 20},
		{X: 101, Y: 100, Size: 20},
		{X: 500, Y: 500, Size: 20},
		{X: 600, Y: 600, Size: 20},
	}
	UpdateBalls(known, settings.BallColours, observed)

	assert.Equal(t, before, known.TotalBalls())
}

func TestUpdateBallsGreedyFirstMatch(t *testing.T) {
	known := NewColourBallSet(settings.BallColours)
	//two balls both within threshold of the observed blob; the earlier
	//colour in detection order must win, not the nearer ball
	known[settings.White] = []BallPosition{{X: 104, Y: 100, Size: 20}}
	known[settings.Red] = []BallPosition{{X: 101, Y: 100, Size: 20}}

	observed := []BallPosition{{X: 100, Y: 100, Size: 20}}
	UpdateBalls(known, settings.BallColours, observed)

	assert.Equal(t, BallPosition{X: 100, Y: 100, Size: 20}, known[settings.White][0])
	assert.Equal(t, BallPosition{X: 101, Y: 100, Size: 20}, known[settings.Red][0])
}

func TestUpdateBallsPreservesListSlot(t *testing.T) {
	known := NewColourBallSet(settings.BallColours)
	known[settings.Red] = []BallPosition{
		{X: 100, Y: 100, Size: 20},
		{X: 200, Y: 200, Size: 20},
	}

	observed := []BallPosition{{X: 202, Y: 200, Size: 20}}
	UpdateBalls(known, settings.BallColours, observed)

	assert.Equal(t, BallPosition{X: 100, Y: 100, Size: 20}, known[settings.Red][0])
	assert.Equal(t, BallPosition{X: 202, Y: 200, Size: 20}, known[settings.Red][1])
}

func TestUpdateBallsReturnsSameSet(t *testing.T) {
	known := NewColourBallSet(settings.BallColours)
	returned := UpdateBalls(known, settings.BallColours, nil)
	assert.Equal(t, known.TotalBalls(), returned.TotalBalls())
}
