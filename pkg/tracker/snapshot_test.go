package tracker

import (
	"strings"
	"testing"

	"github.com/chenBenjamin97/snooker-tracker/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCountMatchesBallList(t *testing.T) {
	s := NewSnapshot(settings.BallColours)
	s.SetBalls(settings.Red, []BallPosition{
		{X: 1, Y: 1, Size: 10},
		{X: 2, Y: 2, Size: 10},
	})

	for _, colour := range s.Colours() {
		assert.Equal(t, len(s.Balls(colour)), s.Count(colour))
	}
	assert.Equal(t, 2, s.Count(settings.Red))
}

func TestSnapshotAssignFromSetDeepCopies(t *testing.T) {
	set := NewColourBallSet(settings.BallColours)
	set[settings.Red] = []BallPosition{{X: 5, Y: 5, Size: 10}}
	set[settings.White] = []BallPosition{{X: 50, Y: 50, Size: 20}}

	s := NewSnapshot(settings.BallColours)
	s.AssignFromSet(set)

	//mutating the source set must not leak into the snapshot
	set[settings.Red][0] = BallPosition{X: 99, Y: 99, Size: 10}
	assert.Equal(t, BallPosition{X: 5, Y: 5, Size: 10}, s.Balls(settings.Red)[0])

	require.NotNil(t, s.White())
	assert.Equal(t, BallPosition{X: 50, Y: 50, Size: 20}, s.White().Position)
	assert.False(t, s.White().IsMoving)
}

func TestSnapshotAssignFromDeepCopies(t *testing.T) {
	a := NewSnapshot(settings.BallColours)
	a.SetBalls(settings.White, []BallPosition{{X: 10, Y: 10, Size: 20}})
	a.SetBalls(settings.Blue, []BallPosition{{X: 30, Y: 30, Size: 20}})
	a.White().IsMoving = true

	b := NewSnapshot(settings.BallColours)
	b.AssignFrom(a)

	require.NotNil(t, b.White())
	assert.True(t, b.White().IsMoving)

	//white references are independent copies, never aliases
	b.White().IsMoving = false
	assert.True(t, a.White().IsMoving)

	a.SetBalls(settings.Blue, nil)
	assert.Equal(t, 1, b.Count(settings.Blue))
}

func TestSnapshotAssignRoundTripDiffIsZero(t *testing.T) {
	a := NewSnapshot(settings.BallColours)
	a.SetBalls(settings.White, []BallPosition{{X: 10, Y: 10, Size: 20}})
	a.SetBalls(settings.Red, []BallPosition{{X: 1, Y: 1, Size: 10}, {X: 2, Y: 2, Size: 10}})
	a.SetBalls(settings.Pink, []BallPosition{{X: 3, Y: 3, Size: 10}})

	b := NewSnapshot(settings.BallColours)
	b.AssignFrom(a)

	for _, colour := range a.Colours() {
		assert.Equal(t, 0, a.CompareBallDiff(colour, b))
		assert.Equal(t, 0, b.CompareBallDiff(colour, a))
	}
}

func TestSnapshotCompareBallDiff(t *testing.T) {
	last := NewSnapshot(settings.BallColours)
	last.SetBalls(settings.Red, []BallPosition{{X: 1, Y: 1, Size: 10}, {X: 2, Y: 2, Size: 10}})

	temp := NewSnapshot(settings.BallColours)
	temp.SetBalls(settings.Red, []BallPosition{{X: 1, Y: 1, Size: 10}})

	assert.Equal(t, 1, last.CompareBallDiff(settings.Red, temp))
	assert.Equal(t, -1, temp.CompareBallDiff(settings.Red, last))
}

func TestSnapshotWhiteReferenceFollowsWhiteList(t *testing.T) {
	s := NewSnapshot(settings.BallColours)
	assert.Nil(t, s.White())

	s.SetBalls(settings.White, []BallPosition{{X: 7, Y: 8, Size: 20}})
	require.NotNil(t, s.White())
	assert.Equal(t, BallPosition{X: 7, Y: 8, Size: 20}, s.White().Position)

	s.SetBalls(settings.White, nil)
	assert.Nil(t, s.White())
}

func TestSnapshotReportFormat(t *testing.T) {
	prev := NewSnapshot(settings.BallColours)
	prev.SetBalls(settings.White, []BallPosition{{X: 1, Y: 1, Size: 20}})
	prev.SetBalls(settings.Red, []BallPosition{{X: 2, Y: 2, Size: 10}, {X: 3, Y: 3, Size: 10}})

	cur := NewSnapshot(settings.BallColours)
	cur.SetBalls(settings.White, []BallPosition{{X: 1, Y: 1, Size: 20}})
	cur.SetBalls(settings.Red, []BallPosition{{X: 2, Y: 2, Size: 10}})

	report := SnapshotReport(prev, cur)

	assert.Contains(t, report, "PREVIOUS SNAPSHOT | CURRENT SNAPSHOT")
	lines := strings.Split(report, "\n")
	var redLine string
	for _, line := range lines {
		if strings.HasPrefix(line, "reds:") {
			redLine = line
		}
	}
	require.NotEmpty(t, redLine)
	assert.Equal(t, "reds: 2           | reds: 1", redLine)

	//one row per colour plus header and separators
	assert.Len(t, lines, len(settings.BallColours)+5)
}
