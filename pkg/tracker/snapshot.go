package tracker

import (
	"fmt"
	"strings"

	"github.com/chenBenjamin97/snooker-tracker/pkg/settings"
)

//WhiteBall is the designated cue ball reference of a snapshot, together
//with its moving/stationary flag.
type WhiteBall struct {
	Position BallPosition
	IsMoving bool
}

//Snapshot is a point-in-time record of the table: the balls tracked per
//colour and the white ball reference. Three instances are live at once in
//the tracker (last shot, current shot and the temporary working snapshot)
//and they never alias each other: all assignment operations deep copy.
type Snapshot struct {
	order []string
	balls ColourBallSet
	white *WhiteBall
}

//NewSnapshot creates an empty snapshot covering the given colours.
func NewSnapshot(order []string) *Snapshot {
	snapshotOrder := make([]string, len(order))
	copy(snapshotOrder, order)
	return &Snapshot{
		order: snapshotOrder,
		balls: NewColourBallSet(snapshotOrder),
	}
}

//Colours returns the colour enumeration order of this snapshot.
func (s *Snapshot) Colours() []string {
	order := make([]string, len(s.order))
	copy(order, s.order)
	return order
}

//Count returns how many balls of colour this snapshot holds. The count is
//always the length of the colour's ball list.
func (s *Snapshot) Count(colour string) int {
	return len(s.balls[colour])
}

//Balls returns a copy of the ball list for colour.
func (s *Snapshot) Balls(colour string) []BallPosition {
	balls := make([]BallPosition, len(s.balls[colour]))
	copy(balls, s.balls[colour])
	return balls
}

//White returns the snapshot's white ball reference, nil when no white ball
//was recorded.
func (s *Snapshot) White() *WhiteBall {
	return s.white
}

//SetWhite overrides the white ball reference. Used when the white blob was
//lost even though a count was recorded.
func (s *Snapshot) SetWhite(white *WhiteBall) {
	s.white = white
}

//SetBalls deep copies balls into the colour's list. Setting the white list
//refreshes the white ball reference.
func (s *Snapshot) SetBalls(colour string, balls []BallPosition) {
	copied := make([]BallPosition, len(balls))
	copy(copied, balls)
	s.balls[colour] = copied
	if colour == settings.White {
		s.refreshWhite()
	}
}

//AssignFromSet replaces the snapshot's contents with a deep copy of the
//working ball set.
func (s *Snapshot) AssignFromSet(set ColourBallSet) {
	for _, colour := range s.order {
		balls := make([]BallPosition, len(set[colour]))
		copy(balls, set[colour])
		s.balls[colour] = balls
	}
	s.refreshWhite()
}

//AssignFrom replaces the snapshot's contents with a deep copy of another
//snapshot, including the white ball reference and its moving flag.
func (s *Snapshot) AssignFrom(other *Snapshot) {
	for _, colour := range s.order {
		balls := make([]BallPosition, len(other.balls[colour]))
		copy(balls, other.balls[colour])
		s.balls[colour] = balls
	}
	if other.white != nil {
		white := *other.white
		s.white = &white
	} else {
		s.white = nil
	}
}

//CompareBallDiff returns the ball count change for colour from this
//snapshot to other. Positive means balls disappeared since this snapshot.
func (s *Snapshot) CompareBallDiff(colour string, other *Snapshot) int {
	return s.Count(colour) - other.Count(colour)
}

func (s *Snapshot) refreshWhite() {
	whites := s.balls[settings.White]
	if len(whites) == 0 {
		s.white = nil
		return
	}
	s.white = &WhiteBall{Position: whites[0]}
}

//SnapshotReport renders a two column table comparing the per colour ball
//counts of prev and cur.
func SnapshotReport(prev, cur *Snapshot) string {
	var report strings.Builder
	report.WriteString("--------------------------------------\n")
	report.WriteString("PREVIOUS SNAPSHOT | CURRENT SNAPSHOT \n")
	report.WriteString("------------------|-------------------\n")
	for _, colour := range prev.order {
		prevStatus := fmt.Sprintf("%ss: %d", strings.ToLower(colour), prev.Count(colour))
		for len(prevStatus) < 17 {
			prevStatus += " "
		}
		curStatus := fmt.Sprintf("%ss: %d", strings.ToLower(colour), cur.Count(colour))
		report.WriteString(prevStatus + " | " + curStatus + "\n")
	}
	report.WriteString("--------------------------------------\n")
	return report.String()
}
