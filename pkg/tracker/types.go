package tracker

import (
	"math"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

//ErrInvalidGeometry marks a detected position carrying non-finite
//coordinates. It is a precondition violation, not a recoverable error.
var ErrInvalidGeometry = errors.New("invalid geometry: non-finite coordinate")

//BallPosition is one detected blob: a 2D centre plus its diameter proxy.
//Positions are ephemeral, recreated on every detection pass.
type BallPosition struct {
	X    float64
	Y    float64
	Size float64
}

//Validate fails fast on non-finite coordinates so NaN never leaks into the
//distance comparisons downstream.
func (b BallPosition) Validate() error {
	for _, v := range []float64{b.X, b.Y, b.Size} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidGeometry, "position (%v, %v) size %v", b.X, b.Y, b.Size)
		}
	}
	return nil
}

//ColourBallSet maps a colour name to the balls currently tracked for it.
//Iteration must always follow a detection order slice, never the map itself.
type ColourBallSet map[string][]BallPosition

//NewColourBallSet allocates an empty list per colour in order.
func NewColourBallSet(order []string) ColourBallSet {
	set := make(ColourBallSet, len(order))
	for _, colour := range order {
		set[colour] = []BallPosition{}
	}
	return set
}

//TotalBalls returns the number of balls across all colours.
func (s ColourBallSet) TotalBalls() int {
	total := 0
	for _, balls := range s {
		total += len(balls)
	}
	return total
}

func positionFromKeyPoint(kp gocv.KeyPoint) BallPosition {
	return BallPosition{X: kp.X, Y: kp.Y, Size: kp.Size}
}

//Image bundles the three same-dimension views of a single video frame:
//the colour frame drawn on for display, the binary blob silhouette and the
//HSV conversion used for colour classification.
type Image struct {
	Output gocv.Mat
	Binary gocv.Mat
	HSV    gocv.Mat
}
