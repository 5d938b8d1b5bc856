package tracker

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var overlayColour = color.RGBA{0, 255, 0, 0}

//DrawBalls writes a colour label and a circle onto frame for every ball in
//the set, following the given colour order.
func DrawBalls(frame *gocv.Mat, balls ColourBallSet, order []string) {
	for _, colour := range order {
		for _, ball := range balls[colour] {
			gocv.PutText(frame, colour, image.Pt(int(ball.X+10), int(ball.Y)),
				gocv.FontHersheySimplex, 0.6, overlayColour, 2)
			gocv.Circle(frame, image.Pt(int(ball.X), int(ball.Y)), int(ball.Size/2), overlayColour, 1)
		}
	}
}

//drawRegions overlays the outline of every region onto frame.
func drawRegions(frame *gocv.Mat, regions []Region) {
	points := make([][]image.Point, len(regions))
	for i, region := range regions {
		points[i] = []image.Point(region)
	}
	contours := gocv.NewPointsVectorFromPoints(points)
	defer contours.Close()
	gocv.DrawContours(frame, contours, -1, overlayColour, 2)
}
