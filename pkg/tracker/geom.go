package tracker

import (
	"image"
	"math"

	"gocv.io/x/gocv"
)

//Distance returns the euclidean distance between the centres of a and b,
//normalized by the average of their sizes. Dividing by the ball diameter
//makes every movement threshold scale invariant.
func Distance(a, b BallPosition) float64 {
	dist := math.Sqrt(math.Pow(a.X-b.X, 2) + math.Pow(a.Y-b.Y, 2))
	return dist / ((a.Size + b.Size) / 2)
}

//Region is a single closed contour extracted from a colour mask.
type Region []image.Point

//ContainsPoint reports whether p lies strictly inside the region.
//Boundary points are not inside.
func (r Region) ContainsPoint(p image.Point) bool {
	if len(r) == 0 {
		return false
	}
	pv := gocv.NewPointVectorFromPoints(r)
	defer pv.Close()
	return gocv.PointPolygonTest(pv, p, false) > 0
}

//Area returns the area enclosed by the region.
func (r Region) Area() float64 {
	if len(r) == 0 {
		return 0
	}
	pv := gocv.NewPointVectorFromPoints(r)
	defer pv.Close()
	return gocv.ContourArea(pv)
}

//biggestRegion returns the region with the largest enclosed area.
func biggestRegion(regions []Region) Region {
	var biggest Region
	maxArea := -1.0
	for _, region := range regions {
		if area := region.Area(); area > maxArea {
			maxArea = area
			biggest = region
		}
	}
	return biggest
}
