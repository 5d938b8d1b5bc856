package tracker

import "image"

//AssignColours maps each detected blob to at most one ball colour. Blobs
//are taken in detection order; for each blob the colours are scanned in
//ascending priority order and the first colour whose region strictly
//contains the blob's centre claims it. Blobs inside no region are
//discarded. Colours without regions (detection disabled, or nothing of
//that colour on the table) end up with empty lists.
//
//When biggestContour is set and a colour produced several regions, only
//the largest-area region of that colour is tested.
func AssignColours(blobs []BallPosition, order []string, regions map[string][]Region, biggestContour bool) ColourBallSet {
	balls := NewColourBallSet(order)
	for _, blob := range blobs {
		for _, colour := range order {
			if blobInColour(blob, regions[colour], biggestContour) {
				balls[colour] = append(balls[colour], blob)
				break
			}
		}
	}
	return balls
}

func blobInColour(blob BallPosition, regions []Region, biggestContour bool) bool {
	centre := image.Pt(int(blob.X), int(blob.Y))
	if len(regions) > 1 && biggestContour {
		return biggestRegion(regions).ContainsPoint(centre)
	}
	for _, region := range regions {
		if region.ContainsPoint(centre) {
			return true
		}
	}
	return false
}
