package tracker

//continuityThreshold is the maximum normalized distance at which a freshly
//observed blob is deemed to be a ball we already know about.
const continuityThreshold = 0.3

//UpdateBalls repositions balls in known with the freshly observed blob
//positions from a lightweight detection pass, preserving each ball's
//colour identity and list slot. Matching is greedy first-match: colours
//are scanned in detection order and balls in list order, and the first
//pair within the threshold wins. Ties are resolved by iteration order on
//purpose, not by minimum distance. Observed blobs matching nothing are
//dropped; continuity never grows the ball set, only a full re-detection
//does. known is mutated in place and returned for convenience.
func UpdateBalls(known ColourBallSet, order []string, observed []BallPosition) ColourBallSet {
	for _, blob := range observed {
		matched := false
		for _, colour := range order {
			balls := known[colour]
			for i := range balls {
				if Distance(blob, balls[i]) <= continuityThreshold {
					balls[i] = blob
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}
	return known
}
