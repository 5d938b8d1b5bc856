package tracker

import (
	"github.com/chenBenjamin97/snooker-tracker/pkg/settings"
	"gocv.io/x/gocv"
)

const (
	//samplingInterval is the number of frames between full colour
	//re-detection passes and shot state evaluations.
	samplingInterval = 5
	//movedThreshold is the normalized distance above which the white ball
	//counts as moving between two sampled snapshots.
	movedThreshold = 0.1
)

//ProcessOptions controls what ProcessFrame renders for display.
type ProcessOptions struct {
	//ShowThreshold swaps the display frame for the binary silhouette.
	ShowThreshold bool
	//DetectColour overlays the named colour's contours on the display frame.
	DetectColour string
	//MaskColour blanks everything outside DetectColour's mask.
	MaskColour bool
}

//BallTracker detects snooker balls frame by frame, assigns each one a
//colour identity and infers shot lifecycle events from successive table
//snapshots.
//
//Three snapshots are kept live: the last shot snapshot holds the table
//state at the end of the previous shot, the current shot snapshot holds
//the state in play before the pending shot resolves, and the temporary
//snapshot is rebuilt on every sampling tick purely for comparison. A shot
//starts when the white ball moves between the temporary and current
//snapshots and finishes when it stops again or disappears; pots are the
//non-white count decreases between the last shot snapshot and the table
//now.
//
//BallTracker is single threaded: each ProcessFrame call completes before
//the next frame is accepted.
type BallTracker struct {
	sink           EventSink
	colourSettings *settings.ColourDetection
	ballSettings   *settings.BallDetection
	detector       *Detector
	biggestContour bool

	balls          ColourBallSet
	lastShot       *Snapshot
	curShot        *Snapshot
	temp           *Snapshot
	frameCounter   int
	shotInProgress bool
}

//New creates a BallTracker wired to the given sink and settings stores.
//The tracker subscribes to ball detection changes and rebuilds its blob
//detector when notified.
func New(sink EventSink, colourSettings *settings.ColourDetection, ballSettings *settings.BallDetection) *BallTracker {
	order := colourSettings.DetectionOrder()
	t := &BallTracker{
		sink:           sink,
		colourSettings: colourSettings,
		ballSettings:   ballSettings,
		detector:       NewDetector(ballSettings.Params()),
		balls:          NewColourBallSet(order),
		lastShot:       NewSnapshot(order),
		curShot:        NewSnapshot(order),
		temp:           NewSnapshot(order),
	}
	ballSettings.Subscribe(func() {
		t.detector.Reconfigure(ballSettings.Params())
	})
	return t
}

//UseBiggestContour sets the assignment policy of testing blobs only
//against the largest region of a colour when several regions exist.
func (t *BallTracker) UseBiggestContour(enabled bool) {
	t.biggestContour = enabled
}

//Close releases the tracker's detector.
func (t *BallTracker) Close() {
	t.detector.Close()
}

//ProcessFrame runs one frame through the tracker. On every sampling tick
//(the first frame and every fifth after it) the working ball set is
//replaced by a full colour re-detection and the shot state machine is
//evaluated; on other frames known balls are merely repositioned. Tracked
//balls are drawn onto the display frame.
//
//It returns the frame to display, the colour potted during this tick (""
//when none) and how many balls of that colour were potted.
func (t *BallTracker) ProcessFrame(img Image, opts ProcessOptions) (gocv.Mat, string, int, error) {
	sampling := t.frameCounter == 0 || t.frameCounter%samplingInterval == 0

	if sampling {
		balls, err := t.performColourDetection(img.Binary, img.HSV)
		if err != nil {
			return img.Output, "", 0, err
		}
		t.balls = balls
	} else {
		observed, err := t.detector.Detect(img.Binary)
		if err != nil {
			return img.Output, "", 0, err
		}
		UpdateBalls(t.balls, t.colourSettings.DetectionOrder(), observed)
	}

	//The very first frame seeds both shot snapshots with the opening table.
	if t.frameCounter == 0 {
		t.curShot.AssignFromSet(t.balls)
		t.lastShot.AssignFromSet(t.balls)
	}

	display := img.Output
	if opts.ShowThreshold {
		display = img.Binary
	}

	order := t.colourSettings.DetectionOrder()

	if opts.DetectColour != "" {
		if setting, ok := t.colourSettings.Colour(opts.DetectColour); ok {
			colourMask, regions := DetectColour(img.HSV, setting)
			if opts.MaskColour {
				masked := gocv.NewMat()
				gocv.BitwiseAndWithMask(display, display, &masked, colourMask)
				masked.CopyTo(&display)
				masked.Close()
			}
			drawRegions(&display, regions)
			colourMask.Close()
		}
	}

	if opts.DetectColour != "" && opts.MaskColour {
		DrawBalls(&display, ColourBallSet{opts.DetectColour: t.balls[opts.DetectColour]}, []string{opts.DetectColour})
	} else {
		DrawBalls(&display, t.balls, order)
	}

	potted := ""
	potCount := 0
	if sampling {
		potted, potCount = t.evaluateShot()
	}

	t.frameCounter++
	return display, potted, potCount, nil
}

//performColourDetection detects blobs in the binary frame and assigns each
//one a colour by testing it against the contours of every enabled colour's
//HSV mask.
func (t *BallTracker) performColourDetection(binaryFrame, hsvFrame gocv.Mat) (ColourBallSet, error) {
	blobs, err := t.detector.Detect(binaryFrame)
	if err != nil {
		return nil, err
	}

	colours := t.colourSettings.Colours()
	order := t.colourSettings.DetectionOrder()

	regions := make(map[string][]Region, len(order))
	for _, colour := range order {
		if !colours[colour].Detect {
			continue
		}
		mask, colourRegions := DetectColour(hsvFrame, colours[colour])
		mask.Close()
		regions[colour] = colourRegions
	}

	return AssignColours(blobs, order, regions, t.biggestContour), nil
}

//evaluateShot rebuilds the temporary snapshot from the working ball set
//and advances the shot state machine. Returns the pot resolved on this
//tick, if any.
func (t *BallTracker) evaluateShot() (string, int) {
	potted := ""
	potCount := 0

	t.temp.AssignFromSet(t.balls)

	if !t.shotInProgress {
		t.shotInProgress = t.hasShotStarted(t.temp, t.curShot)
	}

	if t.shotInProgress {
		if t.hasShotFinished(t.temp, t.curShot) {
			//Only the last colour with a positive diff survives as the
			//reported pot, so simultaneous multi-colour pots in one tick
			//surface a single event.
			for _, colour := range t.lastShot.Colours() {
				count := t.lastShot.CompareBallDiff(colour, t.temp)
				if colour != settings.White && count > 0 {
					potted = colour
					potCount = count
				}
			}
			if potted != "" {
				t.sink.BallPotted(potted, potCount)
			}
			t.sink.SnapshotReport(SnapshotReport(t.lastShot, t.curShot))
			t.lastShot.AssignFrom(t.curShot)
			t.shotInProgress = false
		}

		if t.curShot.White() != nil && t.temp.White() != nil {
			t.curShot.White().IsMoving = t.temp.White().IsMoving
		}
	}

	t.curShot.AssignFrom(t.temp)
	return potted, potCount
}

//hasShotStarted reports whether the white ball moved between the two
//snapshots. A missing or occluded white neither starts nor finishes a
//shot, so the state machine freezes until it reappears.
func (t *BallTracker) hasShotStarted(first, second *Snapshot) bool {
	if first.Count(settings.White) == 0 {
		return false
	}
	if first.Count(settings.White) != second.Count(settings.White) {
		return false
	}
	firstWhite, secondWhite := first.White(), second.White()
	if firstWhite == nil || secondWhite == nil {
		return false
	}
	if !hasBallMoved(firstWhite.Position, secondWhite.Position) {
		return false
	}
	firstWhite.IsMoving = true
	t.sink.WhiteStatus(true)
	return true
}

//hasShotFinished reports whether the white ball came to rest between the
//two snapshots. A white reference missing from either snapshot (potted or
//lost mid shot) also finishes the shot.
func (t *BallTracker) hasShotFinished(first, second *Snapshot) bool {
	if first.Count(settings.White) == 0 {
		return false
	}
	if first.Count(settings.White) != second.Count(settings.White) {
		return false
	}
	firstWhite, secondWhite := first.White(), second.White()
	if firstWhite == nil || secondWhite == nil {
		return true
	}
	if hasBallStopped(firstWhite.Position, secondWhite.Position) {
		firstWhite.IsMoving = false
		t.sink.WhiteStatus(false)
		return true
	}
	return false
}

func hasBallMoved(first, second BallPosition) bool {
	return Distance(first, second) > movedThreshold
}

func hasBallStopped(first, second BallPosition) bool {
	return Distance(first, second) <= movedThreshold
}
