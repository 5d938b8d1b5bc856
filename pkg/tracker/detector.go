package tracker

import (
	"sync"

	"github.com/chenBenjamin97/snooker-tracker/pkg/settings"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

//Detector wraps the gocv simple blob detector that finds ball candidates
//in the binary frame. It is rebuilt whenever the ball detection settings
//change.
type Detector struct {
	mu   sync.Mutex
	blob gocv.SimpleBlobDetector
}

//NewDetector builds a blob detector from the given parameters.
func NewDetector(params settings.BallParams) *Detector {
	return &Detector{blob: newBlobDetector(params)}
}

func newBlobDetector(params settings.BallParams) gocv.SimpleBlobDetector {
	blobParams := gocv.NewSimpleBlobDetectorParams()
	blobParams.SetFilterByConvexity(params.FilterByConvexity)
	blobParams.SetMinConvexity(params.MinConvexity)
	blobParams.SetMaxConvexity(params.MaxConvexity)
	blobParams.SetFilterByCircularity(params.FilterByCircularity)
	blobParams.SetMinCircularity(params.MinCircularity)
	blobParams.SetMaxCircularity(params.MaxCircularity)
	blobParams.SetFilterByInertia(params.FilterByInertia)
	blobParams.SetMinInertiaRatio(params.MinInertia)
	blobParams.SetMaxInertiaRatio(params.MaxInertia)
	blobParams.SetFilterByArea(params.FilterByArea)
	blobParams.SetMinArea(params.MinArea)
	blobParams.SetMaxArea(params.MaxArea)
	blobParams.SetFilterByColor(params.FilterByColour)
	blobParams.SetBlobColor(params.BlobColour)
	blobParams.SetMinDistBetweenBlobs(params.MinDistBetweenBlobs)
	return gocv.NewSimpleBlobDetectorWithParams(blobParams)
}

//Reconfigure replaces the underlying blob detector with one built from the
//new parameters.
func (d *Detector) Reconfigure(params settings.BallParams) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blob.Close()
	d.blob = newBlobDetector(params)
}

//Detect finds ball candidates in the binary frame. Every returned position
//is validated so non-finite coordinates fail fast instead of propagating
//into distance comparisons.
func (d *Detector) Detect(binary gocv.Mat) ([]BallPosition, error) {
	d.mu.Lock()
	keypoints := d.blob.Detect(binary)
	d.mu.Unlock()

	positions := make([]BallPosition, 0, len(keypoints))
	for _, kp := range keypoints {
		position := positionFromKeyPoint(kp)
		if err := position.Validate(); err != nil {
			return nil, errors.Wrap(err, "Detect: malformed keypoint")
		}
		positions = append(positions, position)
	}
	return positions, nil
}

//Close releases the underlying detector.
func (d *Detector) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blob.Close()
}

//DetectColour builds the mask isolating one colour's HSV range in the
//frame, plus the external contours of every masked area. The caller owns
//the returned mask and must close it.
func DetectColour(hsvFrame gocv.Mat, setting settings.ColourSetting) (gocv.Mat, []Region) {
	lower := gocv.NewScalar(setting.Lower[0], setting.Lower[1], setting.Lower[2], 0)
	upper := gocv.NewScalar(setting.Upper[0], setting.Upper[1], setting.Upper[2], 0)

	colourMask := gocv.NewMat()
	gocv.InRangeWithScalar(hsvFrame, lower, upper, &colourMask)

	contours := gocv.FindContours(colourMask, gocv.RetrievalExternal, gocv.ChainApproxNone)
	defer contours.Close()

	points := contours.ToPoints()
	regions := make([]Region, len(points))
	for i, contour := range points {
		regions[i] = Region(contour)
	}
	return colourMask, regions
}
