package settings

import (
	"sync"

	"github.com/spf13/viper"
)

//BallParams are the numeric parameters of the underlying blob detector.
//They control which bright regions of the binary frame count as balls.
type BallParams struct {
	FilterByConvexity   bool    `json:"filter_by_convexity"`
	MinConvexity        float64 `json:"min_convexity"`
	MaxConvexity        float64 `json:"max_convexity"`
	FilterByCircularity bool    `json:"filter_by_circularity"`
	MinCircularity      float64 `json:"min_circularity"`
	MaxCircularity      float64 `json:"max_circularity"`
	FilterByInertia     bool    `json:"filter_by_inertia"`
	MinInertia          float64 `json:"min_inertia"`
	MaxInertia          float64 `json:"max_inertia"`
	FilterByArea        bool    `json:"filter_by_area"`
	MinArea             float64 `json:"min_area"`
	MaxArea             float64 `json:"max_area"`
	FilterByColour      bool    `json:"filter_by_colour"`
	BlobColour          int     `json:"blob_colour"`
	MinDistBetweenBlobs float64 `json:"min_dist_between_blobs"`
}

//DefaultBallParams returns the detector parameters tuned for snooker balls
//seen from an overhead table camera.
func DefaultBallParams() BallParams {
	return BallParams{
		FilterByConvexity:   true,
		MinConvexity:        0.5,
		MaxConvexity:        1.0,
		FilterByCircularity: true,
		MinCircularity:      0.3,
		MaxCircularity:      1.0,
		FilterByInertia:     true,
		MinInertia:          0.2,
		MaxInertia:          1.0,
		FilterByArea:        true,
		MinArea:             200,
		MaxArea:             2000,
		FilterByColour:      true,
		BlobColour:          255,
		MinDistBetweenBlobs: 10,
	}
}

//BallDetection stores the blob detector parameters and notifies subscribers
//whenever they change, so the tracker can rebuild its detector.
type BallDetection struct {
	mu     sync.RWMutex
	params BallParams
	subs   []func()
}

//NewBallDetection creates a store holding the given parameters.
func NewBallDetection(params BallParams) *BallDetection {
	return &BallDetection{params: params}
}

//LoadBallDetection builds a store from the defaults, overridden by any
//'detection.*' keys present in the loaded config file.
func LoadBallDetection() *BallDetection {
	params := DefaultBallParams()
	if viper.IsSet("detection.filter_by_convexity") {
		params.FilterByConvexity = viper.GetBool("detection.filter_by_convexity")
	}
	if viper.IsSet("detection.min_convexity") {
		params.MinConvexity = viper.GetFloat64("detection.min_convexity")
	}
	if viper.IsSet("detection.max_convexity") {
		params.MaxConvexity = viper.GetFloat64("detection.max_convexity")
	}
	if viper.IsSet("detection.filter_by_circularity") {
		params.FilterByCircularity = viper.GetBool("detection.filter_by_circularity")
	}
	if viper.IsSet("detection.min_circularity") {
		params.MinCircularity = viper.GetFloat64("detection.min_circularity")
	}
	if viper.IsSet("detection.max_circularity") {
		params.MaxCircularity = viper.GetFloat64("detection.max_circularity")
	}
	if viper.IsSet("detection.filter_by_inertia") {
		params.FilterByInertia = viper.GetBool("detection.filter_by_inertia")
	}
	if viper.IsSet("detection.min_inertia") {
		params.MinInertia = viper.GetFloat64("detection.min_inertia")
	}
	if viper.IsSet("detection.max_inertia") {
		params.MaxInertia = viper.GetFloat64("detection.max_inertia")
	}
	if viper.IsSet("detection.filter_by_area") {
		params.FilterByArea = viper.GetBool("detection.filter_by_area")
	}
	if viper.IsSet("detection.min_area") {
		params.MinArea = viper.GetFloat64("detection.min_area")
	}
	if viper.IsSet("detection.max_area") {
		params.MaxArea = viper.GetFloat64("detection.max_area")
	}
	if viper.IsSet("detection.filter_by_colour") {
		params.FilterByColour = viper.GetBool("detection.filter_by_colour")
	}
	if viper.IsSet("detection.blob_colour") {
		params.BlobColour = viper.GetInt("detection.blob_colour")
	}
	if viper.IsSet("detection.min_dist_between_blobs") {
		params.MinDistBetweenBlobs = viper.GetFloat64("detection.min_dist_between_blobs")
	}
	return NewBallDetection(params)
}

//Params returns a copy of the current detector parameters.
func (b *BallDetection) Params() BallParams {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.params
}

//Update replaces the detector parameters and notifies all subscribers.
func (b *BallDetection) Update(params BallParams) {
	b.mu.Lock()
	b.params = params
	subs := make([]func(), len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

//Subscribe registers fn to be called after every parameter update.
func (b *BallDetection) Subscribe(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}
