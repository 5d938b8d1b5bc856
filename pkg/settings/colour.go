package settings

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/viper"
)

//Names of the snooker ball colours the tracker knows about.
const (
	White  = "WHITE"
	Red    = "RED"
	Yellow = "YELLOW"
	Green  = "GREEN"
	Brown  = "BROWN"
	Blue   = "BLUE"
	Pink   = "PINK"
	Black  = "BLACK"
)

//BallColours lists every colour in its default detection priority order.
var BallColours = []string{White, Red, Yellow, Green, Brown, Blue, Pink, Black}

//ColourSetting holds the HSV detection range and policy for one ball colour.
//Lower and Upper are H (0-180), S and V (0-255) bounds.
type ColourSetting struct {
	Lower  [3]float64 `json:"lower"`
	Upper  [3]float64 `json:"upper"`
	Detect bool       `json:"detect"`
	Order  int        `json:"order"`
}

//DefaultColours returns the HSV ranges for every ball colour under typical
//overhead tournament lighting.
func DefaultColours() map[string]ColourSetting {
	return map[string]ColourSetting{
		White:  {Lower: [3]float64{0, 0, 180}, Upper: [3]float64{180, 60, 255}, Detect: true, Order: 0},
		Red:    {Lower: [3]float64{170, 100, 80}, Upper: [3]float64{180, 255, 255}, Detect: true, Order: 1},
		Yellow: {Lower: [3]float64{20, 100, 100}, Upper: [3]float64{35, 255, 255}, Detect: true, Order: 2},
		Green:  {Lower: [3]float64{50, 100, 50}, Upper: [3]float64{85, 255, 255}, Detect: true, Order: 3},
		Brown:  {Lower: [3]float64{5, 100, 50}, Upper: [3]float64{15, 255, 200}, Detect: true, Order: 4},
		Blue:   {Lower: [3]float64{95, 100, 80}, Upper: [3]float64{125, 255, 255}, Detect: true, Order: 5},
		Pink:   {Lower: [3]float64{160, 40, 150}, Upper: [3]float64{170, 160, 255}, Detect: true, Order: 6},
		Black:  {Lower: [3]float64{0, 0, 0}, Upper: [3]float64{180, 255, 50}, Detect: true, Order: 7},
	}
}

//ColourDetection stores the per colour HSV bounds, detection flags and
//priority order. Accessors hand out copies; updates notify subscribers.
type ColourDetection struct {
	mu      sync.RWMutex
	colours map[string]ColourSetting
	subs    []func()
}

//NewColourDetection creates a store holding the given colour table.
func NewColourDetection(colours map[string]ColourSetting) *ColourDetection {
	table := make(map[string]ColourSetting, len(colours))
	for name, setting := range colours {
		table[name] = setting
	}
	return &ColourDetection{colours: table}
}

//LoadColourDetection builds a store from the defaults, overridden by any
//'colours.<name>.*' keys present in the loaded config file.
func LoadColourDetection() *ColourDetection {
	colours := DefaultColours()
	for _, name := range BallColours {
		key := "colours." + name
		setting := colours[name]
		if viper.IsSet(key + ".lower") {
			lower := viper.GetIntSlice(key + ".lower")
			for i := 0; i < len(lower) && i < 3; i++ {
				setting.Lower[i] = float64(lower[i])
			}
		}
		if viper.IsSet(key + ".upper") {
			upper := viper.GetIntSlice(key + ".upper")
			for i := 0; i < len(upper) && i < 3; i++ {
				setting.Upper[i] = float64(upper[i])
			}
		}
		if viper.IsSet(key + ".detect") {
			setting.Detect = viper.GetBool(key + ".detect")
		}
		if viper.IsSet(key + ".order") {
			setting.Order = viper.GetInt(key + ".order")
		}
		colours[name] = setting
	}
	return NewColourDetection(colours)
}

//Colour returns the setting for one colour by value.
func (c *ColourDetection) Colour(name string) (ColourSetting, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	setting, ok := c.colours[name]
	return setting, ok
}

//Colours returns a copy of the whole colour table.
func (c *ColourDetection) Colours() map[string]ColourSetting {
	c.mu.RLock()
	defer c.mu.RUnlock()
	table := make(map[string]ColourSetting, len(c.colours))
	for name, setting := range c.colours {
		table[name] = setting
	}
	return table
}

//SetColour replaces the setting for one colour and notifies all subscribers.
//Unknown colour names are rejected.
func (c *ColourDetection) SetColour(name string, setting ColourSetting) error {
	c.mu.Lock()
	if _, ok := c.colours[name]; !ok {
		c.mu.Unlock()
		return fmt.Errorf("SetColour: unknown colour '%s'", name)
	}
	c.colours[name] = setting
	subs := make([]func(), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return nil
}

//Subscribe registers fn to be called after every colour update.
func (c *ColourDetection) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

//DetectionOrder returns every colour name sorted by its configured priority.
//The tracker scans colours in exactly this order when assigning blobs.
func (c *ColourDetection) DetectionOrder() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	order := make([]string, 0, len(c.colours))
	for name := range c.colours {
		order = append(order, name)
	}
	sort.Slice(order, func(i, j int) bool {
		return c.colours[order[i]].Order < c.colours[order[j]].Order
	})
	return order
}
