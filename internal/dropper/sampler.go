package dropper

import (
	"math"

	"github.com/ironsheep/color-dropper/internal/imaging"
)

// Sample is one pixel read from the display surface.
type Sample struct {
	X     int               `json:"x"`
	Y     int               `json:"y"`
	Color imaging.RGBAColor `json:"color"`
	Hex   string            `json:"hex"`
}

// Sampler maps pointer events to surface pixels.
type Sampler struct {
	surface *DisplaySurface
}

// NewSampler returns a sampler reading from surface.
func NewSampler(surface *DisplaySurface) *Sampler {
	return &Sampler{surface: surface}
}

// Local converts client coordinates to surface pixel coordinates using the
// cached bounding box. Fractions are floored so a pointer just left of the
// surface maps to -1, not 0.
func (s *Sampler) Local(ev PointerEvent) (x, y int) {
	bbox := s.surface.BoundingBox()
	return int(math.Floor(ev.ClientX - bbox.Left)), int(math.Floor(ev.ClientY - bbox.Top))
}

// Sample reads the pixel under the pointer. Outside the surface the returned
// sample is transparent black ("#000000") and the error is ErrSampleOutOfRange;
// the sample is still meant to be used.
func (s *Sampler) Sample(ev PointerEvent) (Sample, error) {
	x, y := s.Local(ev)
	c, ok := imaging.PixelAt(s.surface.Image(), x, y)
	sample := Sample{X: x, Y: y, Color: c, Hex: c.Hex()}
	if !ok {
		return sample, ErrSampleOutOfRange
	}
	return sample, nil
}
