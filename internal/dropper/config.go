package dropper

import "fmt"

// Config holds the widget geometry. DefaultConfig matches the classic dropper:
// an 80% wide 16:9 surface, a 100x100 magnifier at 5x, trailing the pointer by 24px.
type Config struct {
	// WidthRatio is the fraction of the viewport width given to the display surface.
	WidthRatio float64
	// AspectRatio is width / height of the display surface.
	AspectRatio float64

	// MagnifierSize is the side of the square magnifier buffer in pixels.
	MagnifierSize int
	// Factor is the magnification: each source pixel becomes a Factor x Factor block.
	Factor int
	// Offset is how far the magnifier trails the pointer on both axes.
	Offset float64

	// RingWidth and RingOuterWidth size the double border: the inner ring covers
	// [0, RingWidth) beyond the magnifier edge, the outer ring [RingWidth, RingOuterWidth).
	RingWidth      float64
	RingOuterWidth float64

	// ClampUpper also keeps the source window inside the far (right/bottom) edge
	// of the surface. Off by default: only the near edges are clamped.
	ClampUpper bool
}

// DefaultConfig returns the standard widget geometry.
func DefaultConfig() Config {
	return Config{
		WidthRatio:     0.8,
		AspectRatio:    16.0 / 9.0,
		MagnifierSize:  100,
		Factor:         5,
		Offset:         24,
		RingWidth:      8,
		RingOuterWidth: 10,
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.WidthRatio <= 0:
		return fmt.Errorf("width ratio must be positive, got %v", c.WidthRatio)
	case c.AspectRatio <= 0:
		return fmt.Errorf("aspect ratio must be positive, got %v", c.AspectRatio)
	case c.Factor <= 0:
		return fmt.Errorf("magnification factor must be positive, got %d", c.Factor)
	case c.MagnifierSize < c.Factor:
		return fmt.Errorf("magnifier size %d smaller than factor %d", c.MagnifierSize, c.Factor)
	case c.RingWidth < 0 || c.RingOuterWidth < c.RingWidth:
		return fmt.Errorf("invalid ring widths %v/%v", c.RingWidth, c.RingOuterWidth)
	}
	return nil
}

// SourceSize is the side of the source window shown in the magnifier.
func (c Config) SourceSize() int {
	return c.MagnifierSize / c.Factor
}
