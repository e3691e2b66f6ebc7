package dropper

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/ironsheep/color-dropper/internal/imaging"
)

// Mode gates whether a click commits the hovered color.
type Mode int

const (
	ModeIdle Mode = iota
	ModePicker
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePicker:
		return "picker"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalJSON encodes the mode by name.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Toggled returns the other mode. Toggled is its own inverse.
func (m Mode) Toggled() Mode {
	if m == ModePicker {
		return ModeIdle
	}
	return ModePicker
}

var (
	// IdleGray is the inner ring color when idle or when nothing is hovered yet.
	IdleGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	// RingWhite is the outer ring color.
	RingWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Ring is the concentric double border around the magnifier.
type Ring struct {
	Inner color.RGBA
	Outer color.RGBA
}

// InnerHex is the inner ring color as "#rrggbb".
func (r Ring) InnerHex() string {
	return imaging.ToHex(r.Inner.R, r.Inner.G, r.Inner.B)
}

// MarshalJSON encodes both ring colors as hex.
func (r Ring) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"inner": r.InnerHex(),
		"outer": imaging.ToHex(r.Outer.R, r.Outer.G, r.Outer.B),
	})
}

// Border computes the magnifier border from the mode and the hovered color
// ("" when nothing has been sampled yet). Idle is always gray; picker shows the
// hovered color, falling back to gray.
func Border(mode Mode, hovered string) Ring {
	ring := Ring{Inner: IdleGray, Outer: RingWhite}
	if mode != ModePicker || hovered == "" {
		return ring
	}
	if c, err := imaging.ParseColor(hovered); err == nil {
		ring.Inner = c
	}
	return ring
}

// state is the widget's mutable record, owned by one goroutine.
type state struct {
	mode     Mode
	hovered  string
	selected string
}
