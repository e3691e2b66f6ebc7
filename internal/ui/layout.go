package ui

import "github.com/ironsheep/color-dropper/internal/dropper"

// Layout positions the host chrome around the display surface.
type Layout struct {
	// SurfaceTop is the gap above the display surface.
	SurfaceTop float64
	// Button is the toggle control.
	Button dropper.Rect
	// Swatch shows the committed color; its text goes to the right of it.
	Swatch dropper.Rect
}

// DefaultLayout puts the toggle button and the selection swatch in a toolbar
// above the surface.
func DefaultLayout() Layout {
	return Layout{
		SurfaceTop: 56,
		Button:     dropper.Rect{Left: 16, Top: 12, Width: 176, Height: 28},
		Swatch:     dropper.Rect{Left: 208, Top: 12, Width: 28, Height: 28},
	}
}

// Placer centers a surface horizontally in a viewport of the width returned by
// viewportW, below the toolbar.
func (l Layout) Placer(viewportW func() int) dropper.Placer {
	return dropper.PlacerFunc(func(width, height int) dropper.Rect {
		left := float64(viewportW()-width) / 2
		if left < 0 {
			left = 0
		}
		return dropper.Rect{Left: left, Top: l.SurfaceTop, Width: float64(width), Height: float64(height)}
	})
}

// ButtonLabel is the toggle control caption for a mode.
func ButtonLabel(m dropper.Mode) string {
	if m == dropper.ModePicker {
		return "Picker: ON  (P)"
	}
	return "Picker: OFF (P)"
}
