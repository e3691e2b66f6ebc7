package ui

import (
	"github.com/ironsheep/color-dropper/internal/dropper"
)

// Host turns per-frame input into widget calls. It is driven from the window's
// Update and owns the widget.
type Host struct {
	Widget *dropper.Widget
	Views  *Views
	Layout Layout

	viewportW int
	lastX     int
	lastY     int
	seen      bool
}

// NewHost builds the widget with the host's views and a centered placer.
func NewHost(cfg dropper.Config, views *Views, layout Layout) (*Host, error) {
	h := &Host{Views: views, Layout: layout}
	w, err := dropper.New(cfg, dropper.Views{Magnifier: views, Selection: views},
		layout.Placer(func() int { return h.viewportW }))
	if err != nil {
		return nil, err
	}
	h.Widget = w
	return h, nil
}

// HandleInput applies one frame of input and renders the widget tick.
// It reports whether the user asked to quit.
func (h *Host) HandleInput(in InputState) bool {
	if in.Quit {
		return true
	}

	if in.ViewportW != h.viewportW {
		h.viewportW = in.ViewportW
		h.Widget.Resize(in.ViewportW)
	}

	bbox := h.Widget.Surface().BoundingBox()
	mx, my := float64(in.MouseX), float64(in.MouseY)
	overSurface := bbox.Contains(mx, my)

	// Mouse moves are only reported while over the surface.
	moved := !h.seen || in.MouseX != h.lastX || in.MouseY != h.lastY
	h.lastX, h.lastY, h.seen = in.MouseX, in.MouseY, true
	if moved && overSurface {
		h.Widget.PointerMove(dropper.PointerEvent{ClientX: mx, ClientY: my, PageX: mx, PageY: my})
	}

	if in.Toggle || (in.LeftClick && h.Layout.Button.Contains(mx, my)) {
		h.Widget.Toggle()
	}

	h.Widget.Tick()

	if in.LeftClick && overSurface {
		h.Widget.Commit()
	}
	return false
}

// OverSurface reports whether (x, y) is on the display surface.
func (h *Host) OverSurface(x, y int) bool {
	return h.Widget.Surface().BoundingBox().Contains(float64(x), float64(y))
}
