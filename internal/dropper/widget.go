package dropper

import (
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/color-dropper/internal/imaging"
)

// Widget is the magnifying color picker: display surface, sampler, magnifier
// and the idle/picker controller around one owned state record.
type Widget struct {
	cfg   Config
	views Views

	surface   *DisplaySurface
	sampler   *Sampler
	magnifier *Magnifier
	moves     Coalescer[PointerEvent]

	st          state
	border      Ring
	lastSample  Sample
	sampled     bool
	outOfRange  bool
	sampleCount uint64
}

// New builds a widget. Missing view handles, a nil placer or an invalid config
// are reported as *InitError and no widget is returned.
func New(cfg Config, views Views, placer Placer) (*Widget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{What: "invalid config", Err: err}
	}
	if views.Magnifier == nil {
		return nil, &InitError{What: "magnifier view is nil"}
	}
	if views.Selection == nil {
		return nil, &InitError{What: "selection view is nil"}
	}

	surface, err := NewDisplaySurface(cfg, placer)
	if err != nil {
		return nil, err
	}

	w := &Widget{
		cfg:       cfg,
		views:     views,
		surface:   surface,
		sampler:   NewSampler(surface),
		magnifier: NewMagnifier(cfg),
	}
	w.refreshBorder()
	return w, nil
}

// Config returns the widget geometry.
func (w *Widget) Config() Config { return w.cfg }

// Resize sizes the display surface for a viewport width, recomputes its
// bounding box and redraws the source image.
func (w *Widget) Resize(viewportWidth int) {
	w.surface.Resize(viewportWidth)
	w.surface.Redraw()
}

// SetSource installs the loaded image and draws it.
func (w *Widget) SetSource(img image.Image) {
	w.surface.SetSource(img)
}

// PointerMove records a pointer move. Nothing is sampled or drawn until the
// next Tick, and only the latest move before that Tick is applied.
func (w *Widget) PointerMove(ev PointerEvent) {
	w.moves.Offer(ev)
}

// Tick applies the most recent pending pointer move, if any: sample the pixel,
// update the hovered color and label, restyle the border, render the magnifier
// and move it after the pointer. It reports whether any work was done.
func (w *Widget) Tick() bool {
	ev, ok := w.moves.Take()
	if !ok {
		return false
	}

	sample, err := w.sampler.Sample(ev)
	w.outOfRange = errors.Is(err, ErrSampleOutOfRange)
	w.lastSample = sample
	w.sampled = true
	w.sampleCount++

	w.st.hovered = sample.Hex
	w.views.Magnifier.SetLabel(sample.Hex)
	w.refreshBorder()

	w.magnifier.Render(w.surface.Image(), sample.X, sample.Y)
	w.views.Magnifier.MoveTo(w.magnifier.Follow(ev))
	return true
}

// Toggle flips between idle and picker mode and returns the new mode.
func (w *Widget) Toggle() Mode {
	w.st.mode = w.st.mode.Toggled()
	w.refreshBorder()
	return w.st.mode
}

// Commit writes the hovered color to the selection view. It does nothing
// unless the widget is in picker mode and a color has been hovered; the return
// value reports whether a color was committed.
func (w *Widget) Commit() bool {
	committed := false
	if w.st.mode == ModePicker && w.st.hovered != "" {
		w.st.selected = w.st.hovered
		w.views.Selection.SetSelected(w.st.selected)
		committed = true
	}
	w.refreshBorder()
	return committed
}

func (w *Widget) refreshBorder() {
	w.border = Border(w.st.mode, w.st.hovered)
	w.views.Magnifier.SetBorder(w.border)
}

// Mode returns the current mode.
func (w *Widget) Mode() Mode { return w.st.mode }

// Hovered returns the hovered hex, "" before the first sample.
func (w *Widget) Hovered() string { return w.st.hovered }

// Selected returns the last committed hex, "" if nothing was committed.
func (w *Widget) Selected() string { return w.st.selected }

// Border returns the current magnifier border.
func (w *Widget) Border() Ring { return w.border }

// LastSample returns the most recent sample and whether there has been one.
func (w *Widget) LastSample() (Sample, bool) { return w.lastSample, w.sampled }

// Surface exposes the display surface.
func (w *Widget) Surface() *DisplaySurface { return w.surface }

// Magnifier exposes the magnifier renderer.
func (w *Widget) Magnifier() *Magnifier { return w.magnifier }

// Glass composites the magnifier with its border and the hovered label.
func (w *Widget) Glass() *image.RGBA {
	return imaging.Glass(w.magnifier.Image(), imaging.GlassStyle{
		Inner:      w.border.Inner,
		Outer:      w.border.Outer,
		InnerWidth: w.cfg.RingWidth,
		OuterWidth: w.cfg.RingOuterWidth,
		Label:      w.st.hovered,
	})
}

// GlassOffset is how far the Glass image extends beyond the magnifier on each
// side; draw the glass at Position minus this offset.
func (w *Widget) GlassOffset() float64 {
	return float64(int(w.cfg.RingOuterWidth + 0.999))
}

// Snapshot is a serialisable view of the widget state.
type Snapshot struct {
	Mode         Mode    `json:"mode"`
	Hovered      string  `json:"hovered_color,omitempty"`
	Selected     string  `json:"selected_color,omitempty"`
	Border       Ring    `json:"border"`
	Position     Point   `json:"magnifier_position"`
	SurfaceW     int     `json:"surface_width"`
	SurfaceH     int     `json:"surface_height"`
	BoundingBox  Rect    `json:"bounding_box"`
	Sample       *Sample `json:"sample,omitempty"`
	OutOfRange   bool    `json:"out_of_range,omitempty"`
	SourceWindow string  `json:"source_window,omitempty"`
	DroppedMoves uint64  `json:"dropped_moves"`
	Samples      uint64  `json:"samples"`
}

// State returns a snapshot of the widget.
func (w *Widget) State() Snapshot {
	sw, sh := w.surface.Size()
	snap := Snapshot{
		Mode:         w.st.mode,
		Hovered:      w.st.hovered,
		Selected:     w.st.selected,
		Border:       w.border,
		Position:     w.magnifier.Position(),
		SurfaceW:     sw,
		SurfaceH:     sh,
		BoundingBox:  w.surface.BoundingBox(),
		OutOfRange:   w.outOfRange,
		DroppedMoves: w.moves.Dropped(),
		Samples:      w.sampleCount,
	}
	if w.sampled {
		s := w.lastSample
		snap.Sample = &s
		win := w.magnifier.Window()
		snap.SourceWindow = fmt.Sprintf("%d,%d-%d,%d", win.Min.X, win.Min.Y, win.Max.X, win.Max.Y)
	}
	return snap
}
