package dropper

import (
	"image"

	"github.com/ironsheep/color-dropper/internal/imaging"
)

// SourceWindow returns the block of surface pixels shown in the magnifier for a
// sample at (x, y) on a surface of the given size. The window is centered on the
// sample and each axis is clamped to >= 0. The far edge is only clamped when
// cfg.ClampUpper is set, so near the right/bottom edge the window may extend past
// the surface.
func SourceWindow(cfg Config, x, y, surfaceW, surfaceH int) image.Rectangle {
	n := cfg.SourceSize()
	x0 := x - n/2
	y0 := y - n/2
	if cfg.ClampUpper {
		x0 = min(x0, surfaceW-n)
		y0 = min(y0, surfaceH-n)
	}
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	return image.Rect(x0, y0, x0+n, y0+n)
}

// Magnifier renders the zoomed, gridded preview and tracks its position.
type Magnifier struct {
	cfg    Config
	buf    *image.RGBA
	window image.Rectangle
	pos    Point
}

// NewMagnifier allocates the magnifier buffer.
func NewMagnifier(cfg Config) *Magnifier {
	return &Magnifier{
		cfg: cfg,
		buf: image.NewRGBA(image.Rect(0, 0, cfg.MagnifierSize, cfg.MagnifierSize)),
	}
}

// Render redraws the buffer for a sample at (x, y) of surface: clear, blit the
// source window, overlay the grid, outline the center block.
func (m *Magnifier) Render(surface image.Image, x, y int) {
	b := surface.Bounds()
	m.window = SourceWindow(m.cfg, x, y, b.Dx(), b.Dy()).Add(b.Min)

	imaging.Magnify(m.buf, surface, m.window, m.cfg.Factor)
	imaging.DrawGrid(m.buf, m.cfg.Factor, imaging.DefaultGridStyle)
	imaging.DrawHighlight(m.buf, m.cfg.Factor, imaging.DefaultHighlightStyle)
}

// Follow moves the magnifier to trail the pointer by the configured offset.
func (m *Magnifier) Follow(ev PointerEvent) Point {
	m.pos = Point{X: ev.PageX + m.cfg.Offset, Y: ev.PageY + m.cfg.Offset}
	return m.pos
}

// Image returns the magnifier buffer.
func (m *Magnifier) Image() *image.RGBA { return m.buf }

// Window returns the source window used by the last Render.
func (m *Magnifier) Window() image.Rectangle { return m.window }

// Position returns the last Follow result.
func (m *Magnifier) Position() Point { return m.pos }
