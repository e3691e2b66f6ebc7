package dropper

import (
	"image"

	"github.com/ironsheep/color-dropper/internal/imaging"
)

// DisplaySurface owns the stretched source image and the cached bounding box
// used to turn pointer coordinates into surface pixels.
type DisplaySurface struct {
	cfg    Config
	placer Placer

	src  image.Image
	buf  *image.RGBA
	bbox Rect

	// version increments on every redraw so hosts can tell when to re-upload.
	version uint64
}

// NewDisplaySurface creates an empty (0x0) surface. Call Resize before use.
func NewDisplaySurface(cfg Config, placer Placer) (*DisplaySurface, error) {
	if placer == nil {
		return nil, &InitError{What: "display surface placer is nil"}
	}
	return &DisplaySurface{
		cfg:    cfg,
		placer: placer,
		buf:    image.NewRGBA(image.Rect(0, 0, 0, 0)),
	}, nil
}

// SurfaceSize returns the pixel size a surface gets for a viewport width:
// width = WidthRatio * viewport, height = width / AspectRatio, both truncated
// to whole pixels the way a canvas truncates its drawing buffer size.
func SurfaceSize(cfg Config, viewportWidth int) (width, height int) {
	w := int(cfg.WidthRatio * float64(viewportWidth))
	if w < 0 {
		w = 0
	}
	return w, int(float64(w) / cfg.AspectRatio)
}

// Resize reallocates the buffer for the viewport width (clearing it) and
// recomputes the bounding box. Callers normally follow with Redraw.
func (s *DisplaySurface) Resize(viewportWidth int) {
	w, h := SurfaceSize(s.cfg, viewportWidth)
	s.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	s.bbox = s.placer.Place(w, h)
}

// Redraw stretches the source image over the whole buffer.
// Without a source the buffer is left transparent.
func (s *DisplaySurface) Redraw() {
	imaging.StretchInto(s.buf, s.src)
	s.version++
}

// SetSource installs a loaded image and redraws.
func (s *DisplaySurface) SetSource(img image.Image) {
	s.src = img
	s.Redraw()
}

// HasSource reports whether an image has been installed.
func (s *DisplaySurface) HasSource() bool { return s.src != nil }

// Image returns the live pixel buffer. It is replaced on Resize.
func (s *DisplaySurface) Image() *image.RGBA { return s.buf }

// BoundingBox returns the cached placement from the last Resize.
func (s *DisplaySurface) BoundingBox() Rect { return s.bbox }

// Size returns the buffer size in pixels.
func (s *DisplaySurface) Size() (width, height int) {
	b := s.buf.Bounds()
	return b.Dx(), b.Dy()
}

// Version increments on every redraw.
func (s *DisplaySurface) Version() uint64 { return s.version }
