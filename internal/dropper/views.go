package dropper

// Rect is an axis-aligned box in viewport coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether (x, y) lies inside r (right and bottom edges excluded).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// Point is a position in page coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointerEvent carries the pointer position of a single move or click.
// Client coordinates are relative to the viewport, page coordinates to the
// scrolled document; hosts without scrolling report the same values for both.
type PointerEvent struct {
	ClientX float64 `json:"client_x"`
	ClientY float64 `json:"client_y"`
	PageX   float64 `json:"page_x"`
	PageY   float64 `json:"page_y"`
}

// Placer reports where a display surface of the given pixel size ends up in the
// viewport. It is asked again after every resize.
type Placer interface {
	Place(width, height int) Rect
}

// PlacerFunc adapts a function to the Placer interface.
type PlacerFunc func(width, height int) Rect

// Place calls f(width, height).
func (f PlacerFunc) Place(width, height int) Rect { return f(width, height) }

// FixedPlacer pins the surface's top-left corner at (Left, Top).
type FixedPlacer struct {
	Left, Top float64
}

// Place implements Placer.
func (p FixedPlacer) Place(width, height int) Rect {
	return Rect{Left: p.Left, Top: p.Top, Width: float64(width), Height: float64(height)}
}

// MagnifierView is the host handle for the magnifier container.
type MagnifierView interface {
	// SetBorder restyles the double ring.
	SetBorder(Ring)
	// MoveTo positions the magnifier's top-left corner in page coordinates.
	MoveTo(Point)
	// SetLabel shows the hovered hex under the lens.
	SetLabel(hex string)
}

// SelectionView is the host handle for the committed color output.
type SelectionView interface {
	SetSelected(hex string)
}

// Views bundles the host handles a Widget needs. Both are required.
type Views struct {
	Magnifier MagnifierView
	Selection SelectionView
}
