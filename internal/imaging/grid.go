package imaging

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// LineStyle describes a stroked line: color (alpha included) and width in pixels.
type LineStyle struct {
	Color color.Color
	Width float64
}

// DefaultGridStyle is a low-opacity dark hairline.
var DefaultGridStyle = LineStyle{Color: color.NRGBA{R: 0, G: 0, B: 0, A: 102}, Width: 0.25}

// DefaultHighlightStyle is a solid one-pixel white line.
var DefaultHighlightStyle = LineStyle{Color: color.White, Width: 1}

// CenterCell returns the origin of the cell that holds the center of a buffer
// of the given size when the buffer is tiled with cells of the given size,
// i.e. the block the sampled pixel is blitted to.
func CenterCell(size, cell int) int {
	if cell <= 0 {
		return 0
	}
	return size / cell / 2 * cell
}

// GridLines returns the positions, in ascending order, of the grid lines on one
// axis of a buffer. Lines start at the center cell origin and are stepped outward
// one cell at a time in both directions until they leave [0, size], so they
// always coincide with block boundaries of a Magnify blit.
func GridLines(size, cell int) []float64 {
	if cell <= 0 || size <= 0 {
		return nil
	}
	anchor := CenterCell(size, cell)

	var left []float64
	for x := anchor - cell; x >= 0; x -= cell {
		left = append(left, float64(x))
	}
	lines := make([]float64, 0, len(left)+size/cell+1)
	for i := len(left) - 1; i >= 0; i-- {
		lines = append(lines, left[i])
	}
	for x := anchor; x <= size; x += cell {
		lines = append(lines, float64(x))
	}
	return lines
}

// DrawGrid strokes vertical and horizontal grid lines over dst, one cell apart,
// aligned with the blocks produced by Magnify.
func DrawGrid(dst *image.RGBA, cell int, style LineStyle) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(style.Color)
	dc.SetLineWidth(style.Width)

	for _, x := range GridLines(b.Dx(), cell) {
		dc.MoveTo(x, 0)
		dc.LineTo(x, h)
	}
	for _, y := range GridLines(b.Dy(), cell) {
		dc.MoveTo(0, y)
		dc.LineTo(w, y)
	}
	dc.Stroke()
}

// HighlightRect returns the rectangle stroked around the center block: the path
// runs half a pixel outside the block so a one-pixel stroke lands exactly on the
// ring of pixels surrounding it instead of straddling two blocks.
//
// The center block is the sampled block [CenterCell, CenterCell+cell), so the
// outline stays on the grid rather than being symmetric about the buffer
// center. For a 100x100 buffer with 5px cells it outlines [50,55), half a cell right of and
// below the midpoint 50.
func HighlightRect(width, height, cell int) (x, y, w, h float64) {
	x = float64(CenterCell(width, cell)) - 0.5
	y = float64(CenterCell(height, cell)) - 0.5
	return x, y, float64(cell) + 1, float64(cell) + 1
}

// DrawHighlight outlines the center block of dst.
func DrawHighlight(dst *image.RGBA, cell int, style LineStyle) {
	b := dst.Bounds()
	x, y, w, h := HighlightRect(b.Dx(), b.Dy(), cell)

	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(style.Color)
	dc.SetLineWidth(style.Width)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()
}
