package imaging

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
)

// Stretch scales src to exactly width x height with bilinear filtering, the way a
// canvas drawImage fills its destination rectangle. The aspect ratio of src is not
// preserved. Non-positive dimensions yield an empty image.
func Stretch(src image.Image, width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		out := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
		return out
	}
	return transform.Resize(src, width, height, transform.Linear)
}

// StretchInto redraws dst from src, overwriting every pixel of dst.
// A nil src clears dst to transparent.
func StretchInto(dst *image.RGBA, src image.Image) {
	Clear(dst)
	if src == nil {
		return
	}
	b := dst.Bounds()
	scaled := Stretch(src, b.Dx(), b.Dy())
	draw.Draw(dst, b, scaled, scaled.Bounds().Min, draw.Src)
}

// Clear sets every pixel of dst to transparent black.
func Clear(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
}
