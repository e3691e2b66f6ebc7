package imaging

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Magnify clears dst and blits the source window of src into it, scaling every
// source pixel up to a factor x factor block (nearest neighbour, no smoothing).
//
// window is given in src coordinates. Only the part of window that overlaps src
// is drawn; the rest of dst stays transparent, so a window hanging off the right
// or bottom edge of the image shows an empty margin rather than stretched pixels.
// Pixels of the scaled window that fall outside dst are discarded.
func Magnify(dst *image.RGBA, src image.Image, window image.Rectangle, factor int) {
	Clear(dst)
	if factor <= 0 || src == nil {
		return
	}

	visible := window.Intersect(src.Bounds())
	if visible.Empty() {
		return
	}

	cropped := imaging.Crop(src, visible)
	scaled := imaging.Resize(cropped, visible.Dx()*factor, visible.Dy()*factor, imaging.NearestNeighbor)

	offset := visible.Min.Sub(window.Min).Mul(factor)
	target := scaled.Bounds().Add(dst.Bounds().Min).Add(offset)
	draw.Draw(dst, target, scaled, scaled.Bounds().Min, draw.Src)
}

// MagnifyResult contains a rendered magnifier encoded for transport.
type MagnifyResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}
