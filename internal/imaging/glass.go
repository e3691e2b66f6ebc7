package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// GlassStyle describes the circular frame drawn around a magnifier buffer:
// an inner ring of InnerWidth pixels and an outer ring that extends the frame to
// OuterWidth pixels beyond the magnifier edge. Label, when set, is printed on a
// white pill near the bottom of the glass.
type GlassStyle struct {
	Inner      color.Color
	Outer      color.Color
	InnerWidth float64
	OuterWidth float64
	Label      string
}

// Glass composites a magnifier buffer into a circular lens with a double ring.
// The returned image is square with side mag.Dx() + 2*OuterWidth (rounded up);
// the magnifier is centered and clipped to a circle.
func Glass(mag image.Image, style GlassStyle) *image.RGBA {
	b := mag.Bounds()
	margin := int(style.OuterWidth + 0.999)
	size := b.Dx() + 2*margin
	if h := b.Dy() + 2*margin; h > size {
		size = h
	}

	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	r := float64(b.Dx()) / 2

	if style.Outer != nil && style.OuterWidth > style.InnerWidth {
		dc.DrawCircle(c, c, r+(style.InnerWidth+style.OuterWidth)/2)
		dc.SetLineWidth(style.OuterWidth - style.InnerWidth)
		dc.SetColor(style.Outer)
		dc.Stroke()
	}
	if style.Inner != nil && style.InnerWidth > 0 {
		dc.DrawCircle(c, c, r+style.InnerWidth/2)
		dc.SetLineWidth(style.InnerWidth)
		dc.SetColor(style.Inner)
		dc.Stroke()
	}

	dc.DrawCircle(c, c, r)
	dc.Clip()
	dc.DrawImage(mag, margin-b.Min.X, margin-b.Min.Y)
	dc.ResetClip()

	if style.Label != "" {
		drawLabel(dc, style.Label, c, float64(margin+b.Dy())-12)
	}

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out
}

// drawLabel prints text centered horizontally on cx with its pill bottom at
// bottom, black on white.
func drawLabel(dc *gg.Context, text string, cx, bottom float64) {
	dc.SetFontFace(basicfont.Face7x13)
	tw, th := dc.MeasureString(text)
	w := tw + 8
	if w < 56 {
		w = 56
	}
	h := th + 4

	dc.DrawRoundedRectangle(cx-w/2, bottom-h, w, h, 6)
	dc.SetColor(color.White)
	dc.Fill()

	dc.SetColor(color.Black)
	dc.DrawStringAnchored(text, cx, bottom-h/2, 0.5, 0.35)
}

// EncodePNG encodes img as a base64 PNG for transport.
func EncodePNG(img image.Image) (*MagnifyResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &MagnifyResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
