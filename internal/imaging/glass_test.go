package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testGlassStyle(label string) GlassStyle {
	return GlassStyle{
		Inner:      color.RGBA{255, 0, 0, 255},
		Outer:      color.RGBA{255, 255, 255, 255},
		InnerWidth: 8,
		OuterWidth: 10,
		Label:      label,
	}
}

func TestGlass_Geometry(t *testing.T) {
	mag := image.NewRGBA(image.Rect(0, 0, 100, 100))
	fillRGBA(mag, color.RGBA{0, 0, 255, 255})

	out := Glass(mag, testGlassStyle(""))

	if b := out.Bounds(); b.Dx() != 120 || b.Dy() != 120 {
		t.Fatalf("glass size: got %dx%d, want 120x120", b.Dx(), b.Dy())
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"center shows magnifier", 60, 60, color.RGBA{0, 0, 255, 255}},
		{"inner ring", 60, 5, color.RGBA{255, 0, 0, 255}},
		{"outer ring", 60, 1, color.RGBA{255, 255, 255, 255}},
		{"corner is transparent", 2, 2, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := out.RGBAAt(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGlass_ClipsMagnifierCorners(t *testing.T) {
	mag := image.NewRGBA(image.Rect(0, 0, 100, 100))
	fillRGBA(mag, color.RGBA{0, 0, 255, 255})

	out := Glass(mag, GlassStyle{})

	// (12,12) lies inside the square magnifier but well outside its circle.
	if got := out.RGBAAt(12, 12); got != (color.RGBA{}) {
		t.Errorf("corner of the magnifier not clipped: %v", got)
	}
}

func TestGlass_Label(t *testing.T) {
	mag := image.NewRGBA(image.Rect(0, 0, 100, 100))
	fillRGBA(mag, color.RGBA{0, 0, 0, 255})

	out := Glass(mag, testGlassStyle("#123456"))

	// The pill is white and sits just above the bottom of the magnifier.
	found := false
	for y := 90; y < 110; y++ {
		if out.RGBAAt(60-26, y) == (color.RGBA{255, 255, 255, 255}) {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected a white label pill near the bottom of the glass")
	}
}

func TestEncodePNG(t *testing.T) {
	img := createPatternImage(30, 20)

	result, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	if result.Width != 30 || result.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	r, g, b, _ := decoded.At(20, 2).RGBA()
	if r != 0 || g>>8 != 255 || b != 0 {
		t.Errorf("decoded pixel (20,2): got (%d,%d,%d), want green", r>>8, g>>8, b>>8)
	}
}
