package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestStretch_Size(t *testing.T) {
	src := createPatternImage(64, 64)

	tests := []struct {
		name string
		w, h int
	}{
		{"wider", 800, 450},
		{"smaller", 32, 18},
		{"same", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Stretch(src, tt.w, tt.h)
			if b := out.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestStretch_Empty(t *testing.T) {
	out := Stretch(createPatternImage(10, 10), 0, 450)
	if !out.Bounds().Empty() {
		t.Errorf("expected empty image, got %v", out.Bounds())
	}
}

func TestStretch_SameSizeCopies(t *testing.T) {
	src := createPatternImage(10, 10)
	out := Stretch(src, 10, 10)

	if out == src {
		t.Fatal("Stretch returned its input")
	}
	if out.RGBAAt(7, 2) != src.RGBAAt(7, 2) {
		t.Errorf("same-size stretch changed pixels: %v vs %v", out.RGBAAt(7, 2), src.RGBAAt(7, 2))
	}
}

func TestStretchInto(t *testing.T) {
	src := createPatternImage(16, 16)
	dst := image.NewRGBA(image.Rect(0, 0, 160, 90))

	StretchInto(dst, src)

	// Quadrant colors survive the stretch away from the seams.
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{10, 10, color.RGBA{255, 0, 0, 255}},
		{150, 10, color.RGBA{0, 255, 0, 255}},
		{10, 80, color.RGBA{0, 0, 255, 255}},
		{150, 80, color.RGBA{255, 255, 255, 255}},
	}
	for _, c := range checks {
		got := dst.RGBAAt(c.x, c.y)
		if absDiff(got.R, c.want.R) > 1 || absDiff(got.G, c.want.G) > 1 || absDiff(got.B, c.want.B) > 1 {
			t.Errorf("dst(%d,%d) = %v, want about %v", c.x, c.y, got, c.want)
		}
	}
}

func TestStretchInto_NilClears(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	fillRGBA(dst, color.RGBA{9, 9, 9, 255})

	StretchInto(dst, nil)

	if got := dst.RGBAAt(4, 4); got != (color.RGBA{}) {
		t.Errorf("got %v, want transparent", got)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
