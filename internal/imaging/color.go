package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color as "#rrggbb".
func (c RGBColor) Hex() string {
	return ToHex(c.R, c.G, c.B)
}

// RGBAColor represents a non-premultiplied RGBA color with 8-bit components.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// RGB drops the alpha channel.
func (c RGBAColor) RGB() RGBColor {
	return RGBColor{R: c.R, G: c.G, B: c.B}
}

// Hex returns the color as "#rrggbb"; alpha is not encoded.
func (c RGBAColor) Hex() string {
	return ToHex(c.R, c.G, c.B)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#rrggbb" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// ToHex formats an 8-bit RGB triple as "#rrggbb".
//
// Each channel is written as two lowercase hex digits, zero padded. The result
// always matches `#[0-9a-f]{6}` and ParseHex recovers the exact input.
func ToHex(r, g, b uint8) string {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hex()
}

// ParseHex decodes a "#rrggbb" string back into its 8-bit channels.
// Upper and lower case digits are both accepted; the leading '#' is required.
func ParseHex(hex string) (RGBColor, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: want #rrggbb", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBColor{R: r, G: g, B: b}, nil
}

// ParseColor is ParseHex returning an opaque color.RGBA, convenient for drawing.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
}

// PixelAt reads the non-premultiplied color at (x, y).
//
// Reads outside img.Bounds() return transparent black and ok=false. This never
// fails, mirroring how a 2D canvas answers an out-of-range pixel read.
func PixelAt(img image.Image, x, y int) (c RGBAColor, ok bool) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return RGBAColor{}, false
	}
	n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A}, true
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Unlike PixelAt, coordinates outside the image bounds are an error.
// The Hex format excludes alpha; use RGBA.A to get transparency information.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	c, ok := PixelAt(img, x, y)
	if !ok {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	return &ColorResult{
		Hex:  c.Hex(),
		RGB:  c.RGB(),
		RGBA: c,
		HSL:  rgbToHSL(c.R, c.G, c.B),
	}, nil
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive), (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// RegionFromRect converts an image.Rectangle.
func RegionFromRect(r image.Rectangle) Region {
	return Region{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#rrggbb" (quantized)
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the N most common colors from an image or region.
//
// The dropper uses it to summarise the neighbourhood currently shown in the
// magnifier. Fully transparent pixels (outside the loaded image) are skipped.
// If region is nil the whole image is analyzed; otherwise the region is
// intersected with the image bounds.
//
// # Color Quantization
//
// To group similar colors each component is quantized as
//
//	quantized = (original / 16) * 16
//
// so #f0f0f0 and #fafafa are counted together.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		bounds = image.Rect(region.X1, region.Y1, region.X2, region.Y2).Intersect(bounds)
	}

	colorCounts := make(map[RGBColor]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, _ := PixelAt(img, x, y)
			if c.A == 0 {
				continue
			}
			q := RGBColor{R: c.R / 16 * 16, G: c.G / 16 * 16, B: c.B / 16 * 16}
			colorCounts[q]++
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(colorCounts))
	for rgb, cnt := range colorCounts {
		colors = append(colors, ColorFrequency{
			Hex:        rgb.Hex(),
			Percentage: float64(cnt) / float64(totalPixels) * 100,
			RGB:        rgb,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// rgbToHSL converts 8-bit RGB values to whole-number HSL
// (hue in degrees, saturation and lightness in percent).
func rgbToHSL(r, g, b uint8) HSLColor {
	h, s, l := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hsl()

	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
