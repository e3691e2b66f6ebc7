// Package imaging provides the pixel-level primitives behind the color dropper.
//
// This package implements the operations the widget performs on raw pixel
// buffers: loading the source asset, stretching it onto the display surface,
// sampling single pixels, formatting colors as hex, blitting a magnified source
// window, stroking the grid and highlight overlay, and compositing the circular
// magnifier "glass". All operations work with standard Go image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases rightward,
// and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Drawing operations mutate the
// destination buffer they are given and must not be called concurrently on the
// same buffer.
//
// # Color Representation
//
// Hex strings are always 7 characters, "#rrggbb", lowercase, alpha excluded.
// ToHex and ParseHex round-trip exactly for every 8-bit RGB triple.
//
// # Out of Range Reads
//
// PixelAt never fails: reads outside the image yield transparent black, the
// same value a canvas returns for an out-of-range getImageData. SampleColor is
// the strict variant and returns an error instead.
package imaging
