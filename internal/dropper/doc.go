// Package dropper implements the magnifying color picker widget.
//
// A Widget owns one display surface (the stretched source image), a pixel
// sampler, a magnifier renderer and the idle/picker mode controller. Hosts talk
// to it through opaque view handles (MagnifierView, SelectionView) and a Placer
// that reports where the display surface sits in the viewport, so all geometry
// and color logic stays independent of any windowing system.
//
// # Threading
//
// A Widget is confined to a single goroutine. Pointer moves may be offered from
// anywhere through PointerMove; they are coalesced into a single pending slot
// and the owner applies the most recent one on its next Tick. Older moves in the
// same frame are dropped, never queued.
//
// # Lifecycle
//
//	w, err := dropper.New(dropper.DefaultConfig(), views, placer)
//	w.Resize(viewportWidth)     // on start and on every viewport change
//	w.SetSource(img)            // once the asset has loaded
//	w.PointerMove(ev)           // on every raw pointer event
//	w.Tick()                    // once per rendered frame
//	w.Toggle()                  // from the toggle control
//	w.Commit()                  // on click over the display surface
package dropper
