package ui

// InputState holds the polled state of inputs for a single frame.
// This separates input polling (done by the window) from input handling.
type InputState struct {
	Quit   bool
	Toggle bool // toggle key just pressed

	// Viewport size as reported by the window layout.
	ViewportW, ViewportH int

	// Mouse state
	MouseX, MouseY int
	LeftClick      bool // left mouse button just pressed
}
