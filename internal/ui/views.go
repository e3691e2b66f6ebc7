package ui

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/ironsheep/color-dropper/internal/dropper"
)

// Views is the windowed host's implementation of the dropper view handles.
// It only records what to draw; the window reads it every frame.
type Views struct {
	Border   dropper.Ring
	Position dropper.Point
	Label    string
	Selected string

	// Visible turns on with the first pointer sample.
	Visible bool
	// Dirty is set whenever the glass needs recompositing.
	Dirty bool

	// CopySelected, when non-nil, receives every committed color.
	CopySelected func(string) error
}

// NewViews returns views that optionally mirror committed colors to the
// system clipboard.
func NewViews(copyToClipboard bool) *Views {
	v := &Views{}
	if copyToClipboard {
		v.CopySelected = clipboard.WriteAll
	}
	return v
}

// SetBorder implements dropper.MagnifierView.
func (v *Views) SetBorder(r dropper.Ring) {
	if r != v.Border {
		v.Border = r
		v.Dirty = true
	}
}

// MoveTo implements dropper.MagnifierView.
func (v *Views) MoveTo(p dropper.Point) {
	v.Position = p
	v.Visible = true
}

// SetLabel implements dropper.MagnifierView.
func (v *Views) SetLabel(hex string) {
	v.Label = hex
	v.Dirty = true
}

// SetSelected implements dropper.SelectionView.
func (v *Views) SetSelected(hex string) {
	v.Selected = hex
	if v.CopySelected == nil {
		return
	}
	if err := v.CopySelected(hex); err != nil {
		log.Printf("Failed to copy %s to clipboard: %v", hex, err)
	}
}
