// Package window runs the color dropper in an ebiten window.
package window

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ironsheep/color-dropper/internal/dropper"
	"github.com/ironsheep/color-dropper/internal/imaging"
	"github.com/ironsheep/color-dropper/internal/ui"
)

// Options configures the window.
type Options struct {
	ImagePath       string
	Config          dropper.Config
	CopyToClipboard bool
	Debug           bool
	Width, Height   int
}

var (
	background  = color.RGBA{0x20, 0x20, 0x24, 0xff}
	buttonIdle  = color.RGBA{0x44, 0x44, 0x4c, 0xff}
	buttonOn    = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	swatchFrame = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Game implements ebiten.Game around a ui.Host.
type Game struct {
	host  *ui.Host
	debug bool

	loadCh    <-chan imaging.LoadResult
	imagePath string

	viewportW, viewportH int

	surfaceImg     *ebiten.Image
	surfaceVersion uint64
	glassImg       *ebiten.Image

	// Images replaced during Update are released at the start of the next one,
	// never while Draw may still reference them.
	toDeallocate []*ebiten.Image
}

// NewGame validates the asset, builds the widget and starts loading the image
// in the background. Failures are *dropper.InitError.
func NewGame(opts Options) (*Game, error) {
	if _, err := os.Stat(opts.ImagePath); err != nil {
		return nil, &dropper.InitError{What: "image asset " + opts.ImagePath, Err: err}
	}

	host, err := ui.NewHost(opts.Config, ui.NewViews(opts.CopyToClipboard), ui.DefaultLayout())
	if err != nil {
		return nil, err
	}

	cache := imaging.NewImageCache()
	return &Game{
		host:      host,
		debug:     opts.Debug,
		loadCh:    cache.LoadAsync(opts.ImagePath),
		imagePath: opts.ImagePath,
		viewportW: opts.Width,
		viewportH: opts.Height,
	}, nil
}

// pollInput gathers all raw input events for the current frame.
func (g *Game) pollInput() ui.InputState {
	mx, my := ebiten.CursorPosition()
	return ui.InputState{
		Quit:      inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Toggle:    inpututil.IsKeyJustPressed(ebiten.KeyP),
		ViewportW: g.viewportW,
		ViewportH: g.viewportH,
		MouseX:    mx,
		MouseY:    my,
		LeftClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// Update runs once per frame on the game goroutine, the widget's only owner.
func (g *Game) Update() error {
	for _, img := range g.toDeallocate {
		img.Deallocate()
	}
	g.toDeallocate = g.toDeallocate[:0]

	// Pick up the background image load, if it finished.
	if g.loadCh != nil {
		select {
		case res, ok := <-g.loadCh:
			g.loadCh = nil
			if !ok {
				break
			}
			if res.Err != nil {
				return &dropper.InitError{What: "image asset " + res.Path, Err: res.Err}
			}
			if g.debug {
				b := res.Image.Bounds()
				log.Printf("Loaded %s (%dx%d)", res.Path, b.Dx(), b.Dy())
			}
			g.host.Widget.SetSource(res.Image)
		default:
		}
	}

	input := g.pollInput()
	if g.host.HandleInput(input) {
		return ebiten.Termination
	}

	if g.host.OverSurface(input.MouseX, input.MouseY) {
		ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	g.syncSurface()
	g.syncGlass()
	return nil
}

// syncSurface re-uploads the display surface after a resize or redraw.
func (g *Game) syncSurface() {
	surface := g.host.Widget.Surface()
	if surface.Version() == g.surfaceVersion && g.surfaceImg != nil {
		return
	}
	g.surfaceVersion = surface.Version()

	if g.surfaceImg != nil {
		g.toDeallocate = append(g.toDeallocate, g.surfaceImg)
		g.surfaceImg = nil
	}
	if w, h := surface.Size(); w > 0 && h > 0 {
		g.surfaceImg = ebiten.NewImageFromImage(surface.Image())
	}
}

// syncGlass recomposites the magnifier glass when the views report a change.
func (g *Game) syncGlass() {
	views := g.host.Views
	if !views.Visible || !views.Dirty {
		return
	}
	views.Dirty = false

	glass := g.host.Widget.Glass()
	b := glass.Bounds()
	if g.glassImg != nil {
		if gw, gh := g.glassImg.Bounds().Dx(), g.glassImg.Bounds().Dy(); gw == b.Dx() && gh == b.Dy() {
			g.glassImg.WritePixels(glass.Pix)
			return
		}
		g.toDeallocate = append(g.toDeallocate, g.glassImg)
	}
	g.glassImg = ebiten.NewImageFromImage(glass)
}

// Draw renders the toolbar, the display surface and the magnifier.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	layout := g.host.Layout
	widget := g.host.Widget

	// Toggle control
	btn := layout.Button
	fill := buttonIdle
	if widget.Mode() == dropper.ModePicker {
		fill = buttonOn
	}
	vector.DrawFilledRect(screen, float32(btn.Left), float32(btn.Top), float32(btn.Width), float32(btn.Height), fill, false)
	ebitenutil.DebugPrintAt(screen, ui.ButtonLabel(widget.Mode()), int(btn.Left)+10, int(btn.Top)+6)

	// Selected color output
	sw := layout.Swatch
	if sel := g.host.Views.Selected; sel != "" {
		if c, err := imaging.ParseColor(sel); err == nil {
			vector.DrawFilledRect(screen, float32(sw.Left), float32(sw.Top), float32(sw.Width), float32(sw.Height), c, false)
		}
		ebitenutil.DebugPrintAt(screen, sel, int(sw.Left+sw.Width)+10, int(sw.Top)+6)
	} else {
		ebitenutil.DebugPrintAt(screen, "no color selected", int(sw.Left+sw.Width)+10, int(sw.Top)+6)
	}
	vector.StrokeRect(screen, float32(sw.Left), float32(sw.Top), float32(sw.Width), float32(sw.Height), 1, swatchFrame, false)

	// Display surface
	if g.surfaceImg != nil {
		bbox := widget.Surface().BoundingBox()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(bbox.Left, bbox.Top)
		screen.DrawImage(g.surfaceImg, op)
	}
	if !widget.Surface().HasSource() {
		ebitenutil.DebugPrintAt(screen, "loading "+g.imagePath+" ...", 16, int(layout.SurfaceTop)+8)
	}

	// Magnifier, drawn last so it sits above everything else
	if g.glassImg != nil && g.host.Views.Visible {
		pos := g.host.Views.Position
		off := widget.GlassOffset()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X-off, pos.Y-off)
		screen.DrawImage(g.glassImg, op)
	}
}

// Layout tracks the window size; the host resizes the surface on change.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewportW, g.viewportH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 800
	}

	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("Color Dropper - %s", opts.ImagePath))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
