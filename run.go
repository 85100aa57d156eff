package flywheel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS overlay.
	ShowFPS bool
	// Resizable lets the window be resized; the widget follows the layout size.
	Resizable bool
	// ClearColor fills the screen before the widget draws. Zero uses the
	// widget's background color.
	ClearColor Color
	// UpdateFunc runs once per tick after the widget update. Returning a
	// non-nil error stops the game.
	UpdateFunc func() error
}

// game adapts a Flywheel to ebiten.Game.
type game struct {
	fw  *Flywheel
	cfg RunConfig
	fps *fpsOverlay
}

// Run opens a window and drives fw with the Ebitengine game loop until the
// window is closed. Pointer and touch input are read from the window.
func Run(fw *Flywheel, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 480
	}
	if cfg.Height <= 0 {
		cfg.Height = 640
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	fw.input.EnableDevices(true)
	fw.Resize(cfg.Width, cfg.Height)

	g := &game{fw: fw, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("flywheel: run: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.handleKeys()
	g.fw.Update(dt)
	if g.fps != nil {
		g.fps.update(float64(dt), g.fw)
	}
	if g.cfg.UpdateFunc != nil {
		return g.cfg.UpdateFunc()
	}
	return nil
}

// handleKeys maps a few keys to widget actions: arrows/page keys step the
// selection, O toggles orientation, 3 toggles the fold, P takes a screenshot.
func (g *game) handleKeys() {
	fw := g.fw
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		fw.SetSelectedIndex(fw.SelectedIndex() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		fw.SetSelectedIndex(fw.SelectedIndex() - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		if fw.Orientation() == Vertical {
			fw.SetOrientation(Horizontal)
		} else {
			fw.SetOrientation(Vertical)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		fw.Set3DEffect(!fw.Has3DEffect())
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		fw.Screenshot("manual")
	}
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	clearColor := g.cfg.ClearColor
	if clearColor == (Color{}) {
		clearColor = g.fw.BackgroundColor()
	}
	screen.Fill(clearColor.RGBA())
	g.fw.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.cfg.Resizable {
		return g.cfg.Width, g.cfg.Height
	}
	g.fw.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
