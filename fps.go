package flywheel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays FPS, TPS and the scroll phase in the top-left corner,
// refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 fits three lines of DebugPrint text.
	return &fpsOverlay{img: ebiten.NewImage(120, 48), lastUpdate: 0.5}
}

func (o *fpsOverlay) update(dt float64, fw *Flywheel) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s #%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), fw.ctrl.Phase(), fw.SelectedIndex()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
