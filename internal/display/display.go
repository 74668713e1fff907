//go:build display

package display

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Viewer is an ebiten.Game that draws one image scaled to the window.
type Viewer struct {
	src     image.Image
	img     *ebiten.Image
	caption string
	w, h    int
}

// NewViewer returns a viewer for img. The caption is drawn in the top
// left corner when non-empty.
func NewViewer(img image.Image, caption string) *Viewer {
	b := img.Bounds()
	return &Viewer{src: img, caption: caption, w: b.Dx(), h: b.Dy()}
}

// Update implements ebiten.Game. Escape closes the window.
func (v *Viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.src)
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	s := fit(v.w, v.h, sw, sh)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(s, s)
	op.GeoM.Translate((float64(sw)-float64(v.w)*s)/2, (float64(sh)-float64(v.h)*s)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(v.img, &op)
	if v.caption != "" {
		ebitenutil.DebugPrint(screen, v.caption)
	}
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Show opens a window titled title and blocks until it is closed.
func Show(img image.Image, title string) error {
	if img == nil {
		return errNilImage
	}
	v := NewViewer(img, title)
	w, h := windowSize(v.w, v.h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
