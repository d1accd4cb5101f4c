// Package window shows a rendered canvas in a desktop window.
package window

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying img and blocks until it is closed.
func Show(img image.Image, title string) error {
	if img == nil {
		return errors.New("show window: image is nil")
	}

	b := img.Bounds()
	g := &canvasGame{src: img, width: b.Dx(), height: b.Dy()}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(10)
	return ebiten.RunGame(g)
}

type canvasGame struct {
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

func (g *canvasGame) Update() error {
	return nil
}

func (g *canvasGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

func (g *canvasGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
