package render

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// DrawImage rasterizes the scene.
func DrawImage(scene *Scene) image.Image {
	dc := gg.NewContext(scene.Width, scene.Height)
	dc.SetColor(BackgroundColor)
	dc.Clear()

	for _, m := range scene.Markers {
		dc.SetColor(m.Color)
		dc.DrawCircle(m.X, m.Y, m.Radius)
		dc.Fill()
		dc.DrawString(m.Label, m.X+labelOffset, m.Y+labelOffset)
	}

	dc.SetColor(RouteColor)
	dc.SetLineWidth(1)
	for _, s := range scene.Segments {
		dc.DrawLine(s.X1, s.Y1, s.X2, s.Y2)
		dc.Stroke()
	}

	return dc.Image()
}

// SaveImage writes the rasterized scene to path. The encoder follows the
// file extension (png, jpg, gif, bmp, tif).
func SaveImage(scene *Scene, path string) error {
	if scene == nil {
		return errors.New("save image: scene is nil")
	}
	if err := imaging.Save(DrawImage(scene), path); err != nil {
		return fmt.Errorf("save image %q: %w", path, err)
	}
	return nil
}

// EncodeImage writes the rasterized scene to w in the given format.
func EncodeImage(w io.Writer, scene *Scene, format imaging.Format) error {
	if scene == nil {
		return errors.New("encode image: scene is nil")
	}
	if err := imaging.Encode(w, DrawImage(scene), format); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	return nil
}
