package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes the scene as an SVG document.
func WriteSVG(w io.Writer, scene *Scene) error {
	if scene == nil {
		return errors.New("write svg: scene is nil")
	}

	canvas := svg.New(w)
	canvas.Start(scene.Width, scene.Height)
	canvas.Rect(0, 0, scene.Width, scene.Height, "fill:rgb(255,255,255)")

	for _, m := range scene.Markers {
		fill := "fill:" + cssColor(m.Color)
		canvas.Circle(int(m.X), int(m.Y), int(m.Radius), fill)
		canvas.Text(int(m.X+labelOffset), int(m.Y+labelOffset), m.Label, fill+";font-size:12px;font-family:sans-serif")
	}

	stroke := "stroke:" + cssColor(RouteColor) + ";stroke-width:1"
	for _, s := range scene.Segments {
		canvas.Line(int(s.X1), int(s.Y1), int(s.X2), int(s.Y2), stroke)
	}

	canvas.End()
	return nil
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
