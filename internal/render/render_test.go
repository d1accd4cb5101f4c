package render

import (
	"bytes"
	"image/png"
	"migros-delivery/internal/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func testPlan() *domain.RoutePlan {
	return &domain.RoutePlan{
		Points: []domain.Point{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 1, Y: 0},
			{ID: 3, X: 1, Y: 1},
		},
		Route: domain.Route{1, 2, 3, 1},
	}
}

func TestNewSceneLayout(t *testing.T) {
	scene, err := NewScene(testPlan(), DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, 600, scene.Width)
	require.Equal(t, 600, scene.Height)

	// three buildings plus the depot overlay
	require.Len(t, scene.Markers, 4)
	require.Equal(t, Marker{X: 500, Y: 0, Radius: 5, Label: "2", Color: BuildingColor}, scene.Markers[1])

	depot := scene.Markers[3]
	require.Equal(t, "Migros", depot.Label)
	require.Equal(t, 8.0, depot.Radius)
	require.Equal(t, RouteColor, depot.Color)
	require.Equal(t, 0.0, depot.X)

	require.Equal(t, []Segment{
		{X1: 0, Y1: 0, X2: 500, Y2: 0},
		{X1: 500, Y1: 0, X2: 500, Y2: 500},
		{X1: 500, Y1: 500, X2: 0, Y2: 0},
	}, scene.Segments)
}

func TestNewSceneTruncatesToPixels(t *testing.T) {
	plan := &domain.RoutePlan{
		Points: []domain.Point{{ID: 1, X: 0.1239, Y: 0.9999}},
		Route:  domain.Route{1, 1},
	}

	scene, err := NewScene(plan, Options{Scale: 100, Size: 120})
	require.NoError(t, err)
	require.Equal(t, 12.0, scene.Markers[0].X)
	require.Equal(t, 99.0, scene.Markers[0].Y)
	require.Len(t, scene.Segments, 1)
}

func TestNewSceneErrors(t *testing.T) {
	_, err := NewScene(nil, DefaultOptions())
	require.Error(t, err)

	_, err = NewScene(testPlan(), Options{Scale: 0, Size: 600})
	require.Error(t, err)

	broken := testPlan()
	broken.Route = domain.Route{1, 9, 1}
	_, err = NewScene(broken, DefaultOptions())
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = NewScene(&domain.RoutePlan{}, DefaultOptions())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDrawImagePaintsMarkersAndRoute(t *testing.T) {
	scene, err := NewScene(testPlan(), DefaultOptions())
	require.NoError(t, err)

	img := DrawImage(scene)
	require.Equal(t, 600, img.Bounds().Dx())

	// depot centre is blue
	r, g, b, _ := img.At(2, 2).RGBA()
	require.Zero(t, r>>8)
	require.Zero(t, g>>8)
	require.Equal(t, uint32(255), b>>8)

	// inside building 3, clear of the route lines
	r, g, b, _ = img.At(501, 502).RGBA()
	require.Equal(t, r, g)
	require.Equal(t, g, b)
	require.Less(t, r>>8, uint32(200))

	// far corner is background
	r, g, b, _ = img.At(590, 20).RGBA()
	require.Equal(t, uint32(255), r>>8)
	require.Equal(t, uint32(255), g>>8)
	require.Equal(t, uint32(255), b>>8)
}

func TestSaveAndEncodeImage(t *testing.T) {
	scene, err := NewScene(testPlan(), DefaultOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "route.png")
	require.NoError(t, SaveImage(scene, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 600, decoded.Bounds().Dy())

	var buf bytes.Buffer
	require.NoError(t, EncodeImage(&buf, scene, imaging.PNG))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	require.Error(t, SaveImage(scene, filepath.Join(t.TempDir(), "route.unknown")))
	require.Error(t, SaveImage(nil, path))
}

func TestWriteSVG(t *testing.T) {
	scene, err := NewScene(testPlan(), DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, scene))

	out := buf.String()
	require.Contains(t, out, "<svg")
	require.Contains(t, out, "Migros")
	require.Equal(t, 3, strings.Count(out, "<line"))
	require.Equal(t, 4, strings.Count(out, "<circle"))
}
