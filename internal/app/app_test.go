package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"migros-delivery/internal/config"
	"migros-delivery/internal/domain"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input01.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(input string) config.Config {
	return config.Config{
		InputPath:  input,
		Scale:      500,
		CanvasSize: 600,
	}
}

func TestRunPrintsRoute(t *testing.T) {
	cfg := testConfig(writeInput(t, "1,0\n0,0,Migros\n1,1\n"))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, &out, nil))
	require.Equal(t, "Shortest Route: [1, 2, 3, 1]\nDistance: 3.414213562373095\n", out.String())
}

func TestRunWritesImageAndShowsWindow(t *testing.T) {
	cfg := testConfig(writeInput(t, "0,0,Migros\n0.5,0.5\n"))
	cfg.OutputPath = filepath.Join(t.TempDir(), "route.png")
	cfg.Window = true

	var shown image.Image
	var title string
	show := func(img image.Image, s string) error {
		shown, title = img, s
		return nil
	}

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, &out, show))
	require.Contains(t, out.String(), "Shortest Route: [1, 2, 1]")

	info, err := os.Stat(cfg.OutputPath)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	require.NotNil(t, shown)
	require.Equal(t, 600, shown.Bounds().Dx())
	require.Equal(t, windowTitle, title)
}

func TestRunBundledInput(t *testing.T) {
	cfg := testConfig(filepath.Join("..", "..", config.DefaultInputPath))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, &out, nil))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Shortest Route: [1, 3, 4, 5, 2, 1]", lines[0])

	d, err := strconv.ParseFloat(strings.TrimPrefix(lines[1], "Distance: "), 64)
	require.NoError(t, err)
	require.InDelta(t, 0.31623+0.5+0.36056+0.41231+0.36056, d, 1e-4)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	err := Run(context.Background(), testConfig(filepath.Join(t.TempDir(), "missing.txt")), &out, nil)
	require.ErrorIs(t, err, domain.ErrIO)

	err = Run(context.Background(), testConfig(writeInput(t, "0,0,Migros\nx,1\n")), &out, nil)
	require.ErrorIs(t, err, domain.ErrParse)

	err = Run(context.Background(), testConfig(writeInput(t, "")), &out, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	cfg := testConfig(writeInput(t, "0,0,Migros\n"))
	cfg.Window = true
	require.Error(t, Run(context.Background(), cfg, &out, nil))

	boom := errors.New("no display")
	err = Run(context.Background(), cfg, &out, func(image.Image, string) error { return boom })
	require.ErrorIs(t, err, boom)
}

func TestPrintPlanDepotOnly(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintPlan(&out, &domain.RoutePlan{Route: domain.Route{1, 1}}))
	require.Equal(t, "Shortest Route: [1, 1]\nDistance: 0\n", out.String())
}
