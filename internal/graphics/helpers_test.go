package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"glscene/internal/logging"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*logging.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logfile.txt")
	l := logging.New(path, logging.WithStdout(&bytes.Buffer{}))
	t.Cleanup(func() { _ = l.Close() })
	return l, path
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// writePNG writes a w×h image whose top row is red and every other row blue.
func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.NRGBA{B: 255, A: 255}
		if y == 0 {
			c = color.NRGBA{R: 255, A: 255}
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "texture.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}
