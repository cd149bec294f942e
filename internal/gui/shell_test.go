package gui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"glscene/internal/graphics/gltest"
	"glscene/internal/logging"
	"glscene/internal/profiling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gltest.Main(m)
}

type fakeTexture uint32

func (f fakeTexture) ColorHandle() uint32 { return uint32(f) }

func TestCheckFontRejectsMissingAndGarbage(t *testing.T) {
	assert.Error(t, checkFont(filepath.Join(t.TempDir(), "nope.ttf")))

	path := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))
	assert.ErrorContains(t, checkFont(path), "failed to parse font")
}

func TestShellFrameWithFallbackFonts(t *testing.T) {
	window := gltest.Context(t)

	logger := logging.New(filepath.Join(t.TempDir(), "logfile.txt"), logging.WithStdout(&bytes.Buffer{}))
	defer logger.Close()

	// Font assets are resolved relative to the working directory, which has none here.
	shell, err := New(window, logger)
	require.NoError(t, err)
	defer shell.Shutdown()

	out := logger.Buffer().String()
	assert.Contains(t, out, "WARNING: Using built-in GUI font")
	assert.Contains(t, out, "INFO: ImGui initialized.")

	shell.Panels.About = true
	shell.Panels.Controls = true
	for i := 0; i < 3; i++ {
		shell.NewFrame()
		shell.Declare(fakeTexture(0), PerfStats{
			Uptime:     float64(i),
			FPS:        60,
			MsPerFrame: 16.6,
			Phases:     []profiling.Phase{{Name: "scene.Render", Dur: 2 * time.Millisecond}},
		})
		shell.Render()
	}
	assert.True(t, shell.Panels.Scene)
}
