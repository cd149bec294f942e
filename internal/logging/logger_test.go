package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 1, 4, 13, 5, 9, 0, time.Local)
}

func newTestLogger(t *testing.T) (*Logger, string, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logfile.txt")
	var stdout bytes.Buffer
	l := New(path, WithStdout(&stdout), WithClock(fixedClock))
	t.Cleanup(func() { _ = l.Close() })
	return l, path, &stdout
}

func TestLogAppendsOneLinePerRecord(t *testing.T) {
	linePattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] (DEBUG|INFO|WARNING|ERROR): (.*)$`)

	for _, level := range []Level{Debug, Info, Warning, Error} {
		t.Run(level.String(), func(t *testing.T) {
			l, path, _ := newTestLogger(t)
			l.Log(level, "texture loaded")

			data, err := os.ReadFile(path)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
			require.Len(t, lines, 1)
			m := linePattern.FindStringSubmatch(lines[0])
			require.NotNil(t, m, "line %q does not match", lines[0])
			assert.Equal(t, level.String(), m[1])
			assert.Equal(t, "texture loaded", m[2])

			assert.Equal(t, level.String()+": texture loaded\n", l.Buffer().String())
		})
	}
}

func TestLogTimestampFormat(t *testing.T) {
	l, path, stdout := newTestLogger(t)
	l.Log(Info, "Program started.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2025-01-04 13:05:09] INFO: Program started.\n", string(data))
	assert.Equal(t, "[2025-01-04 13:05:09] INFO: Program started.\n", stdout.String())
}

func TestLogFileIsAppended(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logfile.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	l := New(path, WithStdout(&bytes.Buffer{}), WithClock(fixedClock))
	l.Infof("run %d", 2)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous run\n[2025-01-04 13:05:09] INFO: run 2\n", string(data))
}

func TestClearBufferKeepsFile(t *testing.T) {
	l, path, _ := newTestLogger(t)
	l.Warnf("first")
	l.Buffer().Clear()
	l.Errorf("second")

	assert.Equal(t, "ERROR: second\n", l.Buffer().String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestOpenFailureFallsBackToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missingDir := filepath.Join(t.TempDir(), "missing", "logfile.txt")

	l := New(missingDir, WithStdout(&stdout), WithStderr(&stderr), WithClock(fixedClock))
	l.Debugf("still logging")

	assert.Contains(t, stderr.String(), "Error opening log file")
	assert.Contains(t, stdout.String(), "DEBUG: still logging")
	assert.Equal(t, "DEBUG: still logging\n", l.Buffer().String())
	assert.NoError(t, l.Close())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "UNKNOWN", Level(42).String())
	assert.Equal(t, "WARNING", Warning.String())
}
