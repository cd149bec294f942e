package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPanels(t *testing.T) {
	p := DefaultPanels()
	assert.True(t, p.Scene)
	assert.True(t, p.Console)
	assert.True(t, p.Performance)
	assert.False(t, p.Demo)
	assert.False(t, p.About)
	assert.False(t, p.Controls)
}

func TestConsoleScroll(t *testing.T) {
	var c ConsoleScroll

	assert.False(t, c.Changed(0), "empty buffer on first frame")
	assert.True(t, c.Changed(42))
	assert.False(t, c.Changed(42))
	assert.True(t, c.Changed(0), "clearing also scrolls")
	assert.False(t, c.Changed(0))
}

func TestPerfGraphSamplesAtCadence(t *testing.T) {
	g := NewPerfGraph()

	g.Sample(PerfStats{Uptime: 0.5, FPS: 60}, 1)
	values, offset := g.Values()
	assert.Len(t, values, graphSamples)
	assert.Equal(t, 1, offset)
	assert.Equal(t, float32(60), values[0])

	// Same second, no new sample.
	g.Sample(PerfStats{Uptime: 0.9, FPS: 30}, 1)
	_, offset = g.Values()
	assert.Equal(t, 1, offset)

	g.Sample(PerfStats{Uptime: 2.5, FPS: 30}, 1)
	values, offset = g.Values()
	assert.Equal(t, 3, offset)
	assert.Equal(t, float32(30), values[1])
	assert.Equal(t, float32(30), values[2])
	assert.InDelta(t, float32(120)/graphSamples, g.Average(), 1e-5)
}

func TestPerfGraphFasterCadence(t *testing.T) {
	g := NewPerfGraph()
	g.Sample(PerfStats{Uptime: 0.95, FPS: 10}, 10)
	_, offset := g.Values()
	assert.Equal(t, 10, offset)
}
