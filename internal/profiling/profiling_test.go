package profiling

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRingPushWraps(t *testing.T) {
	r := NewSampleRing(3)
	r.Push(1)
	r.Push(2)
	assert.Equal(t, 2, r.Offset())

	r.Push(3)
	r.Push(4)
	assert.Equal(t, []float32{4, 2, 3}, r.Values())
	assert.Equal(t, 1, r.Offset())
	assert.InDelta(t, 3.0, r.Average(), 1e-6)
}

func TestSampleRingAverageCountsEmptySlots(t *testing.T) {
	r := NewSampleRing(60)
	r.Push(60)
	assert.InDelta(t, 1.0, r.Average(), 1e-6)
	assert.Equal(t, 60, r.Len())
}

func TestRateGraphCadence(t *testing.T) {
	g := NewRateGraph(60)

	// First update catches up from time zero.
	assert.Equal(t, 3, g.Update(2.5, 30, 1))
	// Less than one interval later nothing is pushed.
	assert.Equal(t, 0, g.Update(2.9, 30, 1))
	assert.Equal(t, 1, g.Update(3.1, 30, 1))

	// Faster cadence pushes more samples per second.
	assert.Equal(t, 8, g.Update(6.0, 30, 4))
	assert.Equal(t, 0, g.Update(7.0, 30, 0))
}

func TestFrameRate(t *testing.T) {
	f := NewFrameRate(4)
	assert.Zero(t, f.FPS())

	for i := 0; i < 4; i++ {
		f.Add(1.0 / 60.0)
	}
	assert.InDelta(t, 60.0, f.FPS(), 1e-3)
	assert.InDelta(t, 16.667, f.MsPerFrame(), 1e-2)

	// Window slides: four 30 Hz frames replace the 60 Hz ones.
	for i := 0; i < 4; i++ {
		f.Add(1.0 / 30.0)
	}
	assert.InDelta(t, 30.0, f.FPS(), 1e-3)

	f.Add(0)
	assert.InDelta(t, 30.0, f.FPS(), 1e-3)
}

func TestTrackAndTopN(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	mu.Lock()
	frameTotals["scene.Render"] = 4200 * time.Microsecond
	frameTotals["gui.Render"] = 2 * time.Millisecond
	mu.Unlock()

	stop := Track("input.Poll")
	stop()

	phases := Phases()
	require.Len(t, phases, 3)
	assert.Equal(t, "scene.Render", phases[0].Name)

	top := TopN(2)
	assert.Equal(t, "scene.Render:4.2ms, gui.Render:2ms", top)
	assert.True(t, strings.HasPrefix(TopN(10), "scene.Render"))

	ResetFrame()
	assert.Empty(t, Snapshot())
}
