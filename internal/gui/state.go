package gui

import (
	"glscene/internal/profiling"
)

// Panels holds which windows are shown. It is the only GUI state that
// survives a window being toggled off and on.
type Panels struct {
	Scene       bool
	Console     bool
	Performance bool
	Demo        bool
	About       bool
	Controls    bool
}

// DefaultPanels opens the scene, console and performance windows.
func DefaultPanels() Panels {
	return Panels{Scene: true, Console: true, Performance: true}
}

// ConsoleScroll decides when the console should jump to its last line.
type ConsoleScroll struct {
	lastLen int
}

// Changed reports whether the buffer length differs from the previous call.
func (c *ConsoleScroll) Changed(length int) bool {
	changed := length != c.lastLen
	c.lastLen = length
	return changed
}

const (
	graphSamples = 60
	graphMin     = 0
	graphMax     = 60
	graphHeight  = 80
)

// PerfStats is the per-frame input to the performance panel.
type PerfStats struct {
	Uptime     float64 // seconds since start
	FPS        float32
	MsPerFrame float32
	Phases     []profiling.Phase // timings of the previous frame
}

// PerfGraph keeps the rolling frame-rate history plotted by the performance panel.
type PerfGraph struct {
	graph *profiling.RateGraph
}

// NewPerfGraph returns a graph holding 60 samples.
func NewPerfGraph() *PerfGraph {
	return &PerfGraph{graph: profiling.NewRateGraph(graphSamples)}
}

// Sample records stats.FPS at speed samples per second of uptime.
func (p *PerfGraph) Sample(stats PerfStats, speed float32) {
	p.graph.Update(stats.Uptime, stats.FPS, speed)
}

// Values returns the samples and the index of the oldest one.
func (p *PerfGraph) Values() ([]float32, int) {
	return p.graph.Ring.Values(), p.graph.Ring.Offset()
}

// Average is the mean of the plotted window.
func (p *PerfGraph) Average() float32 {
	return p.graph.Ring.Average()
}
