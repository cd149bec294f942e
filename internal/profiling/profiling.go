package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU phase timers shown in the performance panel.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("scene.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// Phase is one named timer of the current frame.
type Phase struct {
	Name string
	Dur  time.Duration
}

// Phases returns the current frame's timers, longest first.
func Phases() []Phase {
	ss := Snapshot()
	list := make([]Phase, 0, len(ss))
	for k, v := range ss {
		list = append(list, Phase{Name: k, Dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Dur == list[j].Dur {
			return list[i].Name < list[j].Name
		}
		return list[i].Dur > list[j].Dur
	})
	return list
}

// TopN formats the n longest timers of the current frame.
// Example: "scene.Render:4.2ms, gui.Render:2.1ms"
func TopN(n int) string {
	list := Phases()
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.Name+":"+FormatMs(p.Dur))
	}
	return strings.Join(parts, ", ")
}

// FormatMs renders d in milliseconds with one decimal, dropping ".0".
func FormatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
