package profiling

// SampleRing is a fixed-capacity circular buffer of float samples. Offset is
// the index of the oldest sample, which is the form line plots expect.
type SampleRing struct {
	values []float32
	offset int
}

// NewSampleRing returns a ring holding capacity samples, all zero.
func NewSampleRing(capacity int) *SampleRing {
	if capacity < 1 {
		capacity = 1
	}
	return &SampleRing{values: make([]float32, capacity)}
}

// Push overwrites the oldest sample with v.
func (r *SampleRing) Push(v float32) {
	r.values[r.offset] = v
	r.offset = (r.offset + 1) % len(r.values)
}

// Average is the mean over the whole capacity; unfilled slots count as zero.
func (r *SampleRing) Average() float32 {
	var sum float32
	for _, v := range r.values {
		sum += v
	}
	return sum / float32(len(r.values))
}

// Values exposes the backing slice for plotting. Callers must not modify it.
func (r *SampleRing) Values() []float32 { return r.values }

// Offset returns the index of the oldest sample.
func (r *SampleRing) Offset() int { return r.offset }

// Len returns the ring capacity.
func (r *SampleRing) Len() int { return len(r.values) }

// RateGraph records a value into a SampleRing at a fixed cadence of speed
// samples per second of wall time, independent of the frame rate.
type RateGraph struct {
	Ring        *SampleRing
	refreshTime float64
}

// NewRateGraph returns a graph with capacity samples.
func NewRateGraph(capacity int) *RateGraph {
	return &RateGraph{Ring: NewSampleRing(capacity)}
}

// Update pushes v once for every refresh interval elapsed up to now (seconds).
// It returns the number of samples pushed.
func (g *RateGraph) Update(now float64, v float32, speed float32) int {
	if speed <= 0 {
		return 0
	}
	n := 0
	for g.refreshTime < now {
		g.Ring.Push(v)
		g.refreshTime += 1.0 / float64(speed)
		n++
	}
	return n
}

// FrameRate estimates frames per second as a moving average over the last
// window frame deltas.
type FrameRate struct {
	deltas []float64
	next   int
	count  int
	sum    float64
}

// NewFrameRate averages over window frames.
func NewFrameRate(window int) *FrameRate {
	if window < 1 {
		window = 1
	}
	return &FrameRate{deltas: make([]float64, window)}
}

// Add records one frame delta in seconds. Non-positive deltas are ignored.
func (f *FrameRate) Add(dt float64) {
	if dt <= 0 {
		return
	}
	f.sum -= f.deltas[f.next]
	f.deltas[f.next] = dt
	f.sum += dt
	f.next = (f.next + 1) % len(f.deltas)
	if f.count < len(f.deltas) {
		f.count++
	}
}

// FPS returns the averaged frame rate, 0 before any frame was recorded.
func (f *FrameRate) FPS() float32 {
	if f.count == 0 || f.sum <= 0 {
		return 0
	}
	return float32(float64(f.count) / f.sum)
}

// MsPerFrame returns the averaged frame time in milliseconds.
func (f *FrameRate) MsPerFrame() float32 {
	fps := f.FPS()
	if fps == 0 {
		return 0
	}
	return 1000.0 / fps
}
