package voice

import "time"

// Reading is the outcome of processing one audio buffer.
type Reading struct {
	Volume float64
	At     time.Time
}

// Analyser keeps the most recent window of samples and measures it once per
// full buffer, the way a script processor node fires once per buffer.
type Analyser struct {
	window     []float32 // Ring of the latest samples
	pos        int
	filled     int
	bufferSize int
	pending    int // Samples received since the last processed buffer
	scratch    []uint8
}

// NewAnalyser creates an analyser measuring windowSize samples every
// bufferSize samples.
func NewAnalyser(windowSize, bufferSize int) *Analyser {
	return &Analyser{
		window:     make([]float32, windowSize),
		bufferSize: bufferSize,
		scratch:    make([]uint8, 0, windowSize),
	}
}

// Write feeds samples into the analyser and returns the volume of every
// buffer completed by them, oldest first.
func (a *Analyser) Write(samples []float32) []float64 {
	var volumes []float64
	for _, s := range samples {
		a.window[a.pos] = s
		a.pos = (a.pos + 1) % len(a.window)
		if a.filled < len(a.window) {
			a.filled++
		}
		a.pending++
		if a.pending == a.bufferSize {
			a.pending = 0
			volumes = append(volumes, a.Current())
		}
	}
	return volumes
}

// Current measures the samples currently in the window.
// Until the window fills, only the samples seen so far count; they occupy
// the front of the ring.
func (a *Analyser) Current() float64 {
	a.scratch = ToBytes(a.scratch[:0], a.window[:a.filled])
	return Volume(a.scratch)
}
