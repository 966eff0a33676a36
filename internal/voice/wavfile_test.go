package voice

import (
	"context"
	"errors"
	"testing"
	"time"
)

// sliceStreamer is an in-memory beep.StreamSeeker.
type sliceStreamer struct {
	samples [][2]float64
	pos     int
	err     error
}

func (s *sliceStreamer) Stream(out [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy(out, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sliceStreamer) Err() error    { return s.err }
func (s *sliceStreamer) Len() int      { return len(s.samples) }
func (s *sliceStreamer) Position() int { return s.pos }

func (s *sliceStreamer) Seek(p int) error {
	s.pos = p
	return nil
}

func stereo(left, right float64, n int) [][2]float64 {
	out := make([][2]float64, n)
	for i := range out {
		out[i] = [2]float64{left, right}
	}
	return out
}

func TestPumpMixesToMonoAndEnds(t *testing.T) {
	s := &sliceStreamer{samples: stereo(1, 0, 10)}
	tick := make(chan time.Time, 10)
	for range 10 {
		tick <- time.Time{}
	}

	var got []float32
	err := pump(context.Background(), s, 4, tick, false, func(b []float32) {
		got = append(got, b...)
	})
	if err != nil {
		t.Fatalf("pump() failed: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("delivered %d samples, expected 10", len(got))
	}
	for i, v := range got {
		if v != 0.5 {
			t.Fatalf("sample %d = %v, expected mono mix 0.5", i, v)
		}
	}
}

func TestPumpLoopsUntilCancelled(t *testing.T) {
	s := &sliceStreamer{samples: stereo(0.2, 0.2, 3)}
	tick := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())

	delivered := 0
	done := make(chan error, 1)
	go func() {
		done <- pump(ctx, s, 4, tick, true, func(b []float32) {
			delivered += len(b)
		})
	}()

	// Each tick reads up to one chunk; the end of data rewinds
	for range 6 {
		tick <- time.Time{}
	}
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("pump() failed: %v", err)
	}
	if delivered < 6 {
		t.Errorf("looping source delivered %d samples, expected at least 6", delivered)
	}
}

func TestPumpReportsStreamError(t *testing.T) {
	cause := errors.New("corrupt data")
	s := &sliceStreamer{err: cause}
	tick := make(chan time.Time, 1)
	tick <- time.Time{}

	err := pump(context.Background(), s, 4, tick, true, func([]float32) {})
	if !errors.Is(err, cause) {
		t.Errorf("pump() = %v, expected stream error", err)
	}
}

func TestWAVFileMissing(t *testing.T) {
	w := &WAVFile{Path: "does-not-exist.wav"}
	err := w.Stream(context.Background(), func([]float32) {})
	if !errors.Is(err, ErrDeviceUnavailable) {
		t.Errorf("Stream() = %v, expected ErrDeviceUnavailable", err)
	}
}
