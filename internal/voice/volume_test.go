package voice

import (
	"math"
	"testing"
)

func TestVolume(t *testing.T) {
	tests := []struct {
		name     string
		buf      []uint8
		expected float64
	}{
		{"empty", nil, 0},
		{"silence", []uint8{128, 128, 128, 128}, 0},
		{"constant offset", []uint8{138, 138, 138, 138}, 10},
		{"symmetric swing", []uint8{118, 138, 118, 138}, 10},
		{"full scale", []uint8{0, 0}, 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Volume(tc.buf); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Volume() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestToBytes(t *testing.T) {
	got := ToBytes(nil, []float32{0, 0.5, -0.5, 1, -1, 2, -2})
	expected := []uint8{128, 192, 64, 255, 0, 255, 0}

	if len(got) != len(expected) {
		t.Fatalf("ToBytes() returned %d bytes, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("ToBytes()[%d] = %d, expected %d", i, got[i], expected[i])
		}
	}
}

func TestAnalyserEmitsOncePerBuffer(t *testing.T) {
	a := NewAnalyser(4, 8)

	if v := a.Write(constant(0.5, 7)); len(v) != 0 {
		t.Fatalf("7 samples should not complete a buffer, got %v", v)
	}
	v := a.Write(constant(0.5, 1))
	if len(v) != 1 {
		t.Fatalf("8th sample should complete a buffer, got %d readings", len(v))
	}
	if v[0] != 64 {
		t.Errorf("volume = %v, expected 64", v[0])
	}

	// Two buffers in one chunk yield two readings, each over the latest window
	v = a.Write(append(constant(0.5, 8), constant(0, 8)...))
	if len(v) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(v))
	}
	if v[0] != 64 || v[1] != 0 {
		t.Errorf("readings = %v, expected [64 0]", v)
	}
}

func TestAnalyserPartialWindow(t *testing.T) {
	a := NewAnalyser(256, 2)
	v := a.Write([]float32{0.5, 0.5})
	if len(v) != 1 || v[0] != 64 {
		t.Errorf("partial window should measure only received samples, got %v", v)
	}
}

func constant(v float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}
