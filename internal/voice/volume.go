// Package voice turns live audio into runner controls. It measures the
// signal energy of each audio buffer and maps it to a jump impulse and a
// scroll speed.
package voice

import "math"

// Neutral is the byte value of a silent sample in the time-domain byte view.
const Neutral = 128

// Volume returns the root-mean-square deviation of buf from Neutral.
// An empty buffer has zero volume.
func Volume(buf []uint8) float64 {
	if len(buf) == 0 {
		return 0
	}
	var sum float64
	for _, b := range buf {
		d := float64(b) - Neutral
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(buf)))
}

// ToBytes converts float PCM samples in [-1, 1] to the unsigned byte view
// where 128 is silence, appending to dst. Out-of-range samples saturate.
func ToBytes(dst []uint8, samples []float32) []uint8 {
	for _, s := range samples {
		v := math.Floor(Neutral * (1 + float64(s)))
		switch {
		case v < 0:
			v = 0
		case v > 255:
			v = 255
		}
		dst = append(dst, uint8(v))
	}
	return dst
}
