package voice

import (
	"context"
	"errors"
)

var (
	// ErrNoSource is returned when a controller is started without a source.
	ErrNoSource = errors.New("voice: no audio source")

	// ErrDeviceUnavailable wraps failures to open a capture device,
	// including the platform refusing microphone access.
	ErrDeviceUnavailable = errors.New("voice: capture device unavailable")
)

// Source produces mono PCM samples in [-1, 1].
//
// Stream calls fn with each chunk of samples as it becomes available, from a
// single goroutine, until ctx is cancelled or the source is exhausted. Chunk
// sizes are arbitrary; the controller re-frames them. fn must not retain the
// slice.
type Source interface {
	Name() string
	Stream(ctx context.Context, fn func(samples []float32)) error
}
