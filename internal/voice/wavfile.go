package voice

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// WAVFile replays a recording as if it were live microphone input,
// paced in real time.
type WAVFile struct {
	Path      string
	ChunkSize int  // Frames delivered per tick (default 512)
	Loop      bool // Restart from the beginning at end of file
}

// Name implements Source.
func (w *WAVFile) Name() string {
	return "wav:" + w.Path
}

// Stream implements Source.
func (w *WAVFile) Stream(ctx context.Context, fn func([]float32)) error {
	f, err := os.Open(w.Path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("voice: decode %s: %w", w.Path, err)
	}
	defer streamer.Close()

	chunk := w.ChunkSize
	if chunk <= 0 {
		chunk = 512
	}

	ticker := time.NewTicker(format.SampleRate.D(chunk))
	defer ticker.Stop()

	return pump(ctx, streamer, chunk, ticker.C, w.Loop, fn)
}

// pump reads chunk frames from s on every tick, mixes them down to mono and
// hands them to fn.
func pump(ctx context.Context, s beep.StreamSeeker, chunk int, tick <-chan time.Time, loop bool, fn func([]float32)) error {
	frames := make([][2]float64, chunk)
	mono := make([]float32, chunk)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}

		n, ok := s.Stream(frames)
		for i := 0; i < n; i++ {
			mono[i] = float32((frames[i][0] + frames[i][1]) / 2)
		}
		if n > 0 {
			fn(mono[:n])
		}
		if ok {
			continue
		}

		if err := s.Err(); err != nil {
			return fmt.Errorf("voice: stream: %w", err)
		}
		if !loop {
			return nil
		}
		if err := s.Seek(0); err != nil {
			return fmt.Errorf("voice: rewind: %w", err)
		}
	}
}
