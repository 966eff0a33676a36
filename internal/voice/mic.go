package voice

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gen2brain/malgo"
)

// Microphone captures mono float32 audio from a capture device via miniaudio.
type Microphone struct {
	DeviceName string // Empty selects the system default
	SampleRate int
	PeriodSize int // Frames per device callback
}

// Name implements Source.
func (m *Microphone) Name() string {
	if m.DeviceName == "" {
		return "microphone"
	}
	return "microphone:" + m.DeviceName
}

// Stream implements Source. The device is held until ctx is cancelled.
func (m *Microphone) Stream(ctx context.Context, fn func([]float32)) error {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("%w: init context: %v", ErrDeviceUnavailable, err)
	}
	defer func() {
		_ = mctx.Uninit()
		mctx.Free()
	}()

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatF32
	cfg.Capture.Channels = 1
	cfg.SampleRate = uint32(m.SampleRate)
	cfg.PeriodSizeInFrames = uint32(m.PeriodSize)

	if m.DeviceName != "" {
		devices, err := mctx.Devices(malgo.Capture)
		if err != nil {
			return fmt.Errorf("%w: list devices: %v", ErrDeviceUnavailable, err)
		}
		found := false
		for _, d := range devices {
			if d.Name() == m.DeviceName {
				cfg.Capture.DeviceID = d.ID.Pointer()
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: no capture device named %q", ErrDeviceUnavailable, m.DeviceName)
		}
	}

	// The device callback runs on a miniaudio thread; hand chunks over so
	// fn is always called from this goroutine.
	chunks := make(chan []float32, 16)
	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, frames uint32) {
			samples := decodeF32(input, int(frames))
			select {
			case chunks <- samples:
			default: // Consumer is behind; drop rather than block the device
			}
		},
	}

	device, err := malgo.InitDevice(mctx.Context, cfg, callbacks)
	if err != nil {
		return fmt.Errorf("%w: open device: %v", ErrDeviceUnavailable, err)
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return fmt.Errorf("%w: start device: %v", ErrDeviceUnavailable, err)
	}
	defer device.Stop() //nolint:errcheck // Device is torn down right after

	for {
		select {
		case <-ctx.Done():
			return nil
		case samples := <-chunks:
			fn(samples)
		}
	}
}

// decodeF32 converts little-endian float32 frames of a mono stream.
func decodeF32(raw []byte, frames int) []float32 {
	if n := len(raw) / 4; frames > n {
		frames = n
	}
	out := make([]float32, frames)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out
}

// CaptureDevices lists the names of the capture devices miniaudio can open.
func CaptureDevices() ([]string, error) {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: init context: %v", ErrDeviceUnavailable, err)
	}
	defer func() {
		_ = mctx.Uninit()
		mctx.Free()
	}()

	devices, err := mctx.Devices(malgo.Capture)
	if err != nil {
		return nil, fmt.Errorf("%w: list devices: %v", ErrDeviceUnavailable, err)
	}
	names := make([]string, 0, len(devices))
	for _, d := range devices {
		names = append(names, d.Name())
	}
	return names, nil
}
