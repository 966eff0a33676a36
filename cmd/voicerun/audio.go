package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/voice"
)

// Audio source kinds accepted by --source
const (
	sourceMic  = "mic"
	sourceWAV  = "wav"
	sourceNone = "none"
)

var (
	flagSource string
	flagWAV    string
	flagDevice string
)

// openSource builds the audio source selected on the command line.
// A nil source with a nil error means voice control is disabled.
func openSource(kind string, cfg config.VoiceConfig) (voice.Source, error) {
	switch kind {
	case sourceMic:
		return &voice.Microphone{
			DeviceName: flagDevice,
			SampleRate: cfg.SampleRate,
			PeriodSize: cfg.BufferSize,
		}, nil
	case sourceWAV:
		if flagWAV == "" {
			return nil, errors.New("--wav is required with --source wav")
		}
		return &voice.WAVFile{Path: flagWAV, ChunkSize: cfg.BufferSize, Loop: true}, nil
	case sourceNone:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown source %q (want %s, %s or %s)", kind, sourceMic, sourceWAV, sourceNone)
}

// newController wraps src in a controller sized by cfg.
func newController(src voice.Source, cfg config.VoiceConfig, logger *log.Logger) *voice.Controller {
	if src == nil {
		return nil
	}
	return voice.NewController(src, voice.Options{
		WindowSize: cfg.WindowSize,
		BufferSize: cfg.BufferSize,
		Logger:     logger,
	})
}

// newLogger returns the logger shared by every command.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "voicerun",
	})
}

// openLog creates a logger writing to path. The terminal belongs to the
// TUI while playing, so an empty path discards log output.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() { _ = f.Close() }, nil
}
