package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/voice"
)

var flagDuration time.Duration

var meterCmd = &cobra.Command{
	Use:   "meter [variant]",
	Short: "Calibrate voice control",
	Long: `Run only the audio side and log every loud reading with the jump
impulse and speed it would produce, followed by a summary.

Use it to pick a voice.threshold and voice.reference for your microphone.

Examples:
  voicerun meter
  voicerun meter classic --duration 30s
  voicerun meter --source wav --wav ./shout.wav`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMeter,
}

func init() {
	meterCmd.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "How long to listen")
	meterCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	meterCmd.Flags().StringVar(&flagSource, "source", sourceMic, "Audio source: mic, wav")
	meterCmd.Flags().StringVar(&flagWAV, "wav", "", "WAV file for --source wav")
	meterCmd.Flags().StringVar(&flagDevice, "device", "", "Capture device name (default: system default)")
}

// meterStats summarises the readings of one calibration run.
type meterStats struct {
	count int
	loud  int
	peak  float64
	sum   float64
}

func (s *meterStats) add(v float64, loud bool) {
	s.count++
	s.sum += v
	s.peak = max(s.peak, v)
	if loud {
		s.loud++
	}
}

func (s meterStats) mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

func runMeter(cmd *cobra.Command, args []string) error {
	variant, err := variantArg(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(variant, flagConfig)
	if err != nil {
		return err
	}

	src, err := openSource(flagSource, cfg.Voice)
	if err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("meter needs an audio source, got --source %s", flagSource)
	}

	logger := newLogger(os.Stderr)
	mapping := voice.NewMapping(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	ctrl := newController(src, cfg.Voice, logger)
	ctrl.Start(ctx)

	logger.Info("listening", "source", src.Name(), "duration", flagDuration, "threshold", mapping.Threshold)

	var stats meterStats
	for r := range ctrl.Readings() {
		loud := mapping.Loud(r.Volume)
		stats.add(r.Volume, loud)
		if !loud {
			logger.Debug("reading", "volume", r.Volume)
			continue
		}
		logger.Info("jump",
			"volume", fmt.Sprintf("%.1f", r.Volume),
			"impulse", fmt.Sprintf("%.1f", mapping.Impulse(r.Volume)),
			"speed", fmt.Sprintf("%.1f", mapping.Speed(r.Volume)),
		)
	}

	status, statusErr := ctrl.Status()
	if status == voice.StatusUnavailable {
		return fmt.Errorf("voice control unavailable: %w", statusErr)
	}

	logger.Info("done",
		"readings", stats.count,
		"loud", stats.loud,
		"peak", fmt.Sprintf("%.1f", stats.peak),
		"mean", fmt.Sprintf("%.1f", stats.mean()),
		"dropped", ctrl.Dropped(),
	)
	return nil
}
