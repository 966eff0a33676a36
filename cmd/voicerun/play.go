package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
	"github.com/vovakirdan/voicerun/internal/games/runner"
	"github.com/vovakirdan/voicerun/internal/platform/tui"
	"github.com/vovakirdan/voicerun/internal/registry"
)

var (
	flagConfig string
	flagLog    string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a runner variant",
	Long: `Start playing the specified variant (default: coins).

Controls:
  Voice          - Louder jumps higher, sustained volume runs faster
  Enter/Space    - Press the start button (or click it)
  P/Esc          - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Audio sources:
  mic   - Default capture device, or --device <name>
  wav   - Replay a WAV file in real time (--wav <file>), looped
  none  - No voice control; the character only runs

Examples:
  voicerun play
  voicerun play classic
  voicerun play --device "USB Microphone"
  voicerun play --source wav --wav ./shout.wav --seed 42
  voicerun play --config ./my-coins.yaml --log ./voicerun.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagSource, "source", sourceMic, "Audio source: mic, wav, none")
	playCmd.Flags().StringVar(&flagWAV, "wav", "", "WAV file for --source wav")
	playCmd.Flags().StringVar(&flagDevice, "device", "", "Capture device name (default: system default)")
	playCmd.Flags().StringVar(&flagLog, "log", "", "Write logs to this file")
}

// variantArg returns the registered variant named in args, or the coins
// variant.
func variantArg(args []string) (config.Variant, error) {
	if len(args) == 0 {
		return config.VariantCoins, nil
	}
	return registry.Resolve(args[0])
}

func runPlay(cmd *cobra.Command, args []string) {
	variant, err := variantArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", strings.Join(args, " "))
		fmt.Fprintln(os.Stderr, "Run 'voicerun list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := openLog(flagLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// A broken --config is reported up front instead of silently using defaults
	runnerCfg, err := config.Load(variant, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	runner.SetConfigPath(flagConfig)

	src, err := openSource(flagSource, runnerCfg.Voice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "variant", variant, "source", flagSource, "fps", flagFPS)

	runErr := tui.Run(game, cfg, tui.Options{
		Voice:  newController(src, runnerCfg.Voice, logger),
		Logger: logger,
	})
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
