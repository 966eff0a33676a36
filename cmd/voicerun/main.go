// voicerun is an endless runner for the terminal that you play with your voice.
//
// Usage:
//
//	voicerun list              - List runner variants
//	voicerun play [variant]    - Play (default: coins)
//	voicerun meter [variant]   - Calibrate: print volume, jump and speed per reading
//	voicerun devices           - List capture devices
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the runner to register its variants
	_ "github.com/vovakirdan/voicerun/internal/games/runner"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voicerun",
	Short: "Voice Runner - an endless runner you play with your voice",
	Long: `Voice Runner is a terminal endless runner controlled by microphone
volume. Make a sound to jump: the louder, the higher. Keep it up to run
faster. Coins on top of obstacles add to your score.

Available commands:
  list     - Show the runner variants
  play     - Play a variant
  meter    - Calibrate your microphone
  devices  - List capture devices

Examples:
  voicerun play
  voicerun play classic --source wav --wav ./shout.wav
  voicerun meter --duration 10s`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(meterCmd)
	rootCmd.AddCommand(devicesCmd)
}
