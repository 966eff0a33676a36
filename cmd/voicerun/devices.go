package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voicerun/internal/voice"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List audio capture devices",
	Long:  `Shows the capture devices that can be passed to --device.`,
	RunE:  runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	names, err := voice.CaptureDevices()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No capture devices found.")
		return nil
	}
	for _, n := range names {
		fmt.Printf("  %s\n", n)
	}
	return nil
}
