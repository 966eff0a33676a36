package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voicerun/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the runner variants",
	Long:  `Shows every registered runner variant with its default rules.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	nameLen, titleLen := len("Variant"), len("Title")
	for _, v := range variants {
		nameLen = max(nameLen, len(v.Variant))
		titleLen = max(titleLen, len(v.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", nameLen, "Variant", titleLen, "Title", "Rules")
	fmt.Printf("  %-*s  %-*s  %s\n", nameLen, "-------", titleLen, "-----", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-*s  %s\n", nameLen, v.Variant, titleLen, v.Title, v.Description)
	}

	fmt.Println()
	fmt.Println("Run 'voicerun play <variant>' to play a variant.")
}
