package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/feed-glutt/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available frontends",
	Long:  `Shows every frontend that can be selected with --frontend.`,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	maxLen := len("Name")
	for _, f := range frontends {
		maxLen = max(maxLen, len(f.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----------")
	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxLen, f.Name, f.Description)
	}

	fmt.Println()
	fmt.Println("Run 'glutt --frontend <name>' to play with one.")
}
