package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List rule profiles",
	Long:  `Shows the rule profiles accepted by 'lander play [profile]'.`,
	Run:   runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) {
	profiles := config.Profiles()

	fmt.Println("Available profiles:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := len("Profile")
	for _, p := range profiles {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Profile", "Rules")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "-------", "-----")

	// Print profiles, default first
	for i, p := range profiles {
		desc := p.Description
		if i == 0 {
			desc += " (default)"
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, p.Name, desc)
	}

	fmt.Println()
	fmt.Println("Run 'lander play <profile>' to fly with a profile.")
}
