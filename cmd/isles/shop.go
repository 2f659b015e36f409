package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letter-isles/internal/decor"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List the decoration catalog",
	Long: `Show every decoration purchasable in build mode, grouped by
category, with its price in stars or gems.`,
	Run: runShop,
}

func runShop(cmd *cobra.Command, args []string) {
	for _, category := range decor.Categories() {
		fmt.Printf("%s\n", category)
		for _, item := range decor.ByCategory(category) {
			unit := "*"
			if item.Currency == decor.Gems {
				unit = "#"
			}
			fmt.Printf("  %-18s %-16s %3d %s\n", item.ID, item.Name, item.Cost, unit)
		}
		fmt.Println()
	}
	fmt.Println("Earn stars by crashing letters, gems from portals and all-clears.")
}
