package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letter-isles/internal/stats"
	"github.com/vovakirdan/letter-isles/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show letter-crash play statistics",
	Long: `Display accumulated play statistics for the letter-crash game:
play time, letters crashed, words typed, and dimensions visited.`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	now := time.Now()
	s, err := stats.Read(store, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Good %s! Here is the letter-crash report:\n", stats.GetTimeOfDay(now))
	fmt.Println()
	fmt.Printf("  Play time         %s\n", stats.FormatPlayTime(s.TotalPlayTimeMs))
	fmt.Printf("  Sessions today    %d\n", s.SessionsToday)
	fmt.Printf("  Letters crashed   %d\n", s.TotalLettersCrashed)
	fmt.Printf("  Words typed       %d\n", s.TotalWordsTyped)

	if word := stats.MostTypedWord(s); word != "" {
		fmt.Printf("  Favorite word     %s\n", word)
	}

	if len(s.DimensionsVisited) > 0 {
		names := make([]string, 0, len(s.DimensionsVisited))
		for _, d := range s.DimensionsVisited {
			names = append(names, string(d))
		}
		fmt.Printf("  Dimensions seen   %s\n", strings.Join(names, ", "))
	}

	if len(s.WordHistory) > 0 {
		recent := s.WordHistory
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		fmt.Printf("  Recent words      %s\n", strings.Join(recent, ", "))
	}
}
