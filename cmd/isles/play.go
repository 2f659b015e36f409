package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/letter-isles/internal/audio"
	"github.com/vovakirdan/letter-isles/internal/core"
	"github.com/vovakirdan/letter-isles/internal/fx"
	"github.com/vovakirdan/letter-isles/internal/games/crash"
	"github.com/vovakirdan/letter-isles/internal/games/meadow"
	"github.com/vovakirdan/letter-isles/internal/platform/tui"
	"github.com/vovakirdan/letter-isles/internal/registry"
	"github.com/vovakirdan/letter-isles/internal/stats"
	"github.com/vovakirdan/letter-isles/internal/storage"
	"github.com/vovakirdan/letter-isles/internal/world"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Move cursor / drive
  Enter       - Select tile / place decoration / start mini-game
  Space       - Boost (crash)
  T           - Type a word (crash)
  G           - Warp to another dimension (crash)
  B           - Toggle build mode (crash)
  V           - Toggle photo mode (crash)
  N           - Day/night toggle (meadow)
  C           - Rotate camera (meadow)
  P/Esc       - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Examples:
  isles play meadow
  isles play crash
  isles play crash --mute
  isles play crash --config ./my-crash.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'isles list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open storage (scores, saves, stats)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works, nothing persists
		store = nil
	}

	bus := fx.NewBus(64)
	var director *audio.Director
	if !flagMute {
		director = audio.NewDirector()
		if audioErr := director.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
			director = nil
		}
	}

	// Wire game hooks before creation
	var recorder *stats.Recorder
	switch gameID {
	case "meadow":
		meadow.SetConfigPath(flagConfig)
		meadow.SetFxBus(bus)
	case "crash":
		crash.SetConfigPath(flagConfig)
		crash.SetFxBus(bus)
		crash.SetWorldCells(&world.CarCell{}, &world.InputCell{})
		if store != nil {
			crash.SetBlobStore(store)
			recorder, err = stats.NewRecorder(store, time.Now)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: stats unavailable: %v\n", err)
			} else {
				crash.SetRecorder(recorder)
			}
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, store, bus, director, cfg)

	// Fold the session's play time before closing up.
	if recorder != nil {
		//nolint:errcheck // Best-effort bookkeeping on exit
		recorder.Tick()
	}
	if director != nil {
		director.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
