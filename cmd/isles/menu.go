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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive game picker",
	Long: `Open the interactive menu to pick and play games.
After quitting a game you are returned to the menu.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	width, height := 80, 24
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	bus := fx.NewBus(64)
	var director *audio.Director
	if !flagMute {
		director = audio.NewDirector()
		if audioErr := director.Initialize(); audioErr != nil {
			director = nil
		}
	}
	defer func() {
		if director != nil {
			director.Cleanup()
		}
	}()

	// Wire both games once; hooks are read at Reset time.
	meadow.SetFxBus(bus)
	crash.SetFxBus(bus)
	crash.SetWorldCells(&world.CarCell{}, &world.InputCell{})
	var recorder *stats.Recorder
	if store != nil {
		crash.SetBlobStore(store)
		if r, recErr := stats.NewRecorder(store, time.Now); recErr == nil {
			recorder = r
			crash.SetRecorder(recorder)
		}
	}

	for {
		result, menuErr := tui.RunMenu(store, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		cfg = result.Config
		if result.Quit {
			break
		}

		game, createErr := registry.Create(result.GameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
			os.Exit(1)
		}

		if runErr := tui.Run(game, store, bus, director, cfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
	}

	if recorder != nil {
		//nolint:errcheck // Best-effort bookkeeping on exit
		recorder.Tick()
	}
}
