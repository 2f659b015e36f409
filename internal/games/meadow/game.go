package meadow

import (
	"fmt"
	"time"

	"github.com/vovakirdan/letter-isles/internal/config"
	"github.com/vovakirdan/letter-isles/internal/core"
	"github.com/vovakirdan/letter-isles/internal/fx"
	"github.com/vovakirdan/letter-isles/internal/grid"
	"github.com/vovakirdan/letter-isles/internal/registry"
)

// Package-level hooks set by the CLI before the game is created.
var (
	configPath string
	fxBus      *fx.Bus
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetFxBus installs the effect cue bus shared with the platform layer.
func SetFxBus(b *fx.Bus) {
	fxBus = b
}

// Game hosts a meadow session behind the platform game interface. The
// cursor is moved with the arrow keys; confirm pathfinds from the player
// to the cursor and starts walking.
type Game struct {
	cfg         config.MeadowConfig
	store       *Store
	now         func() time.Time
	tick        uint64
	cursor      grid.Position
	blocked     map[grid.Position]bool
	nextStepAt  time.Time
	vanishCycle time.Duration

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a meadow game.
func New() *Game {
	return &Game{now: time.Now}
}

func init() {
	registry.Register("meadow", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "meadow" }

// Title returns the display name.
func (g *Game) Title() string { return "Meadow Collector" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadMeadow(configPath)
	if err != nil {
		loaded = config.DefaultMeadowConfig()
	}
	g.cfg = loaded
	g.store = NewStore()
	g.store.SetComboTuning(loaded.Combo.Multipliers, time.Duration(loaded.Combo.WindowMs)*time.Millisecond)
	g.vanishCycle = time.Duration(loaded.Vanish.CycleMs) * time.Millisecond
	g.tick = 0
	g.cursor = grid.PlayerStart
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < grid.MeadowLayout.Cols()*2+4 || cfg.ScreenH < grid.MeadowLayout.Rows()+6
	g.nextStepAt = time.Time{}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	now := g.now()

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.store.ResetGame()
		g.cursor = grid.PlayerStart
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.blocked = grid.BlockedAt(now, g.vanishCycle)

	g.moveCursor(in)
	if in.Has(core.ActionToggle) {
		g.store.ToggleDayNight()
	}
	if in.Has(core.ActionRotate) {
		g.store.RotateCamera(1)
	}
	if in.Has(core.ActionConfirm) {
		g.clickTile(now)
	}

	g.walk(now)
	g.expirePopups(now)

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	c := g.cursor
	if in.Has(core.ActionUp) {
		c.Z--
	}
	if in.Has(core.ActionDown) {
		c.Z++
	}
	if in.Has(core.ActionLeft) {
		c.X--
	}
	if in.Has(core.ActionRight) {
		c.X++
	}
	c.X = core.Clamp(c.X, 0, grid.MeadowLayout.Cols()-1)
	c.Z = core.Clamp(c.Z, 0, grid.MeadowLayout.Rows()-1)
	g.cursor = c
}

// clickTile is the tile-click intent: pathfind to the cursor and start
// walking. Unreachable targets are a silent no-op.
func (g *Game) clickTile(now time.Time) {
	path := grid.FindPath(g.store.Player.Pos, g.cursor, grid.MeadowLayout, g.blocked)
	if path == nil {
		return
	}
	g.store.StartMove(path)
	g.nextStepAt = now // First step lands immediately.
}

// walk consumes the move path at the configured wall-clock interval.
func (g *Game) walk(now time.Time) {
	if !g.store.Player.IsMoving && len(g.store.Player.MovePath) == 0 {
		return
	}
	if now.Before(g.nextStepAt) {
		return
	}

	scoreBefore := g.store.Score
	wonBefore := g.store.Phase == PhaseWon
	g.store.AdvanceStep(now)
	g.nextStepAt = now.Add(time.Duration(g.cfg.Movement.StepIntervalMs) * time.Millisecond)

	if fxBus != nil && g.store.Score != scoreBefore {
		fxBus.Sound("collect")
	}
	if fxBus != nil && !wonBefore && g.store.Phase == PhaseWon {
		fxBus.Sound("fanfare")
	}
}

func (g *Game) expirePopups(now time.Time) {
	ttl := time.Duration(g.cfg.Popups.DurationMs) * time.Millisecond
	for _, p := range append([]Popup{}, g.store.Popups...) {
		if now.Sub(p.ShownAt) > ttl {
			g.store.RemovePopup(p.ID)
		}
	}
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.store.Score,
		GameOver: false,
		Paused:   g.paused,
	}
}

// Render draws the meadow, collectibles, player, and HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	hud := fmt.Sprintf("Score %d   Combo x%d   %d/%d collected", g.store.Score, g.store.Combo, len(g.store.Collected), len(Spawns))
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)
	if g.store.Hint != "" {
		dst.DrawTextColored(1, 1, g.store.Hint, core.ColorGray)
	}

	offX, offY := 2, 3
	now := g.now()
	for z := 0; z < grid.MeadowLayout.Rows(); z++ {
		for x := 0; x < grid.MeadowLayout.Cols(); x++ {
			pos := grid.Position{X: x, Z: z}
			sx, sy := offX+x*2, offY+z
			if !grid.MeadowLayout.Walkable(x, z) {
				continue
			}

			ch, col := '.', core.ColorGreen
			if !g.store.IsDay {
				col = core.ColorCyan
			}
			switch grid.PhaseAt(pos, now, g.vanishCycle) {
			case grid.VanishWarn:
				ch, col = '~', core.ColorYellow
			case grid.VanishGone:
				ch, col = ' ', core.ColorDefault
			case grid.VanishAppear:
				ch, col = ',', core.ColorGray
			}
			dst.SetCell(sx, sy, ch, col)
		}
	}

	for idx, spawn := range Spawns {
		if g.store.Collected[idx] {
			continue
		}
		meta := Metas[spawn.Type]
		dst.SetCell(offX+spawn.Pos.X*2, offY+spawn.Pos.Z, meta.Rune, core.ColorYellow)
	}

	for _, step := range g.store.Player.MovePath {
		dst.SetCell(offX+step.X*2, offY+step.Z, '+', core.ColorGray)
	}

	dst.SetCell(offX+g.cursor.X*2, offY+g.cursor.Z, '?', core.ColorMagenta)
	dst.SetCell(offX+g.store.Player.Pos.X*2, offY+g.store.Player.Pos.Z, '@', core.ColorBrightWhite)

	line := offY + grid.MeadowLayout.Rows() + 1
	for _, p := range g.store.Popups {
		if line >= dst.Height() {
			break
		}
		dst.DrawTextColored(1, line, fmt.Sprintf("+%d (x%d)", p.Points, p.Combo), core.ColorBrightYellow)
		line++
	}

	if g.store.Phase == PhaseWon {
		dst.DrawTextCentered(dst.Height()/2, "*** MEADOW CLEARED! ***")
	}
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2+1, "PAUSED")
	}
}
