package crash

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/letter-isles/internal/config"
	"github.com/vovakirdan/letter-isles/internal/core"
	"github.com/vovakirdan/letter-isles/internal/decor"
	"github.com/vovakirdan/letter-isles/internal/events"
	"github.com/vovakirdan/letter-isles/internal/fx"
	"github.com/vovakirdan/letter-isles/internal/islands"
	"github.com/vovakirdan/letter-isles/internal/minigame"
	"github.com/vovakirdan/letter-isles/internal/registry"
	"github.com/vovakirdan/letter-isles/internal/world"
)

const speechBubbleTTL = 2500 * time.Millisecond

// ProgressRecorder receives gameplay milestones for the stats layer.
// Write errors are the recorder's problem; gameplay ignores them.
type ProgressRecorder interface {
	Word(word string) error
	LetterCrash() error
	DimensionVisit(d islands.Dimension) error
}

// Package-level hooks set by the CLI before the game is created.
var (
	configPath string
	fxBus      *fx.Bus
	blobStore  BlobStore
	carCell    *world.CarCell
	inputCell  *world.InputCell
	recorder   ProgressRecorder
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetFxBus installs the effect cue bus shared with the platform layer.
func SetFxBus(b *fx.Bus) {
	fxBus = b
}

// SetBlobStore installs the save-game store. Without it progress is
// session-only.
func SetBlobStore(s BlobStore) {
	blobStore = s
}

// SetWorldCells installs the shared car/input cells bridging external
// input sources and spectators.
func SetWorldCells(car *world.CarCell, input *world.InputCell) {
	carCell = car
	inputCell = input
}

// SetRecorder installs the play-stats sink.
func SetRecorder(r ProgressRecorder) {
	recorder = r
}

// Game hosts a letter-crash session behind the platform game interface.
// Driving is continuous on the X/Z plane; typed words arrive through
// SubmitWord from the platform's text-entry overlay.
type Game struct {
	cfg    config.CrashConfig
	store  *Store
	picker *events.Picker
	rng    *rand.Rand
	now    func() time.Time
	tick   uint64
	dt     float64

	car   world.CarState
	speed float64

	screenW int
	screenH int
	paused  bool
}

// New creates a crash game.
func New() *Game {
	return &Game{now: time.Now}
}

func init() {
	registry.Register("crash", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "crash" }

// Title returns the display name.
func (g *Game) Title() string { return "Letter Crash" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadCrash(configPath)
	if err != nil {
		loaded = config.DefaultCrashConfig()
	}
	g.cfg = loaded
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.picker = events.NewPicker(g.rng)

	var saver Saver
	if blobStore != nil {
		saver = StoreSaver(blobStore)
	}
	g.store = NewStore(g.rng, saver)
	g.store.SpawnRadius = g.cfg.Letters.SpawnRadius
	if g.cfg.Events.LearnedThreshold > 0 {
		g.store.LearnedThreshold = g.cfg.Events.LearnedThreshold
	}
	if blobStore != nil {
		_ = g.store.Load(blobStore)
	}
	g.store.LearningMode = g.store.ParentSettings.LearningMode || g.store.LearningMode

	g.tick = 0
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)
	g.car = world.CarState{}
	g.speed = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// SubmitWord sanitizes a typed word (trim, uppercase, letters only) and
// spawns its blocks. Implements the platform word-entry contract.
func (g *Game) SubmitWord(raw string) {
	var b strings.Builder
	for _, ch := range strings.ToUpper(strings.TrimSpace(raw)) {
		if ch >= 'A' && ch <= 'Z' {
			b.WriteRune(ch)
		}
	}
	word := b.String()
	if word == "" {
		return
	}

	unlockedBefore := len(g.store.UnlockedBridges)
	g.store.SubmitWord(word)
	if recorder != nil {
		_ = recorder.Word(word)
	}
	if fxBus != nil {
		fxBus.Sound("pop")
		if len(g.store.UnlockedBridges) > unlockedBefore {
			fxBus.Sound("fanfare")
		}
	}
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
		g.car = world.CarState{}
		g.speed = 0
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	raw := g.readRawInput(in)
	g.drive(raw)
	g.publishCar()

	if in.Has(core.ActionWarp) {
		g.warp()
	}
	if in.Has(core.ActionBuild) {
		g.store.SetBuildMode(!g.store.BuildMode)
	}
	if in.Has(core.ActionPhoto) {
		g.store.SetPhotoMode(!g.store.PhotoMode)
	}
	if in.Has(core.ActionConfirm) {
		g.confirm(now)
	}

	g.checkLetterHits(now)
	g.checkIslandCrossing()
	g.tickMiniGame(now)
	g.expireSpeechBubble(now)

	return core.StepResult{State: g.State()}
}

// readRawInput merges per-tick actions with the externally written
// input cell, if one is installed.
func (g *Game) readRawInput(in core.InputFrame) world.RawInput {
	var raw world.RawInput
	if inputCell != nil {
		raw = inputCell.Load()
	}
	raw.Forward = raw.Forward || in.Has(core.ActionUp)
	raw.Backward = raw.Backward || in.Has(core.ActionDown)
	raw.Left = raw.Left || in.Has(core.ActionLeft)
	raw.Right = raw.Right || in.Has(core.ActionRight)
	raw.Boost = raw.Boost || in.Has(core.ActionBoost)
	return raw
}

// drive integrates the car one tick: turn, accelerate toward the input
// direction, apply friction when coasting.
func (g *Game) drive(raw world.RawInput) {
	car := g.cfg.Car

	turn := 0.0
	if raw.Left {
		turn += 1
	}
	if raw.Right {
		turn -= 1
	}
	if raw.StickActive {
		turn = -raw.StickX
	}
	g.car.Rotation += turn * car.TurnRate * g.dt

	throttle := 0.0
	if raw.Forward {
		throttle += 1
	}
	if raw.Backward {
		throttle -= 1
	}
	if raw.StickActive {
		throttle = -raw.StickY
	}
	if g.store.Accessibility.AutoDrive && throttle == 0 {
		throttle = g.autoDriveThrottle()
	}

	maxSpeed := car.MaxSpeed
	if raw.Boost {
		maxSpeed *= car.BoostMultiplier
	}

	if throttle != 0 {
		g.speed += throttle * car.Acceleration * g.dt
	} else {
		// Coast down to a stop.
		drag := car.Friction * g.dt
		if g.speed > drag {
			g.speed -= drag
		} else if g.speed < -drag {
			g.speed += drag
		} else {
			g.speed = 0
		}
	}
	g.speed = core.ClampF(g.speed, -maxSpeed/2, maxSpeed)

	g.car.Position.X += math.Sin(g.car.Rotation) * g.speed * g.dt
	g.car.Position.Z += math.Cos(g.car.Rotation) * g.speed * g.dt
	g.car.IsMoving = g.speed != 0
}

// autoDriveThrottle steers at the nearest letter block and rolls
// forward, as the accessibility assist.
func (g *Game) autoDriveThrottle() float64 {
	target, ok := g.nearestBlock()
	if !ok {
		return 0
	}
	dx := target.Position.X - g.car.Position.X
	dz := target.Position.Z - g.car.Position.Z
	g.car.Rotation = math.Atan2(dx, dz)
	return 0.6
}

func (g *Game) nearestBlock() (LetterBlock, bool) {
	best := LetterBlock{}
	bestDist := math.MaxFloat64
	found := false
	for _, b := range g.store.LetterBlocks {
		d := b.Position.PlaneDist(g.car.Position)
		if d < bestDist {
			best, bestDist, found = b, d, true
		}
	}
	return best, found
}

func (g *Game) publishCar() {
	if carCell != nil {
		carCell.Store(g.car)
	}
}

// warp changes dimension, drawing uniformly among the other enabled
// dimensions. With fewer than two enabled dimensions it is a no-op.
func (g *Game) warp() {
	if g.store.ActiveMiniGame != nil {
		return
	}

	enabled := map[islands.Dimension]bool{}
	for _, d := range g.store.ParentSettings.EnabledDimensions {
		enabled[d] = true
	}
	others := make([]islands.Dimension, 0, len(islands.Dimensions))
	for _, d := range islands.Dimensions {
		if d != g.store.Dimension && enabled[d] {
			others = append(others, d)
		}
	}
	if len(others) == 0 {
		return
	}

	g.store.Dimension = others[g.rng.Intn(len(others))]
	if recorder != nil {
		_ = recorder.DimensionVisit(g.store.Dimension)
	}
	if fxBus != nil {
		fxBus.Emit(fx.Cue{Kind: fx.Sound, Name: "whoosh-magic", Detail: string(g.store.Dimension)})
	}
}

// confirm places a decoration in build mode, otherwise starts a random
// mini-game at the car when none is active.
func (g *Game) confirm(now time.Time) {
	if g.store.BuildMode {
		g.placeOwnedItem()
		return
	}
	if g.store.ActiveMiniGame != nil {
		return
	}
	t := minigame.PickRandom(g.rng)
	g.store.StartMiniGame(t, g.car.Position, now)
	if fxBus != nil {
		fxBus.Sound("chime-cascade")
	}
}

// placeOwnedItem drops the most recently purchased item at the car.
func (g *Game) placeOwnedItem() {
	if len(g.store.OwnedItems) == 0 {
		return
	}
	itemID := g.store.OwnedItems[len(g.store.OwnedItems)-1]
	if _, ok := decor.ByID(itemID); !ok {
		return
	}
	// Drop the item one spacing ahead of the car, not under it.
	pos := g.car.Position
	pos.X += math.Sin(g.car.Rotation) * g.cfg.Letters.Spacing
	pos.Z += math.Cos(g.car.Rotation) * g.cfg.Letters.Spacing
	g.store.PlaceDecoration(PlacedDecoration{
		InstanceID: fmt.Sprintf("placed-%d", g.tick),
		ItemID:     itemID,
		Position:   pos,
		RotationY:  g.car.Rotation,
	})
	if fxBus != nil {
		fxBus.Sound("pop")
	}
}

// checkLetterHits crashes the car into any block within the hit radius.
func (g *Game) checkLetterHits(now time.Time) {
	if g.store.Phase != PhasePlaying {
		return
	}

	for _, b := range append([]LetterBlock{}, g.store.LetterBlocks...) {
		if b.Position.PlaneDist(g.car.Position) > g.cfg.Letters.HitRadius {
			continue
		}
		g.hitBlock(b, now)
	}
}

func (g *Game) hitBlock(b LetterBlock, now time.Time) {
	var eventType events.Type
	if g.store.LearningMode {
		eventType = events.Animal
	} else {
		reduced := g.store.ParentSettings.Difficulty == "easy"
		eventType = g.picker.Smart(false, reduced)
	}
	g.picker.Record(eventType)

	g.store.IncrementScore()
	g.store.MarkLetterHit(b.ID, b.Letter, eventType, now)
	g.store.RemoveLetterBlock(b.ID)

	if eventType == events.Animal {
		g.store.RecordAnimalHit(b.Letter)
		if animal, ok := islands.Animals[b.Letter]; ok {
			g.store.ShowSpeechBubble(b.Letter, animal, now)
		}
	}
	if recorder != nil {
		_ = recorder.LetterCrash()
	}
	if fxBus != nil {
		if cfg, ok := events.ConfigFor(eventType); ok {
			fxBus.Sound(cfg.Sound)
		}
		fxBus.Emit(fx.Cue{Kind: fx.Haptic, Name: "crash", Detail: fx.HapticCrash})
	}

	if len(g.store.LetterBlocks) == 0 && g.store.Word != "" {
		g.store.SetGamePhase(PhaseAllClear)
		if fxBus != nil {
			fxBus.Sound("fanfare")
		}
	}
}

// checkIslandCrossing moves the player onto a neighboring island when
// the car enters its radius over an unlocked bridge.
func (g *Game) checkIslandCrossing() {
	for _, node := range islands.Nodes {
		if node.ID == g.store.CurrentIslandID {
			continue
		}
		if node.Position.PlaneDist(g.car.Position) > islands.Radius {
			continue
		}
		if !g.store.IsBridgeUnlocked(g.store.CurrentIslandID, node.ID) {
			continue
		}
		g.store.SetCurrentIsland(node.ID)
		if recorder != nil {
			_ = recorder.DimensionVisit(node.Dimension)
		}
		if fxBus != nil {
			fxBus.Sound("whoosh")
		}
		return
	}
}

// tickMiniGame collects targets under the car, ends the session on
// completion or expiry.
func (g *Game) tickMiniGame(now time.Time) {
	session := g.store.ActiveMiniGame
	if session == nil {
		return
	}

	if minigame.Expired(*session, now) {
		g.store.EndMiniGame(false)
		if fxBus != nil {
			fxBus.Sound("boing-silly")
		}
		return
	}

	cfg := minigame.Configs[session.Type]
	expected := minigame.NextExpectedOrder(g.store.MiniGameTargets)
	for _, t := range g.store.MiniGameTargets {
		if t.Collected {
			continue
		}
		if t.Position.PlaneDist(g.car.Position) > g.cfg.Letters.HitRadius {
			continue
		}
		if cfg.Ordered && t.Order != expected {
			continue
		}
		g.store.CollectMiniGameTarget(t.ID)
		if fxBus != nil {
			fxBus.Sound("collect")
			fxBus.Emit(fx.Cue{Kind: fx.Haptic, Name: "tap", Detail: fx.HapticTap})
		}
		break
	}

	if minigame.AllCollected(g.store.MiniGameTargets) {
		g.store.EndMiniGame(true)
		if fxBus != nil {
			fxBus.Sound("fanfare")
			fxBus.Emit(fx.Cue{Kind: fx.Haptic, Name: "celebrate", Detail: fx.HapticCelebrate})
		}
	}
}

func (g *Game) expireSpeechBubble(now time.Time) {
	if g.store.SpeechBubble != nil && now.Sub(g.store.SpeechBubble.ShownAt) > speechBubbleTTL {
		g.store.ClearSpeechBubble()
	}
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.store.Score,
		Paused: g.paused,
	}
}

// Store exposes the session store for the platform layer (settings
// screens, shop, save inspection).
func (g *Game) Store() *Store {
	return g.store
}

// Render draws the island view centered on the car, plus the HUD.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	// Photo mode drops the HUD so screenshots show only the island.
	if !g.store.PhotoMode {
		place := string(g.store.Dimension)
		if node, ok := islands.ByID(g.store.CurrentIslandID); ok {
			place = node.Label
			if g.store.Dimension != node.Dimension {
				// Warped away from the island's native theme.
				place += " (" + string(g.store.Dimension) + ")"
			}
		}
		dst.DrawTextColored(1, 0, place, dimColors[g.store.Dimension])
		hud := fmt.Sprintf("Score %d  * %d  # %d", g.store.Score, g.store.Stars, g.store.Gems)
		dst.DrawTextColored(len(place)+3, 0, hud, core.ColorWhite)
		if g.store.Word != "" {
			dst.DrawTextColored(1, 1, fmt.Sprintf("Word: %s  (%d left)", g.store.Word, len(g.store.LetterBlocks)), core.ColorCyan)
		} else {
			dst.DrawTextColored(1, 1, "Press T to type a word", core.ColorGray)
		}
	}

	cx, cy := w/2, h/2
	project := func(p core.Vec3) (int, int) {
		sx := cx + int(math.Round(p.X-g.car.Position.X))
		sy := cy + int(math.Round((p.Z-g.car.Position.Z)/2))
		return sx, sy
	}

	// Island rim of the current node.
	if node, ok := islands.ByID(g.store.CurrentIslandID); ok {
		for a := 0.0; a < 2*math.Pi; a += 0.05 {
			rim := core.Vec3{
				X: node.Position.X + math.Cos(a)*islands.Radius,
				Z: node.Position.Z + math.Sin(a)*islands.Radius,
			}
			if sx, sy := project(rim); sx >= 0 && sx < w && sy >= 2 && sy < h {
				dst.SetCell(sx, sy, '.', core.ColorGray)
			}
		}
	}

	for _, d := range g.store.PlacedDecorations {
		if sx, sy := project(d.Position); sx >= 0 && sx < w && sy >= 2 && sy < h {
			dst.SetCell(sx, sy, '&', core.ColorGreen)
		}
	}

	for _, t := range g.store.MiniGameTargets {
		ch := 'O'
		col := core.ColorBrightYellow
		if t.Collected {
			ch, col = 'o', core.ColorGray
		}
		if sx, sy := project(t.Position); sx >= 0 && sx < w && sy >= 2 && sy < h {
			dst.SetCell(sx, sy, ch, col)
		}
	}

	for _, b := range g.store.LetterBlocks {
		if sx, sy := project(b.Position); sx >= 0 && sx < w && sy >= 2 && sy < h {
			dst.SetCell(sx, sy, rune(b.Letter[0]), core.ColorBrightCyan)
		}
	}

	dst.SetCell(cx, cy, carGlyph(g.car.Rotation), core.ColorBrightWhite)

	line := 2
	if bubble := g.store.SpeechBubble; bubble != nil {
		dst.DrawTextColored(1, line, fmt.Sprintf("%s is for %s!", bubble.Letter, bubble.Animal), core.ColorBrightYellow)
		line++
	}
	if session := g.store.ActiveMiniGame; session != nil {
		remaining := minigame.TimeRemaining(*session, g.now())
		dst.DrawTextColored(1, line, fmt.Sprintf("%s %3.0f%%  %d collected", session.Type, remaining*100, session.Score), core.ColorMagenta)
		line++
	}
	if g.store.BuildMode {
		dst.DrawTextColored(1, line, "BUILD MODE (Enter places, B exits)", core.ColorYellow)
	}

	if g.store.Phase == PhaseAllClear {
		dst.DrawTextCentered(h/2-3, "*** ALL CLEAR! +5 gems ***")
	}
	if g.paused {
		dst.DrawTextCentered(h/2+1, "PAUSED")
	}
}

// dimColors maps each dimension to its closest terminal color.
var dimColors = map[islands.Dimension]core.Color{
	islands.Home:    core.ColorGreen,
	islands.Candy:   core.ColorMagenta,
	islands.Space:   core.ColorBrightBlue,
	islands.Ocean:   core.ColorCyan,
	islands.Volcano: core.ColorRed,
	islands.Cloud:   core.ColorBrightWhite,
}

// carGlyph maps heading to one of four arrows.
func carGlyph(rot float64) rune {
	// Normalize to [0, 2pi).
	a := math.Mod(rot, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch {
	case a < math.Pi/4 || a >= 7*math.Pi/4:
		return '^'
	case a < 3*math.Pi/4:
		return '>'
	case a < 5*math.Pi/4:
		return 'v'
	default:
		return '<'
	}
}
