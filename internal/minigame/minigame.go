// Package minigame provides stateless helpers for the short timed
// sub-challenges layered on top of the letter-crash session: session
// construction, radial target generation, and timing/completion checks.
// The owning store polls expiry and completion each tick and applies the
// end-of-game reward exactly once.
package minigame

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/letter-isles/internal/core"
)

// Type identifies a mini-game.
type Type string

const (
	TargetPractice Type = "TargetPractice"
	SpeedRings     Type = "SpeedRings"
	ColorMatch     Type = "ColorMatch"
	MusicMaker     Type = "MusicMaker"
	QuickBuild     Type = "QuickBuild"
)

// Phase is the lifecycle stage of a session.
type Phase string

const (
	PhaseInactive Phase = "inactive"
	PhaseStarting Phase = "starting"
	PhaseActive   Phase = "active"
	PhaseComplete Phase = "complete"
)

// Config defines a mini-game type: its time limit, how many targets spawn,
// whether they must be hit in order, and the currency reward on completion.
type Config struct {
	Type        Type
	TimeLimit   time.Duration
	TargetCount int
	Ordered     bool
	RewardStars int
	RewardGems  int
}

// Configs is the per-type configuration table.
var Configs = map[Type]Config{
	TargetPractice: {Type: TargetPractice, TimeLimit: 20 * time.Second, TargetCount: 5, Ordered: false, RewardStars: 10, RewardGems: 0},
	SpeedRings:     {Type: SpeedRings, TimeLimit: 15 * time.Second, TargetCount: 8, Ordered: true, RewardStars: 8, RewardGems: 2},
	ColorMatch:     {Type: ColorMatch, TimeLimit: 25 * time.Second, TargetCount: 4, Ordered: true, RewardStars: 6, RewardGems: 3},
	MusicMaker:     {Type: MusicMaker, TimeLimit: 30 * time.Second, TargetCount: 7, Ordered: false, RewardStars: 5, RewardGems: 2},
	QuickBuild:     {Type: QuickBuild, TimeLimit: 25 * time.Second, TargetCount: 3, Ordered: true, RewardStars: 8, RewardGems: 5},
}

var allTypes = []Type{TargetPractice, SpeedRings, ColorMatch, MusicMaker, QuickBuild}

var targetColors = []string{
	"#FF6B6B", "#4ECDC4", "#FFD93D", "#A06CD5", "#FF8BD0", "#6BCB77", "#45B7D1", "#FF9F1C",
}

// NoExpectedOrder is returned by NextExpectedOrder when no ordered targets remain.
const NoExpectedOrder = -1

// State is a single active mini-game session, owned by the crash store.
type State struct {
	Type      Type
	Phase     Phase
	StartedAt time.Time
	Score     int
	TimeLimit time.Duration
}

// Target is one collectible object of a session. Order is set (>= 0) only
// for ordered mini-games; unordered games leave it at NoExpectedOrder.
type Target struct {
	ID        string
	Position  core.Vec3
	Collected bool
	Color     string
	Order     int
}

// PickRandom selects a mini-game type uniformly.
func PickRandom(rng *rand.Rand) Type {
	return allTypes[rng.Intn(len(allTypes))]
}

// NewState creates the initial session state for a type.
func NewState(t Type, now time.Time) State {
	cfg := Configs[t]
	return State{
		Type:      t,
		Phase:     PhaseStarting,
		StartedAt: now,
		Score:     0,
		TimeLimit: cfg.TimeLimit,
	}
}

// GenerateTargets scatters a type's targets radially around the origin:
// evenly spaced angles, radius randomized within [8, 23), ground height for
// most types and elevated targets for TargetPractice. Ordered games get
// sequential order values matching spawn order.
func GenerateTargets(t Type, origin core.Vec3, rng *rand.Rand) []Target {
	cfg := Configs[t]
	targets := make([]Target, 0, cfg.TargetCount)

	for i := 0; i < cfg.TargetCount; i++ {
		angle := float64(i) / float64(cfg.TargetCount) * 2 * math.Pi
		radius := 8 + rng.Float64()*15

		height := 0.5
		if t == TargetPractice {
			height = 2 + rng.Float64()*4
		}

		order := NoExpectedOrder
		if cfg.Ordered {
			order = i
		}

		targets = append(targets, Target{
			ID: fmt.Sprintf("minigame-%s-%d", t, i),
			Position: core.Vec3{
				X: origin.X + math.Cos(angle)*radius,
				Y: height,
				Z: origin.Z + math.Sin(angle)*radius,
			},
			Color: targetColors[i%len(targetColors)],
			Order: order,
		})
	}

	return targets
}

// Expired reports whether the session's wall-clock time limit has passed.
func Expired(s State, now time.Time) bool {
	return now.Sub(s.StartedAt) > s.TimeLimit
}

// TimeRemaining returns the remaining time as a linear fraction in [0, 1].
func TimeRemaining(s State, now time.Time) float64 {
	elapsed := now.Sub(s.StartedAt)
	frac := 1 - float64(elapsed)/float64(s.TimeLimit)
	if frac < 0 {
		return 0
	}
	return frac
}

// AllCollected reports whether every target has been collected.
func AllCollected(targets []Target) bool {
	for _, t := range targets {
		if !t.Collected {
			return false
		}
	}
	return true
}

// NextExpectedOrder returns the minimum order among uncollected ordered
// targets, or NoExpectedOrder when none remain.
func NextExpectedOrder(targets []Target) int {
	next := NoExpectedOrder
	for _, t := range targets {
		if t.Collected || t.Order == NoExpectedOrder {
			continue
		}
		if next == NoExpectedOrder || t.Order < next {
			next = t.Order
		}
	}
	return next
}
