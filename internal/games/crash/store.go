// Package crash implements the letter-crash driving game: typed words
// spawn letter blocks on the island, crashing into them fires weighted
// events, and progress (currency, bridges, learning, decorations) is
// persisted across sessions.
package crash

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/letter-isles/internal/core"
	"github.com/vovakirdan/letter-isles/internal/decor"
	"github.com/vovakirdan/letter-isles/internal/events"
	"github.com/vovakirdan/letter-isles/internal/islands"
	"github.com/vovakirdan/letter-isles/internal/minigame"
)

// LearnedThreshold is the animal-hit count after which a letter counts
// as learned.
const LearnedThreshold = 3

// GamePhase is the word lifecycle phase.
type GamePhase string

const (
	PhaseIdle     GamePhase = "idle"
	PhasePlaying  GamePhase = "playing"
	PhaseAllClear GamePhase = "allClear"
)

// LetterBlock is one spawned letter entity.
type LetterBlock struct {
	ID         string
	Letter     string
	Position   core.Vec3
	Color      string
	SpawnIndex int
}

// HitRecord is an append-only log entry for the active word.
type HitRecord struct {
	LetterID  string
	Letter    string
	EventType events.Type
	Timestamp time.Time
}

// LetterProgress tracks per-letter learning.
type LetterProgress struct {
	Letter         string `json:"letter"`
	AnimalHitCount int    `json:"animalHitCount"`
}

// SpeechBubble is the transient animal callout shown after a learning hit.
type SpeechBubble struct {
	Letter  string
	Animal  string
	ShownAt time.Time
}

// PlacedDecoration is one placed catalog item.
type PlacedDecoration struct {
	InstanceID string    `json:"instanceId"`
	ItemID     string    `json:"itemId"`
	Position   core.Vec3 `json:"position"`
	RotationY  float64   `json:"rotationY"`
}

// Accessibility holds player-facing assist settings.
type Accessibility struct {
	ColorBlindMode string  `json:"colorBlindMode"`
	HighContrast   bool    `json:"highContrast"`
	AutoDrive      bool    `json:"autoDrive"`
	TextScale      float64 `json:"textScale"`
}

// ParentSettings holds the PIN-gated configuration.
type ParentSettings struct {
	PIN               string              `json:"pin"`
	TimeLimitMinutes  int                 `json:"timeLimitMinutes"`
	Difficulty        string              `json:"difficulty"`
	LearningMode      bool                `json:"learningMode"`
	EnabledDimensions []islands.Dimension `json:"enabledDimensions"`
	VolumeMaster      float64             `json:"volumeMaster"`
	VolumeSfx         float64             `json:"volumeSfx"`
	VolumeMusic       float64             `json:"volumeMusic"`
}

// DefaultAccessibility returns the assist defaults.
func DefaultAccessibility() Accessibility {
	return Accessibility{ColorBlindMode: "none", TextScale: 1}
}

// DefaultParentSettings returns the parent-configuration defaults.
func DefaultParentSettings() ParentSettings {
	return ParentSettings{
		PIN:               "0000",
		Difficulty:        "normal",
		EnabledDimensions: append([]islands.Dimension{}, islands.Dimensions...),
		VolumeMaster:      1,
		VolumeSfx:         0.8,
		VolumeMusic:       0.5,
	}
}

var letterColors = []string{
	"#FF6B6B", "#4ECDC4", "#FFE66D", "#A06CD5", "#FF9F1C",
	"#2EC4B6", "#FF8FCF", "#118AB2", "#06D6A0",
}

// Saver receives the persisted subset after every mutating action.
type Saver func(PersistedState)

// Store is the letter-crash session and progress state. All mutations
// are synchronous; persisted fields are written through the saver after
// every action that touches them.
type Store struct {
	Word         string
	Dimension    islands.Dimension
	Score        int
	LetterBlocks []LetterBlock
	HitLetters   []HitRecord
	Phase        GamePhase

	LearningMode   bool
	LetterProgress map[string]LetterProgress
	SpeechBubble   *SpeechBubble

	CurrentIslandID string
	UnlockedBridges map[string]bool

	Stars             int
	Gems              int
	BuildMode         bool
	PhotoMode         bool
	PlacedDecorations []PlacedDecoration
	OwnedItems        []string

	ActiveMiniGame  *minigame.State
	MiniGameTargets []minigame.Target

	Accessibility  Accessibility
	ParentSettings ParentSettings

	// SpawnRadius is how far from the island center letters scatter.
	SpawnRadius float64
	// LearnedThreshold is the animal-hit count at which a letter counts
	// as learned.
	LearnedThreshold int

	rng   *rand.Rand
	saver Saver

	// Claim flag closing the double-award gap on allClear.
	allClearAwarded bool
}

// NewStore creates a fresh store with defaults. saver may be nil for
// ephemeral sessions (tests, demo mode).
func NewStore(rng *rand.Rand, saver Saver) *Store {
	return &Store{
		Dimension:        islands.Home,
		Phase:            PhaseIdle,
		SpawnRadius:      30,
		LearnedThreshold: LearnedThreshold,
		LetterProgress:   map[string]LetterProgress{},
		CurrentIslandID:  "home",
		UnlockedBridges:  map[string]bool{},
		Accessibility:    DefaultAccessibility(),
		ParentSettings:   DefaultParentSettings(),
		rng:              rng,
		saver:            saver,
	}
}

func (s *Store) save() {
	if s.saver != nil {
		s.saver(s.Persisted())
	}
}

// SubmitWord spawns one letter block per letter of an already-sanitized
// word, scattered within the island, and checks bridge unlocks. Empty
// words are ignored.
func (s *Store) SubmitWord(word string) {
	word = strings.ToUpper(word)
	if word == "" {
		return
	}

	blocks := make([]LetterBlock, 0, len(word))
	for i, ch := range word {
		angle := s.rng.Float64() * 2 * math.Pi
		radius := s.rng.Float64() * s.SpawnRadius
		node, _ := islands.ByID(s.CurrentIslandID)
		blocks = append(blocks, LetterBlock{
			ID:         uuid.NewString(),
			Letter:     string(ch),
			Position:   core.Vec3{X: node.Position.X + math.Cos(angle)*radius, Y: 0.75 + s.rng.Float64()*0.5, Z: node.Position.Z + math.Sin(angle)*radius},
			Color:      letterColors[s.rng.Intn(len(letterColors))],
			SpawnIndex: i,
		})
	}

	s.Word = word
	s.LetterBlocks = blocks
	s.HitLetters = nil
	s.Phase = PhasePlaying
	s.allClearAwarded = false

	s.CheckWordUnlock(word)
}

// RemoveLetterBlock drops a block by id.
func (s *Store) RemoveLetterBlock(id string) {
	for i, b := range s.LetterBlocks {
		if b.ID == id {
			s.LetterBlocks = append(s.LetterBlocks[:i], s.LetterBlocks[i+1:]...)
			return
		}
	}
}

// MarkLetterHit appends a hit record. Portal outcomes award 3 gems; that
// is the only per-hit currency reward here. Score is incremented by the
// caller through IncrementScore.
func (s *Store) MarkLetterHit(id, letter string, eventType events.Type, now time.Time) {
	s.HitLetters = append(s.HitLetters, HitRecord{
		LetterID:  id,
		Letter:    letter,
		EventType: eventType,
		Timestamp: now,
	})
	if eventType == events.Portal {
		s.Gems += 3
		s.save()
	}
}

// SetGamePhase transitions the word phase. Entering allClear awards a
// 5 gem bonus exactly once per word.
func (s *Store) SetGamePhase(phase GamePhase) {
	s.Phase = phase
	if phase == PhaseAllClear && !s.allClearAwarded {
		s.allClearAwarded = true
		s.Gems += 5
		s.save()
	}
}

// IncrementScore bumps score and stars together.
func (s *Store) IncrementScore() {
	s.Score++
	s.Stars++
	s.save()
}

// ResetGame clears the word session and score.
func (s *Store) ResetGame() {
	s.Word = ""
	s.Score = 0
	s.LetterBlocks = nil
	s.HitLetters = nil
	s.Phase = PhaseIdle
}

// ResetWord clears the word session, keeping score.
func (s *Store) ResetWord() {
	s.Word = ""
	s.LetterBlocks = nil
	s.HitLetters = nil
	s.Phase = PhaseIdle
}

// ChangeDimension warps to a uniformly chosen dimension other than the
// current one.
func (s *Store) ChangeDimension() islands.Dimension {
	others := make([]islands.Dimension, 0, len(islands.Dimensions)-1)
	for _, d := range islands.Dimensions {
		if d != s.Dimension {
			others = append(others, d)
		}
	}
	s.Dimension = others[s.rng.Intn(len(others))]
	return s.Dimension
}

// SetCurrentIsland moves to an island, switching the dimension with it.
// Unknown ids are a no-op.
func (s *Store) SetCurrentIsland(id string) {
	node, ok := islands.ByID(id)
	if !ok {
		return
	}
	s.CurrentIslandID = id
	s.Dimension = node.Dimension
}

// SetLearningMode toggles learning mode.
func (s *Store) SetLearningMode(enabled bool) {
	s.LearningMode = enabled
	s.save()
}

// RecordAnimalHit bumps the learning counter for a letter.
func (s *Store) RecordAnimalHit(letter string) {
	upper := strings.ToUpper(letter)
	p := s.LetterProgress[upper]
	s.LetterProgress[upper] = LetterProgress{Letter: upper, AnimalHitCount: p.AnimalHitCount + 1}
	s.save()
}

// IsLetterLearned reports whether a letter has crossed the threshold.
func (s *Store) IsLetterLearned(letter string) bool {
	return s.LetterProgress[strings.ToUpper(letter)].AnimalHitCount >= s.LearnedThreshold
}

// ShowSpeechBubble installs the animal callout.
func (s *Store) ShowSpeechBubble(letter, animal string, now time.Time) {
	s.SpeechBubble = &SpeechBubble{Letter: letter, Animal: animal, ShownAt: now}
}

// ClearSpeechBubble removes the callout.
func (s *Store) ClearSpeechBubble() {
	s.SpeechBubble = nil
}

// UnlockBridge opens a bridge in both directions.
func (s *Store) UnlockBridge(from, to string) {
	s.UnlockedBridges[islands.BridgeKey(from, to)] = true
	s.UnlockedBridges[islands.BridgeKey(to, from)] = true
	s.save()
}

// IsBridgeUnlocked reports whether a directed crossing is open.
func (s *Store) IsBridgeUnlocked(from, to string) bool {
	return s.UnlockedBridges[islands.BridgeKey(from, to)]
}

// CheckWordUnlock opens every still-locked bridge whose destination
// island lists the word among its unlock words. One word can open
// several bridges if they share a keyword.
func (s *Store) CheckWordUnlock(word string) {
	upper := strings.ToUpper(word)
	for _, bridge := range islands.Bridges {
		target, ok := islands.ByID(bridge.To)
		if !ok {
			continue
		}
		if s.UnlockedBridges[islands.BridgeKey(bridge.From, bridge.To)] {
			continue
		}
		for _, w := range target.UnlockWords {
			if w == upper {
				s.UnlockBridge(bridge.From, bridge.To)
				break
			}
		}
	}
}

// AddStars credits stars.
func (s *Store) AddStars(amount int) {
	s.Stars += amount
	s.save()
}

// AddGems credits gems.
func (s *Store) AddGems(amount int) {
	s.Gems += amount
	s.save()
}

// SetBuildMode toggles decoration placement mode.
func (s *Store) SetBuildMode(enabled bool) {
	s.BuildMode = enabled
	if enabled {
		s.PhotoMode = false
	}
}

// SetPhotoMode hides the HUD for screenshots. Mutually exclusive with
// build mode.
func (s *Store) SetPhotoMode(enabled bool) {
	s.PhotoMode = enabled
	if enabled {
		s.BuildMode = false
	}
}

// PurchaseItem buys a catalog item. Returns false without mutation on
// unknown id or insufficient balance.
func (s *Store) PurchaseItem(itemID string) bool {
	item, ok := decor.ByID(itemID)
	if !ok {
		return false
	}

	switch item.Currency {
	case decor.Stars:
		if s.Stars < item.Cost {
			return false
		}
		s.Stars -= item.Cost
	case decor.Gems:
		if s.Gems < item.Cost {
			return false
		}
		s.Gems -= item.Cost
	default:
		return false
	}

	s.OwnedItems = append(s.OwnedItems, itemID)
	s.save()
	return true
}

// PlaceDecoration adds a placed instance.
func (s *Store) PlaceDecoration(d PlacedDecoration) {
	s.PlacedDecorations = append(s.PlacedDecorations, d)
	s.save()
}

// RemoveDecoration removes a placed instance by id.
func (s *Store) RemoveDecoration(instanceID string) {
	for i, d := range s.PlacedDecorations {
		if d.InstanceID == instanceID {
			s.PlacedDecorations = append(s.PlacedDecorations[:i], s.PlacedDecorations[i+1:]...)
			s.save()
			return
		}
	}
}

// MoveDecoration repositions a placed instance.
func (s *Store) MoveDecoration(instanceID string, pos core.Vec3, rotY float64) {
	for i, d := range s.PlacedDecorations {
		if d.InstanceID == instanceID {
			s.PlacedDecorations[i].Position = pos
			s.PlacedDecorations[i].RotationY = rotY
			s.save()
			return
		}
	}
}

// StartMiniGame installs a fresh session, replacing any active one.
func (s *Store) StartMiniGame(t minigame.Type, origin core.Vec3, now time.Time) {
	state := minigame.NewState(t, now)
	s.ActiveMiniGame = &state
	s.MiniGameTargets = minigame.GenerateTargets(t, origin, s.rng)
}

// CollectMiniGameTarget flags one target collected and bumps the session
// score. Completion polling belongs to the consumer.
func (s *Store) CollectMiniGameTarget(targetID string) {
	for i, t := range s.MiniGameTargets {
		if t.ID == targetID && !t.Collected {
			s.MiniGameTargets[i].Collected = true
			if s.ActiveMiniGame != nil {
				s.ActiveMiniGame.Score++
			}
			return
		}
	}
}

// EndMiniGame clears the session, applying the type's reward when the
// game was completed. A second call is a no-op.
func (s *Store) EndMiniGame(completed bool) {
	if s.ActiveMiniGame == nil {
		return
	}
	if completed {
		cfg := minigame.Configs[s.ActiveMiniGame.Type]
		s.Stars += cfg.RewardStars
		s.Gems += cfg.RewardGems
	}
	s.ActiveMiniGame = nil
	s.MiniGameTargets = nil
	if completed {
		s.save()
	}
}

// AccessibilityPatch updates a subset of assist settings; nil fields are
// left unchanged.
type AccessibilityPatch struct {
	ColorBlindMode *string
	HighContrast   *bool
	AutoDrive      *bool
	TextScale      *float64
}

// SetAccessibility applies a partial update.
func (s *Store) SetAccessibility(p AccessibilityPatch) {
	if p.ColorBlindMode != nil {
		s.Accessibility.ColorBlindMode = *p.ColorBlindMode
	}
	if p.HighContrast != nil {
		s.Accessibility.HighContrast = *p.HighContrast
	}
	if p.AutoDrive != nil {
		s.Accessibility.AutoDrive = *p.AutoDrive
	}
	if p.TextScale != nil {
		s.Accessibility.TextScale = *p.TextScale
	}
	s.save()
}

// ParentPatch updates a subset of parent settings; nil fields are left
// unchanged.
type ParentPatch struct {
	PIN               *string
	TimeLimitMinutes  *int
	Difficulty        *string
	LearningMode      *bool
	EnabledDimensions *[]islands.Dimension
	VolumeMaster      *float64
	VolumeSfx         *float64
	VolumeMusic       *float64
}

// SetParentSettings applies a partial update.
func (s *Store) SetParentSettings(p ParentPatch) {
	if p.PIN != nil {
		s.ParentSettings.PIN = *p.PIN
	}
	if p.TimeLimitMinutes != nil {
		s.ParentSettings.TimeLimitMinutes = *p.TimeLimitMinutes
	}
	if p.Difficulty != nil {
		s.ParentSettings.Difficulty = *p.Difficulty
	}
	if p.LearningMode != nil {
		s.ParentSettings.LearningMode = *p.LearningMode
	}
	if p.EnabledDimensions != nil {
		s.ParentSettings.EnabledDimensions = *p.EnabledDimensions
	}
	if p.VolumeMaster != nil {
		s.ParentSettings.VolumeMaster = *p.VolumeMaster
	}
	if p.VolumeSfx != nil {
		s.ParentSettings.VolumeSfx = *p.VolumeSfx
	}
	if p.VolumeMusic != nil {
		s.ParentSettings.VolumeMusic = *p.VolumeMusic
	}
	s.save()
}

// sortedBridges serializes the unlocked set deterministically.
func (s *Store) sortedBridges() []string {
	keys := make([]string, 0, len(s.UnlockedBridges))
	for k := range s.UnlockedBridges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
