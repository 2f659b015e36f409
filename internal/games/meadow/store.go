// Package meadow implements the tile-collection game: click-to-move grid
// navigation, combo scoring, and a win condition when every collectible
// on the meadow has been gathered.
package meadow

import (
	"time"

	"github.com/vovakirdan/letter-isles/internal/grid"
)

// DefaultComboSteps is the multiplier table indexed by combo step, used
// when no config override is set.
var DefaultComboSteps = []int{1, 2, 3, 5}

// DefaultComboWindow is the maximum gap between collections that keeps a
// combo alive, used when no config override is set.
const DefaultComboWindow = 2000 * time.Millisecond

// Phase is the session phase. Won overlays the position state; the player
// can still walk around after winning.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
)

// PlayerState tracks the player's grid position and pending move queue.
type PlayerState struct {
	Pos      grid.Position
	IsMoving bool
	MovePath []grid.Position
}

// Popup is a transient score marker. Display timing is owned by the
// caller, which removes expired popups via RemovePopup.
type Popup struct {
	ID      int
	Pos     grid.Position
	Points  int
	Combo   int
	Color   string
	ShownAt time.Time
}

// Store is the meadow session state. All mutations are synchronous; the
// caller supplies wall-clock time so combo windows survive variable tick
// rates.
type Store struct {
	Score       int
	Collected   map[int]bool
	Combo       int
	comboIndex  int
	lastCollect time.Time
	Popups      []Popup
	nextPopupID int
	Player      PlayerState
	Phase       Phase
	Hint        string

	// Presentation settings, deliberately untouched by ResetGame.
	IsDay       bool
	CameraAngle int

	// Combo tuning, loaded from config.
	comboSteps  []int
	comboWindow time.Duration
}

// NewStore creates a fresh session with the player at the spawn tile.
func NewStore() *Store {
	s := &Store{
		comboSteps:  DefaultComboSteps,
		comboWindow: DefaultComboWindow,
	}
	s.reset()
	return s
}

// SetComboTuning overrides the combo multiplier table and window. Empty
// or zero arguments keep the current values.
func (s *Store) SetComboTuning(steps []int, window time.Duration) {
	if len(steps) > 0 {
		s.comboSteps = steps
	}
	if window > 0 {
		s.comboWindow = window
	}
}

func (s *Store) reset() {
	s.Score = 0
	s.Collected = make(map[int]bool)
	s.Combo = s.comboSteps[0]
	s.comboIndex = 0
	s.lastCollect = time.Time{}
	s.Popups = nil
	s.Player = PlayerState{Pos: grid.PlayerStart}
	s.Phase = PhasePlaying
	s.Hint = "Pick a tile to walk to"
}

// StartMove replaces the pending path. Empty paths are ignored.
func (s *Store) StartMove(path []grid.Position) {
	if len(path) == 0 {
		return
	}
	s.Player.IsMoving = true
	s.Player.MovePath = path
	s.Hint = ""
}

// AdvanceStep pops the head of the move path, places the player there,
// and collects every uncollected spawn at the new cell.
func (s *Store) AdvanceStep(now time.Time) {
	if len(s.Player.MovePath) == 0 {
		return
	}
	next := s.Player.MovePath[0]
	s.Player.MovePath = s.Player.MovePath[1:]
	s.Player.Pos = next
	s.Player.IsMoving = len(s.Player.MovePath) > 0

	for idx, spawn := range Spawns {
		if s.Collected[idx] {
			continue
		}
		if spawn.Pos == next {
			s.CollectItem(idx, now)
		}
	}
}

// CollectItem claims a collectible index, applying the combo multiplier.
// Already-claimed indices are a no-op, so the won phase can never be
// reached twice.
func (s *Store) CollectItem(index int, now time.Time) {
	if index < 0 || index >= len(Spawns) || s.Collected[index] {
		return
	}
	spawn := Spawns[index]
	meta := Metas[spawn.Type]

	s.Collected[index] = true

	next := 0
	if !s.lastCollect.IsZero() && now.Sub(s.lastCollect) < s.comboWindow {
		next = s.comboIndex + 1
		if next > len(s.comboSteps)-1 {
			next = len(s.comboSteps) - 1
		}
	}
	s.comboIndex = next
	s.Combo = s.comboSteps[s.comboIndex]
	s.lastCollect = now

	earned := meta.Points * s.Combo
	s.Score += earned

	s.Popups = append(s.Popups, Popup{
		ID:      s.nextPopupID,
		Pos:     spawn.Pos,
		Points:  earned,
		Combo:   s.Combo,
		Color:   meta.Color,
		ShownAt: now,
	})
	s.nextPopupID++

	if len(s.Collected) == len(Spawns) {
		s.Phase = PhaseWon
	}
}

// RemovePopup drops a popup by id once its display duration has passed.
func (s *Store) RemovePopup(id int) {
	for i, p := range s.Popups {
		if p.ID == id {
			s.Popups = append(s.Popups[:i], s.Popups[i+1:]...)
			return
		}
	}
}

// ResetGame starts a new session. Day/night and camera angle persist.
func (s *Store) ResetGame() {
	s.reset()
}

// ToggleDayNight flips the lighting preset.
func (s *Store) ToggleDayNight() {
	s.IsDay = !s.IsDay
}

// RotateCamera turns the view a quarter turn. dir is +1 or -1.
func (s *Store) RotateCamera(dir int) {
	s.CameraAngle += dir * 90
}

// SpendPoints debits score, flooring at zero.
func (s *Store) SpendPoints(amount int) {
	s.Score -= amount
	if s.Score < 0 {
		s.Score = 0
	}
}
