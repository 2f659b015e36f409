package meadow

import (
	"testing"
	"time"

	"github.com/vovakirdan/letter-isles/internal/grid"
)

var base = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func TestComboMonotonicity(t *testing.T) {
	s := NewStore()

	// Rapid collections climb the multiplier table and cap at its top.
	wantCombos := []int{1, 2, 3, 5, 5}
	for i, want := range wantCombos {
		s.CollectItem(i, base.Add(time.Duration(i)*500*time.Millisecond))
		if s.Combo != want {
			t.Errorf("collection %d: combo = %d, want %d", i, s.Combo, want)
		}
	}

	// A gap past the window resets the chain.
	s.CollectItem(5, base.Add(time.Hour))
	if s.Combo != 1 {
		t.Errorf("after gap: combo = %d, want 1", s.Combo)
	}
}

func TestComboWindowBoundary(t *testing.T) {
	s := NewStore()
	s.CollectItem(0, base)
	// Exactly at the window edge the chain is broken (strict less-than).
	s.CollectItem(1, base.Add(DefaultComboWindow))
	if s.Combo != 1 {
		t.Errorf("combo at window edge = %d, want 1", s.Combo)
	}
}

func TestComboTuning(t *testing.T) {
	s := NewStore()
	s.SetComboTuning([]int{1, 10}, 500*time.Millisecond)

	s.CollectItem(0, base)
	s.CollectItem(1, base.Add(400*time.Millisecond))
	if s.Combo != 10 {
		t.Errorf("combo within tuned window = %d, want 10", s.Combo)
	}
	s.CollectItem(2, base.Add(time.Second))
	if s.Combo != 1 {
		t.Errorf("combo past tuned window = %d, want 1", s.Combo)
	}
}

func TestCollectScoring(t *testing.T) {
	s := NewStore()
	// Index 0 is a gem (25 points) at combo x1.
	s.CollectItem(0, base)
	if s.Score != 25 {
		t.Errorf("score = %d, want 25", s.Score)
	}
	// Index 3 is a tree (10 points); within window combo becomes x2.
	s.CollectItem(3, base.Add(time.Second))
	if s.Score != 45 {
		t.Errorf("score = %d, want 45", s.Score)
	}
}

func TestCollectIdempotent(t *testing.T) {
	s := NewStore()
	s.CollectItem(0, base)
	score := s.Score
	s.CollectItem(0, base.Add(time.Second))
	if s.Score != score {
		t.Error("double collection changed score")
	}
	if len(s.Popups) != 1 {
		t.Errorf("popups = %d, want 1", len(s.Popups))
	}
}

func TestWonPhase(t *testing.T) {
	s := NewStore()
	for i := range Spawns {
		if s.Phase == PhaseWon {
			t.Fatalf("won before all collected (at %d)", i)
		}
		s.CollectItem(i, base.Add(time.Duration(i)*time.Hour))
	}
	if s.Phase != PhaseWon {
		t.Error("not won after collecting everything")
	}

	// Won never flips back within the session.
	s.SpendPoints(10000)
	if s.Phase != PhaseWon {
		t.Error("won phase lost")
	}
}

func TestAdvanceStepCollects(t *testing.T) {
	s := NewStore()
	// Index 0 sits at (4, 0); walk the player onto it.
	s.StartMove([]grid.Position{{X: 4, Z: 1}, {X: 4, Z: 0}})

	s.AdvanceStep(base)
	if s.Score != 0 {
		t.Errorf("collected early: score %d", s.Score)
	}
	if !s.Player.IsMoving {
		t.Error("not moving mid-path")
	}

	s.AdvanceStep(base.Add(time.Second))
	if !s.Collected[0] {
		t.Error("collectible at destination not picked up")
	}
	if s.Player.IsMoving {
		t.Error("still moving after path drained")
	}
	if s.Player.Pos != (grid.Position{X: 4, Z: 0}) {
		t.Errorf("player at %+v", s.Player.Pos)
	}
}

func TestStartMoveEmptyPath(t *testing.T) {
	s := NewStore()
	s.StartMove(nil)
	if s.Player.IsMoving {
		t.Error("empty path started a move")
	}
}

func TestResetKeepsSettings(t *testing.T) {
	s := NewStore()
	s.ToggleDayNight()
	s.RotateCamera(1)
	s.RotateCamera(1)
	s.CollectItem(0, base)

	s.ResetGame()

	if s.Score != 0 || len(s.Collected) != 0 || len(s.Popups) != 0 {
		t.Error("session state survived reset")
	}
	if s.Player.Pos != grid.PlayerStart {
		t.Errorf("player not respawned: %+v", s.Player.Pos)
	}
	if !s.IsDay || s.CameraAngle != 180 {
		t.Error("presentation settings lost on reset")
	}
}

func TestSpendPointsFloor(t *testing.T) {
	s := NewStore()
	s.CollectItem(0, base) // 25 points
	s.SpendPoints(100)
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
}

func TestRemovePopup(t *testing.T) {
	s := NewStore()
	s.CollectItem(0, base)
	s.CollectItem(1, base.Add(time.Hour))
	id := s.Popups[0].ID
	s.RemovePopup(id)
	if len(s.Popups) != 1 {
		t.Fatalf("popups = %d, want 1", len(s.Popups))
	}
	if s.Popups[0].ID == id {
		t.Error("wrong popup removed")
	}
}
