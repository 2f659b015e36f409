package meadow

import (
	"testing"
	"time"

	"github.com/vovakirdan/letter-isles/internal/core"
)

func newTestGame(t *testing.T) (*Game, *time.Time) {
	t.Helper()
	clock := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	g := New()
	g.now = func() time.Time { return clock }
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})
	return g, &clock
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}
	clock := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	g1, g2 := New(), New()
	g1.now = func() time.Time { return clock }
	g2.now = func() time.Time { return clock }
	g1.Reset(cfg)
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		if i == 10 {
			input.Set(core.ActionUp)
		}
		if i == 30 {
			input.Set(core.ActionConfirm)
		}
		clock = clock.Add(50 * time.Millisecond)
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestCursorClamped(t *testing.T) {
	g, clock := newTestGame(t)
	input := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		input.Clear()
		input.Set(core.ActionLeft)
		*clock = clock.Add(50 * time.Millisecond)
		g.Step(input)
	}
	if g.cursor.X != 0 {
		t.Errorf("cursor escaped the grid: %+v", g.cursor)
	}
}

func TestConfirmWalksToCursor(t *testing.T) {
	g, clock := newTestGame(t)

	// Cursor starts on the player; move it two tiles right along the
	// central boulevard, then confirm.
	input := core.NewInputFrame()
	for i := 0; i < 2; i++ {
		input.Clear()
		input.Set(core.ActionRight)
		*clock = clock.Add(50 * time.Millisecond)
		g.Step(input)
	}
	input.Clear()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if !g.store.Player.IsMoving {
		t.Fatal("confirm did not start a move")
	}

	// Walk until the path drains.
	input.Clear()
	for i := 0; i < 50 && g.store.Player.IsMoving; i++ {
		*clock = clock.Add(300 * time.Millisecond)
		g.Step(input)
	}
	if g.store.Player.Pos != g.cursor {
		t.Errorf("player at %+v, cursor at %+v", g.store.Player.Pos, g.cursor)
	}
}

func TestConfirmOnSameTileIsNoop(t *testing.T) {
	g, _ := newTestGame(t)
	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)
	if g.store.Player.IsMoving {
		t.Error("pathfinding to own tile started a move")
	}
}

func TestPopupsExpire(t *testing.T) {
	g, clock := newTestGame(t)
	g.store.CollectItem(0, *clock)
	if len(g.store.Popups) != 1 {
		t.Fatal("no popup after collection")
	}

	*clock = clock.Add(5 * time.Second)
	g.Step(core.NewInputFrame())
	if len(g.store.Popups) != 0 {
		t.Error("popup survived its display duration")
	}
}

func TestToggleAndRotate(t *testing.T) {
	g, _ := newTestGame(t)
	input := core.NewInputFrame()
	input.Set(core.ActionToggle)
	input.Set(core.ActionRotate)
	g.Step(input)

	if !g.store.IsDay {
		t.Error("day/night toggle ignored")
	}
	if g.store.CameraAngle != 90 {
		t.Errorf("camera angle = %d, want 90", g.store.CameraAngle)
	}
}

func TestRenderSmoke(t *testing.T) {
	g, _ := newTestGame(t)
	s := core.NewScreen(80, 24)
	g.Render(s)
	if s.Get(2+4*2, 3+4) != '@' {
		t.Error("player glyph missing at spawn")
	}
}
