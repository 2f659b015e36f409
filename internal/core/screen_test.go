package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '@', ColorYellow)

	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}
	if got := s.GetCell(3, 2).Color; got != ColorYellow {
		t.Errorf("GetCell(3,2).Color = %d, want ColorYellow", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Must not panic, must read back as blank
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(4, 0, 'x')
	s.Set(0, 4, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetCell(1, 1, '#', ColorRed)
	s.Clear()

	if got := s.GetCell(1, 1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("Clear left cell %+v", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, '*')

	s.Resize(8, 8)
	if got := s.Get(2, 2); got != '*' {
		t.Errorf("content lost on grow: got %q", got)
	}

	s.Resize(2, 2)
	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("shrunk screen cell (1,1) = %q, want space", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "hello") // clips at right edge

	if got := s.Row(0); got != "       hel" {
		t.Errorf("Row(0) = %q", got)
	}
}
