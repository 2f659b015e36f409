package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/letter-isles/internal/core"
	"github.com/vovakirdan/letter-isles/internal/fx"
)

func TestSessionModelHandsBusToGame(t *testing.T) {
	bus := fx.NewBus(8)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

	var model tea.Model = NewSessionModel(nil, bus, cfg)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	sm, ok := model.(SessionModel)
	if !ok {
		t.Fatalf("session model type changed: %T", model)
	}
	if !sm.inGame || sm.gameModel == nil {
		t.Fatal("enter did not start a game")
	}
	if sm.gameModel.fxBus != bus {
		t.Error("game model not wired to the session fx bus")
	}
}
