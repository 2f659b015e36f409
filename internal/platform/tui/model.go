package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/letter-isles/internal/audio"
	"github.com/vovakirdan/letter-isles/internal/core"
	"github.com/vovakirdan/letter-isles/internal/fx"
	"github.com/vovakirdan/letter-isles/internal/islands"
	"github.com/vovakirdan/letter-isles/internal/registry"
	"github.com/vovakirdan/letter-isles/internal/storage"
)

var wordPromptStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("13")).
	Padding(0, 1)

// Model is the Bubble Tea model for running an isles game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	fxBus      *fx.Bus
	director   *audio.Director
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	wordMode   bool
	wordInput  textinput.Model
	wordPrompt int

	// Ticks left of the haptic flash band at the top of the view.
	flashTicks int

	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game. store,
// fxBus, and director may be nil; the corresponding features are then
// disabled.
func NewModel(game registry.Game, store *storage.Store, fxBus *fx.Bus, director *audio.Director, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "type a word"
	ti.CharLimit = 12
	ti.Width = 20

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		fxBus:      fxBus,
		director:   director,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		wordInput:  ti,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. When the word overlay is open all
// typing goes to the text input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.wordMode {
		return m.handleWordKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.saveScoreOnce()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "esc":
		// Esc while paused backs out to the menu (SSH sessions).
		if m.gameState.Paused {
			m.saveScoreOnce()
			m.backToMenu = true
			// Standalone runs exit here; the SSH session model swallows
			// the quit and swaps back to its menu instead.
			return m, tea.Quit
		}
	}

	action, _ := m.keyMapper.MapKey(msg)
	if action == core.ActionWord {
		if _, ok := m.game.(registry.WordReceiver); ok {
			m.wordMode = true
			m.wordPrompt++
			m.wordInput.SetValue("")
			m.wordInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleWordKey drives the word-entry overlay.
func (m Model) handleWordKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.wordMode = false
		m.wordInput.Blur()
		return m, nil
	case "enter":
		word := m.wordInput.Value()
		m.wordMode = false
		m.wordInput.Blur()
		if wr, ok := m.game.(registry.WordReceiver); ok && strings.TrimSpace(word) != "" {
			wr.SubmitWord(word)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.wordInput, cmd = m.wordInput.Update(msg)
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart rebuilds the world with a fresh seed.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.drainCues()
	if m.flashTicks > 0 {
		m.flashTicks--
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// drainCues forwards queued effect cues to the audio director.
func (m *Model) drainCues() {
	if m.fxBus == nil {
		return
	}
	for _, cue := range m.fxBus.Drain() {
		switch cue.Kind {
		case fx.Sound:
			if m.director == nil {
				continue
			}
			m.director.Play(cue.Name)
			if cue.Detail != "" {
				if _, ok := islands.Themes[islands.Dimension(cue.Detail)]; ok {
					m.director.CrossfadeMusic(islands.Dimension(cue.Detail))
				}
			}
		case fx.Haptic:
			// Vibration has no terminal equivalent; flash instead.
			m.flashTicks = 3
		default:
			// Particle cues have no terminal rendition yet.
		}
	}
}

// saveScoreOnce records the session score on the way out.
func (m *Model) saveScoreOnce() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, exit continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score)
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".isles", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.flashTicks > 0 {
		view = flashTop(view)
	}

	if m.wordMode {
		hint := "try " + strings.Join(islands.SuggestWords(m.wordPrompt), ", ")
		prompt := wordPromptStyle.Render("Word: " + m.wordInput.View() + "\n" + hint)
		view = overlayBottom(view, prompt, m.config.ScreenW)
	}

	return view
}

var flashStyle = lipgloss.NewStyle().Reverse(true)

// flashTop inverts the top row for a tick or two, standing in for a
// haptic pulse.
func flashTop(view string) string {
	lines := strings.SplitN(view, "\n", 2)
	lines[0] = flashStyle.Render(lines[0])
	return strings.Join(lines, "\n")
}

// overlayBottom replaces the bottom screen rows with the prompt box,
// centered, keeping the rest of the game view intact.
func overlayBottom(view, prompt string, width int) string {
	lines := strings.Split(view, "\n")
	promptLines := strings.Split(prompt, "\n")
	start := len(lines) - len(promptLines)
	if start < 0 {
		start = 0
	}
	for i, pl := range promptLines {
		if start+i < len(lines) {
			lines[start+i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, pl)
		}
	}
	return strings.Join(lines, "\n")
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, fxBus *fx.Bus, director *audio.Director, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, fxBus, director, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
