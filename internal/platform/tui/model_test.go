package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
	"github.com/vovakirdan/voicerun/internal/voice"
)

// recordingGame is a registry.Game that records what the platform feeds it.
type recordingGame struct {
	resets   []core.RuntimeConfig
	volumes  [][]float64
	elapsed  []time.Duration
	actions  []core.InputFrame
	gameOver bool
}

func (g *recordingGame) Variant() config.Variant { return config.VariantClassic }
func (g *recordingGame) Title() string           { return "Recording" }

func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.gameOver = false
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.volumes = append(g.volumes, append([]float64(nil), in.Volumes...))
	g.elapsed = append(g.elapsed, in.Elapsed)
	g.actions = append(g.actions, in)
	return core.StepResult{State: g.State()}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "playfield")
}

func (g *recordingGame) State() core.GameState {
	return core.GameState{GameOver: g.gameOver}
}

func newTestModel(g *recordingGame) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	return NewModel(g, cfg, Options{Logger: log.New(io.Discard)})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelWaitsForStart(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m, _ = update(t, m, TickMsg(time.Now()))
	if len(g.volumes) != 0 {
		t.Error("game should not step before the start button is pressed")
	}
	if !strings.Contains(m.View(), "Start") {
		t.Error("start screen should show the button")
	}

	m, _ = update(t, m, runeKey('p'))
	if m.started {
		t.Error("only the start binding should start the run")
	}
}

func TestModelStartWithEnter(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.started {
		t.Fatal("enter should start the run")
	}
	if cmd == nil {
		t.Error("starting should schedule the tick loop")
	}
	if len(g.resets) != 1 || g.resets[0].Seed != 7 {
		t.Errorf("start should reset the game once with the seed, got %+v", g.resets)
	}
	if !strings.Contains(m.View(), "playfield") {
		t.Error("view should show the game after starting")
	}
}

func TestModelStartWithClick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	outside := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, outside)
	if m.started {
		t.Fatal("click outside the button should not start")
	}

	r := m.buttonRect()
	inside := tea.MouseMsg{X: r.X + r.W/2, Y: r.Y + r.H/2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, inside)
	if !m.started {
		t.Error("click on the button should start")
	}
}

func TestModelAppliesReadingsInOrder(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	base := time.Now()
	m.lastTick = base
	m, _ = update(t, m, ReadingMsg(voice.Reading{Volume: 12}))
	m, _ = update(t, m, ReadingMsg(voice.Reading{Volume: 40}))
	m, _ = update(t, m, TickMsg(base.Add(20*time.Millisecond)))

	if len(g.volumes) != 1 {
		t.Fatalf("expected one step, got %d", len(g.volumes))
	}
	if got := g.volumes[0]; len(got) != 2 || got[0] != 12 || got[1] != 40 {
		t.Errorf("volumes = %v, expected [12 40]", got)
	}
	if g.elapsed[0] != 20*time.Millisecond {
		t.Errorf("elapsed = %v, expected 20ms", g.elapsed[0])
	}
	if m.level != 40 {
		t.Errorf("meter level = %v, expected latest reading 40", m.level)
	}

	// Readings are consumed once
	m, _ = update(t, m, TickMsg(base.Add(40*time.Millisecond)))
	if len(g.volumes[1]) != 0 {
		t.Errorf("second frame got stale volumes %v", g.volumes[1])
	}
}

func TestModelCapsFrameDelta(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	base := time.Now()
	m.lastTick = base
	_, _ = update(t, m, TickMsg(base.Add(3*time.Second)))

	if g.elapsed[0] != maxFrameDelta {
		t.Errorf("elapsed = %v, expected cap %v", g.elapsed[0], maxFrameDelta)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, runeKey('r'))
	if cmd != nil || len(g.resets) != 1 {
		t.Fatal("restart should be ignored while playing")
	}

	g.gameOver = true
	m, _ = update(t, m, TickMsg(time.Now()))
	m, cmd = update(t, m, runeKey('r'))

	if len(g.resets) != 2 {
		t.Fatalf("restart after game over should reset, got %d resets", len(g.resets))
	}
	if g.resets[1].Seed == 7 {
		t.Error("restart should pick a new seed")
	}
	if cmd == nil {
		t.Error("restart should resume the tick loop")
	}
	if m.gameState.GameOver {
		t.Error("restart should start a fresh session")
	}
}

func TestModelStopsTickingAtGameOver(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("a running session should schedule the next tick")
	}

	g.gameOver = true
	m, cmd = update(t, m, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("the tick that ends the run should not schedule another")
	}
	steps := len(g.volumes)

	m, _ = update(t, m, ReadingMsg(voice.Reading{Volume: 50}))
	_, cmd = update(t, m, TickMsg(time.Now()))
	if cmd != nil || len(g.volumes) != steps {
		t.Error("a finished run should not be stepped")
	}
	if len(m.inputFrame.Volumes) != 0 {
		t.Errorf("readings after game over should be dropped, got %v", m.inputFrame.Volumes)
	}
}

func TestModelPauseReachesGame(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, runeKey('p'))
	_, _ = update(t, m, TickMsg(time.Now()))

	if len(g.actions) != 1 || !g.actions[0].Has(core.ActionPause) {
		t.Error("pause should be delivered with the next frame")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&recordingGame{})

	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.ctx.Err() == nil {
		t.Error("quit should cancel the voice context")
	}
}

func TestVoiceStatus(t *testing.T) {
	m := newTestModel(&recordingGame{})
	if st := m.voiceStatus(); st.OK || st.Label != "voice off" {
		t.Errorf("status without controller = %+v", st)
	}

	m.voice = voice.NewController(nil, voice.Options{Logger: log.New(io.Discard)})
	if st := m.voiceStatus(); st.Label != "voice idle" {
		t.Errorf("status before start = %+v", st)
	}
}

func TestMeterPercent(t *testing.T) {
	tests := []struct {
		volume float64
		want   float64
	}{
		{-1, 0},
		{0, 0},
		{50, 0.5},
		{250, 1},
	}
	for _, tt := range tests {
		if got := MeterPercent(tt.volume); got != tt.want {
			t.Errorf("MeterPercent(%v) = %v, expected %v", tt.volume, got, tt.want)
		}
	}
}
