package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tigrerol/SimpleTimerApp/internal/config"
	"github.com/tigrerol/SimpleTimerApp/internal/models"
	"github.com/tigrerol/SimpleTimerApp/internal/testutil"
	"github.com/tigrerol/SimpleTimerApp/internal/timer"
)

func setupTestMain(t *testing.T) (MainModel, *timer.Engine) {
	t.Helper()
	engine := timer.NewEngine(timer.Options{AutoAdvanceOnRestExpiry: true})
	return NewMainModel(engine, nil, nil, config.DefaultFile()), engine
}

func TestMainStartsOnConfigureForm(t *testing.T) {
	m, _ := setupTestMain(t)
	if m.state != StateConfiguring {
		t.Fatalf("state = %v, want configuring", m.state)
	}
}

func TestMainConfigSubmittedSwitchesToDashboard(t *testing.T) {
	m, engine := setupTestMain(t)
	cfg := testutil.NewConfig().WithExercise("Deadlift").WithSets(5).WithRest(90 * time.Second).Build()

	next, cmd := m.Update(configSubmittedMsg{cfg: cfg})
	m = next.(MainModel)
	if m.state != StateDashboard {
		t.Fatalf("state = %v, want dashboard", m.state)
	}
	if cmd == nil {
		t.Fatalf("dashboard init command expected")
	}
	phase := engine.Phase()
	if phase.Kind != models.PhaseReady || phase.TotalSets != 5 {
		t.Fatalf("engine phase = %+v, want Ready{5}", phase)
	}
}

func TestMainWorkoutClosedReleasesSubscription(t *testing.T) {
	m, _ := setupTestMain(t)
	next, _ := m.Update(configSubmittedMsg{cfg: testutil.NewConfig().Build()})
	m = next.(MainModel)
	events := m.dashboard.events

	next, _ = m.Update(workoutClosedMsg{saved: false})
	m = next.(MainModel)
	_ = m

	// Drain any buffered events; the channel itself must be closed so
	// the old listener goes quiet instead of stealing future events.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("old dashboard subscription left open")
		}
	}
}

func TestMainWorkoutClosedReturnsToForm(t *testing.T) {
	m, _ := setupTestMain(t)
	next, _ := m.Update(configSubmittedMsg{cfg: testutil.NewConfig().Build()})
	m = next.(MainModel)

	next, _ = m.Update(workoutClosedMsg{saved: false})
	m = next.(MainModel)
	if m.state != StateConfiguring {
		t.Fatalf("state = %v, want configuring", m.state)
	}
	if got := m.form.inputs[fieldExercise].Value(); got != "" {
		t.Fatalf("form must be fresh, exercise = %q", got)
	}
}

func TestMainCtrlCQuits(t *testing.T) {
	m, _ := setupTestMain(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c must quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("ctrl+c produced %#v, want tea.QuitMsg", msg)
	}
}

func TestMainQuitKeyOnlyOnDashboard(t *testing.T) {
	m, _ := setupTestMain(t)

	// "q" on the configure form is just text input.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(MainModel)
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatalf("q must not quit while configuring")
		}
	}

	next, _ = m.Update(configSubmittedMsg{cfg: testutil.NewConfig().Build()})
	m = next.(MainModel)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q must quit on the dashboard")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("q produced %#v, want tea.QuitMsg", msg)
	}
}

func TestMainWindowSizeReachesDashboard(t *testing.T) {
	m, _ := setupTestMain(t)
	next, _ := m.Update(configSubmittedMsg{cfg: testutil.NewConfig().Build()})
	m = next.(MainModel)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(MainModel)
	if m.dashboard.width != 120 {
		t.Fatalf("dashboard width = %d, want 120", m.dashboard.width)
	}
}
