package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tigrerol/SimpleTimerApp/internal/config"
)

func typeString(m ConfigureModel, s string) ConfigureModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pressEnter(m ConfigureModel) (ConfigureModel, tea.Msg) {
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

func submitForm(t *testing.T, m ConfigureModel) configSubmittedMsg {
	t.Helper()
	var msg tea.Msg
	for i := 0; i < fieldCount; i++ {
		m, msg = pressEnter(m)
	}
	submitted, ok := msg.(configSubmittedMsg)
	if !ok {
		t.Fatalf("expected configSubmittedMsg, got %T", msg)
	}
	return submitted
}

func TestConfigureFormSubmits(t *testing.T) {
	m := NewConfigureModel(config.DefaultFile(), nil)
	m = typeString(m, "Squats")
	m, _ = pressEnter(m) // to sets
	m = typeString(m, "5")
	m, _ = pressEnter(m) // to rest
	m = typeString(m, "90")

	m, msg := pressEnter(m)
	submitted, ok := msg.(configSubmittedMsg)
	if !ok {
		t.Fatalf("expected configSubmittedMsg, got %T", msg)
	}
	cfg := submitted.cfg
	if cfg.ExerciseName != "Squats" || cfg.TotalSets != 5 || cfg.RestDuration != 90*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestConfigureFormRequiresName(t *testing.T) {
	m := NewConfigureModel(config.DefaultFile(), nil)
	var msg tea.Msg
	for i := 0; i < fieldCount; i++ {
		m, msg = pressEnter(m)
	}
	if msg != nil {
		t.Fatalf("empty name must not submit, got %T", msg)
	}
	if m.err == "" {
		t.Fatalf("expected validation message")
	}
}

func TestConfigureFormClampsOutOfRange(t *testing.T) {
	m := NewConfigureModel(config.DefaultFile(), nil)
	m = typeString(m, "Bench")
	m, _ = pressEnter(m)
	m = typeString(m, "99") // above MaxTotalSets
	m, _ = pressEnter(m)
	m = typeString(m, "999") // above MaxRestDuration

	cfg := submitForm(t, m).cfg
	if cfg.TotalSets != config.MaxTotalSets {
		t.Errorf("TotalSets = %d, want clamped to %d", cfg.TotalSets, config.MaxTotalSets)
	}
	if cfg.RestDuration != config.MaxRestDuration {
		t.Errorf("RestDuration = %v, want clamped to %v", cfg.RestDuration, config.MaxRestDuration)
	}
}

func TestConfigureFormDefaultsOnMalformedInput(t *testing.T) {
	m := NewConfigureModel(config.DefaultFile(), nil)
	m = typeString(m, "Rows")
	// Leave sets and rest empty.
	cfg := submitForm(t, m).cfg
	if cfg.TotalSets != 3 {
		t.Errorf("TotalSets = %d, want default 3", cfg.TotalSets)
	}
	if cfg.RestDuration != config.DefaultRestDuration {
		t.Errorf("RestDuration = %v, want default %v", cfg.RestDuration, config.DefaultRestDuration)
	}
	if !cfg.Valid() {
		t.Errorf("defaulted config must be valid")
	}
}

func TestConfigureFormSuggestionCycle(t *testing.T) {
	m := NewConfigureModel(config.DefaultFile(), []string{"Squats", "Bench"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := m.inputs[fieldExercise].Value(); got != "Squats" {
		t.Fatalf("first cycle = %q, want Squats", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := m.inputs[fieldExercise].Value(); got != "Bench" {
		t.Fatalf("second cycle = %q, want Bench", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := m.inputs[fieldExercise].Value(); got != "Squats" {
		t.Fatalf("third cycle = %q, want Squats again", got)
	}
}

func TestConfigureFormTabMovesFocus(t *testing.T) {
	m := NewConfigureModel(config.DefaultFile(), nil)
	if m.focused != fieldExercise {
		t.Fatalf("initial focus = %d", m.focused)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focused != fieldSets {
		t.Fatalf("focus after tab = %d, want sets", m.focused)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focused != fieldExercise {
		t.Fatalf("focus after shift-tab = %d, want exercise", m.focused)
	}
}
