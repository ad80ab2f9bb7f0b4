package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tigrerol/SimpleTimerApp/internal/config"
	"github.com/tigrerol/SimpleTimerApp/internal/models"
	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

const (
	fieldExercise = iota
	fieldSets
	fieldRest
	fieldCount
)

// configSubmittedMsg carries the validated config out of the form.
type configSubmittedMsg struct {
	cfg models.WorkoutConfig
}

// ConfigureModel is the workout setup form.
type ConfigureModel struct {
	inputs      []textinput.Model
	focused     int
	suggestions []string
	defaults    config.File
	err         string
}

func NewConfigureModel(defaults config.File, suggestions []string) ConfigureModel {
	name := textinput.New()
	name.Placeholder = "Exercise name"
	name.CharLimit = config.MaxExerciseNameLength
	name.Width = 30
	name.Focus()

	sets := textinput.New()
	sets.Placeholder = fmt.Sprintf("Sets (%d-%d)", config.MinTotalSets, config.MaxTotalSets)
	sets.CharLimit = 2
	sets.Width = 10

	rest := textinput.New()
	rest.Placeholder = fmt.Sprintf("Rest seconds (%d-%d)", int(config.MinRestDuration.Seconds()), int(config.MaxRestDuration.Seconds()))
	rest.CharLimit = 3
	rest.Width = 10

	return ConfigureModel{
		inputs:      []textinput.Model{name, sets, rest},
		suggestions: suggestions,
		defaults:    defaults,
	}
}

func (m ConfigureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConfigureModel) Update(msg tea.Msg) (ConfigureModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case tea.KeyEnter:
			if m.focused < fieldCount-1 {
				m.setFocus(m.focused + 1)
				return m, nil
			}
			cfg, errMsg := m.buildConfig()
			if errMsg != "" {
				m.err = errMsg
				return m, nil
			}
			return m, func() tea.Msg { return configSubmittedMsg{cfg: cfg} }
		case tea.KeyCtrlR:
			// Cycle recent exercise names into the name field.
			if len(m.suggestions) > 0 && m.focused == fieldExercise {
				current := m.inputs[fieldExercise].Value()
				next := m.suggestions[0]
				for i, s := range m.suggestions {
					if s == current {
						next = m.suggestions[(i+1)%len(m.suggestions)]
						break
					}
				}
				m.inputs[fieldExercise].SetValue(next)
				m.inputs[fieldExercise].CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *ConfigureModel) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].Focus()
}

// buildConfig validates and clamps the form values. The exercise name
// is the only hard requirement; numeric fields fall back to defaults
// and are clamped into their UI ranges.
func (m ConfigureModel) buildConfig() (models.WorkoutConfig, string) {
	name := strings.TrimSpace(m.inputs[fieldExercise].Value())
	if name == "" {
		return models.WorkoutConfig{}, "Exercise name is required"
	}

	sets := 3
	if v := strings.TrimSpace(m.inputs[fieldSets].Value()); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			sets = n
		}
	}
	sets = util.Clamp(sets, config.MinTotalSets, config.MaxTotalSets)

	restSecs := m.defaults.DefaultRestSeconds
	if v := strings.TrimSpace(m.inputs[fieldRest].Value()); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			restSecs = n
		}
	}
	restSecs = util.Clamp(restSecs, int(config.MinRestDuration.Seconds()), int(config.MaxRestDuration.Seconds()))

	return models.WorkoutConfig{
		ExerciseName: name,
		TotalSets:    sets,
		RestDuration: time.Duration(restSecs) * time.Second,
	}, ""
}

func (m ConfigureModel) View() string {
	theme := CurrentTheme
	var b strings.Builder

	b.WriteString(theme.Header.Render("New Workout"))
	b.WriteString("\n\n")
	labels := []string{"Exercise", "Sets", "Rest"}
	for i, in := range m.inputs {
		label := theme.Dim.Render(labels[i])
		if i == m.focused {
			label = theme.Accent.Render(labels[i])
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", label, in.View()))
	}
	if len(m.suggestions) > 0 {
		b.WriteString("\n  " + theme.Dim.Render("recent: "+strings.Join(m.suggestions, ", ")+"  (ctrl+r to cycle)") + "\n")
	}
	if m.err != "" {
		b.WriteString("\n  " + theme.Phase.Render(m.err) + "\n")
	}
	b.WriteString("\n  " + theme.Dim.Render("enter: next/start  tab: move  ctrl+c: quit") + "\n")
	return theme.Base.Render(b.String())
}
