package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/tigrerol/SimpleTimerApp/internal/config"
	"github.com/tigrerol/SimpleTimerApp/internal/database"
	"github.com/tigrerol/SimpleTimerApp/internal/models"
	"github.com/tigrerol/SimpleTimerApp/internal/notify"
	"github.com/tigrerol/SimpleTimerApp/internal/timer"
	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

// --- Messages ---

// PhaseMsg wraps an engine event for the bubbletea loop.
type PhaseMsg timer.Event

// flashClearMsg ends the rest-complete flash.
type flashClearMsg struct{}

// workoutClosedMsg returns control to the configure form. saved is
// false when the workout was discarded.
type workoutClosedMsg struct {
	saved bool
}

// listenCmd waits for the next engine event. A closed channel means
// the subscription was released; the listener goes quiet.
func listenCmd(ch <-chan timer.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return PhaseMsg(ev)
	}
}

func flashClearCmd() tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(time.Time) tea.Msg { return flashClearMsg{} })
}

// --- Model ---

// DashboardModel is the live workout screen.
type DashboardModel struct {
	engine   *timer.Engine
	store    database.Store
	notifier *notify.Terminal
	events   <-chan timer.Event

	phase    models.Phase
	progress progress.Model
	flash    bool
	unsaved  *models.WorkoutSession

	logging   bool
	logInputs []textinput.Model
	logFocus  int

	Message       string
	width, height int
}

func NewDashboardModel(engine *timer.Engine, store database.Store, notifier *notify.Terminal) DashboardModel {
	reps := textinput.New()
	reps.Placeholder = "Reps"
	reps.CharLimit = 3
	reps.Width = 6
	weight := textinput.New()
	weight.Placeholder = "Weight/resistance"
	weight.CharLimit = 40
	weight.Width = 20
	notes := textinput.New()
	notes.Placeholder = "Notes"
	notes.CharLimit = 120
	notes.Width = 30

	return DashboardModel{
		engine:    engine,
		store:     store,
		notifier:  notifier,
		events:    engine.Subscribe(),
		phase:     engine.Phase(),
		progress:  progress.New(progress.WithDefaultGradient()),
		logInputs: []textinput.Model{reps, weight, notes},
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return listenCmd(m.events)
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		target := 40
		if m.width > 0 && m.width < 50 {
			target = m.width - 10
		}
		if target < 10 {
			target = 10
		}
		m.progress.Width = target
		return m, nil

	case PhaseMsg:
		m.phase = msg.Phase
		cmds := []tea.Cmd{listenCmd(m.events)}
		if msg.RestExpired {
			m.flash = true
			cmds = append(cmds, flashClearCmd())
		}
		return m, tea.Batch(cmds...)

	case flashClearMsg:
		m.flash = false
		return m, nil

	case tea.KeyMsg:
		if m.logging {
			return m.updateLogging(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		switch m.phase.Kind {
		case models.PhaseReady, models.PhaseResting:
			m.engine.StartCurrentSet()
		case models.PhaseCompleted:
			return m.saveWorkout()
		}
		m.phase = m.engine.Phase()
		return m, nil
	case "e", " ":
		m.engine.EndCurrentSet()
		m.phase = m.engine.Phase()
		return m, nil
	case "p":
		m.engine.PauseTimer()
		m.phase = m.engine.Phase()
		return m, nil
	case "r":
		m.engine.ResumeTimer()
		m.phase = m.engine.Phase()
		return m, nil
	case "l":
		if m.phase.Kind == models.PhaseWorking || m.phase.Kind == models.PhaseResting || m.phase.Kind == models.PhaseCompleted {
			m.logging = true
			m.logFocus = 0
			for i := range m.logInputs {
				m.logInputs[i].Reset()
				m.logInputs[i].Blur()
			}
			m.logInputs[0].Focus()
			return m, textinput.Blink
		}
		return m, nil
	case "t":
		next := NextTheme(CurrentThemeName())
		SetTheme(next)
		if m.store != nil {
			util.LogError("persist theme", m.store.SetSetting(context.Background(), config.SettingColorTheme, next))
		}
		return m, nil
	case "s":
		if m.notifier == nil {
			return m, nil
		}
		next := models.NextSound(m.notifier.Sound())
		m.notifier.SetSound(next)
		if m.store != nil {
			util.LogError("persist sound", m.store.SetSetting(context.Background(), config.SettingNotificationSound, string(next)))
		}
		m.Message = "Sound: " + string(next)
		return m, nil
	case "x":
		m.engine.ResetTimer()
		return m, func() tea.Msg { return workoutClosedMsg{saved: false} }
	}
	return m, nil
}

// saveWorkout finalizes the session. The engine resets as part of
// FinishWorkout, so on a failed save the returned session is held in
// the model and the next enter retries against storage directly.
func (m DashboardModel) saveWorkout() (DashboardModel, tea.Cmd) {
	if m.unsaved == nil {
		session, err := m.engine.FinishWorkout(context.Background())
		if err == nil {
			return m, func() tea.Msg { return workoutClosedMsg{saved: true} }
		}
		util.LogError("save workout", err)
		m.unsaved = session
		m.Message = "Save failed - enter to retry, x to discard"
		return m, nil
	}
	if m.store == nil {
		return m, nil
	}
	if err := m.store.SaveSession(context.Background(), m.unsaved); err != nil {
		util.LogError("save workout", err)
		m.Message = "Save failed - enter to retry, x to discard"
		return m, nil
	}
	m.unsaved = nil
	return m, func() tea.Msg { return workoutClosedMsg{saved: true} }
}

func (m DashboardModel) updateLogging(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.logging = false
		return m, nil
	case tea.KeyTab:
		m.logInputs[m.logFocus].Blur()
		m.logFocus = (m.logFocus + 1) % len(m.logInputs)
		m.logInputs[m.logFocus].Focus()
		return m, nil
	case tea.KeyEnter:
		set := models.SetLog{
			SetNumber:        m.nextSetNumber(),
			WeightResistance: strings.TrimSpace(m.logInputs[1].Value()),
			Notes:            strings.TrimSpace(m.logInputs[2].Value()),
		}
		if v := strings.TrimSpace(m.logInputs[0].Value()); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				set.Reps = util.Ptr(n)
			}
		}
		m.engine.AddSetLog(set)
		m.logging = false
		m.Message = fmt.Sprintf("Logged set %d", set.SetNumber)
		return m, nil
	}

	var cmd tea.Cmd
	m.logInputs[m.logFocus], cmd = m.logInputs[m.logFocus].Update(msg)
	return m, cmd
}

// nextSetNumber picks the set number for a new log entry: the set
// being worked, or the one just finished when resting or done.
func (m DashboardModel) nextSetNumber() int {
	switch m.phase.Kind {
	case models.PhaseWorking:
		return m.phase.CurrentSet
	case models.PhaseResting, models.PhasePaused:
		return m.phase.NextSet - 1
	case models.PhaseCompleted:
		return m.phase.TotalSets
	}
	return len(m.engine.SetLogs()) + 1
}

func (m DashboardModel) View() string {
	theme := CurrentTheme
	var b strings.Builder

	header := "SimpleTimer"
	if m.phase.Config != nil {
		header = m.phase.Config.ExerciseName
	}
	if m.flash {
		header = theme.Flash.Render(" REST COMPLETE ")
	} else {
		header = theme.Header.Render(header)
	}
	b.WriteString(m.center(header))
	b.WriteString("\n\n")

	b.WriteString("  " + theme.Phase.Render(FormatPhase(m.phase)) + "\n\n")

	switch m.phase.Kind {
	case models.PhaseResting:
		b.WriteString("  " + theme.Timer.Render(FormatTimeRemaining(m.phase.TimeRemaining)) + "\n")
		if m.phase.Config != nil && m.phase.Config.RestDuration > 0 {
			pct := float64(m.phase.TimeRemaining) / float64(m.phase.Config.RestDuration)
			b.WriteString("  " + m.progress.ViewAs(pct) + "\n")
		}
	case models.PhasePaused:
		b.WriteString("  " + theme.Dim.Render("-- paused --") + "\n")
	case models.PhaseCompleted:
		b.WriteString("  " + theme.Accent.Render(fmt.Sprintf("%d sets done, %d logged", m.phase.TotalSets, len(m.engine.SetLogs()))) + "\n")
	}

	if m.logging {
		b.WriteString("\n" + m.loggingView())
	}
	if m.Message != "" {
		b.WriteString("\n  " + theme.Highlight.Render(m.Message) + "\n")
	}
	b.WriteString("\n  " + theme.Dim.Render(m.keyHelp()) + "\n")
	return theme.Base.Render(b.String())
}

func (m DashboardModel) loggingView() string {
	theme := CurrentTheme
	labels := []string{"Reps", "Weight", "Notes"}
	var b strings.Builder
	b.WriteString("  " + theme.Accent.Render("Log set") + "\n")
	for i, in := range m.logInputs {
		label := theme.Dim.Render(labels[i])
		if i == m.logFocus {
			label = theme.Accent.Render(labels[i])
		}
		b.WriteString(fmt.Sprintf("    %s %s\n", label, in.View()))
	}
	b.WriteString("  " + theme.Dim.Render("enter: save  tab: move  esc: cancel") + "\n")
	return b.String()
}

func (m DashboardModel) keyHelp() string {
	switch m.phase.Kind {
	case models.PhaseReady:
		return "enter: start  x: abandon  q: quit"
	case models.PhaseWorking:
		return "e: end set  l: log set  x: abandon  q: quit"
	case models.PhaseResting:
		return "enter: skip rest  p: pause  l: log set  x: abandon"
	case models.PhasePaused:
		return "r: resume  x: abandon  q: quit"
	case models.PhaseCompleted:
		return "enter: save workout  l: log set  x: discard"
	}
	return "q: quit"
}

func (m DashboardModel) center(s string) string {
	if m.width <= 0 {
		return s
	}
	pad := (m.width - ansi.StringWidth(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
