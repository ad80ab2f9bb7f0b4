package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tigrerol/SimpleTimerApp/internal/config"
	"github.com/tigrerol/SimpleTimerApp/internal/database"
	"github.com/tigrerol/SimpleTimerApp/internal/notify"
	"github.com/tigrerol/SimpleTimerApp/internal/timer"
	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateConfiguring SessionState = iota
	StateDashboard
)

// MainModel is the root bubbletea model that switches between the
// configure form and the live workout dashboard.
type MainModel struct {
	state     SessionState
	store     database.Store
	engine    *timer.Engine
	notifier  *notify.Terminal
	defaults  config.File
	form      ConfigureModel
	dashboard DashboardModel
	err       error
	width     int
	height    int
}

func NewMainModel(engine *timer.Engine, store database.Store, notifier *notify.Terminal, defaults config.File) MainModel {
	return MainModel{
		state:    StateConfiguring,
		store:    store,
		engine:   engine,
		notifier: notifier,
		defaults: defaults,
		form:     NewConfigureModel(defaults, recentNames(store)),
	}
}

func recentNames(store database.Store) []string {
	if store == nil {
		return nil
	}
	names, err := store.RecentExerciseNames(context.Background(), config.MaxRecentNames)
	if err != nil {
		util.LogError("recent exercise names", err)
		return nil
	}
	return names
}

func (m MainModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		default:
			if msg.String() == "q" && m.state == StateDashboard && !m.dashboard.logging {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateDashboard {
			var cmd tea.Cmd
			m.dashboard, cmd = m.dashboard.Update(msg)
			return m, cmd
		}
		return m, nil

	case configSubmittedMsg:
		m.engine.ConfigureWorkout(msg.cfg)
		m.state = StateDashboard
		m.dashboard = NewDashboardModel(m.engine, m.store, m.notifier)
		m.dashboard.width = m.width
		m.dashboard.height = m.height
		return m, m.dashboard.Init()

	case workoutClosedMsg:
		// Release the dashboard's engine subscription so it does not
		// pile up across workout cycles.
		m.engine.Unsubscribe(m.dashboard.events)
		m.state = StateConfiguring
		m.form = NewConfigureModel(m.defaults, recentNames(m.store))
		return m, m.form.Init()
	}

	switch m.state {
	case StateConfiguring:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case StateDashboard:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\nPress Ctrl+C to quit.", m.err)
	}
	switch m.state {
	case StateConfiguring:
		return m.form.View()
	case StateDashboard:
		return m.dashboard.View()
	}
	return ""
}
