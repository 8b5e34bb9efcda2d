package tui

import (
	"github.com/akyairhashvil/eggtimer/internal/config"
	"github.com/akyairhashvil/eggtimer/internal/dial"
	"github.com/akyairhashvil/eggtimer/internal/haptics"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root bubbletea model. It translates terminal events into
// controller transitions and renders the controller's surfaces.
type Model struct {
	ctrl  *dial.Controller
	pulse *haptics.Pulse // nil without haptics

	keys     keyMap
	help     help.Model
	progress progress.Model

	scheduled uint64 // tick generation with a tick in flight
	ticking   bool
	framing   bool
	frame     int
	pressed   target
	pressing  bool

	width  int
	height int
}

// NewModel wraps ctrl. pulse may be nil; when set it must be the Haptics
// the controller was built with.
func NewModel(ctrl *dial.Controller, pulse *haptics.Pulse) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = config.ProgressWidth
	return Model{
		ctrl:     ctrl,
		pulse:    pulse,
		keys:     newKeyMap(),
		help:     help.New(),
		progress: bar,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	case tickMsg:
		var cmd tea.Cmd
		m, cmd = m.handleTick(msg)
		cmds = append(cmds, cmd)
	case alarmEndedMsg:
		m.ctrl.AlarmEnded()
	case frameMsg:
		m.framing = false
		m.frame++
	}

	m, cmd := m.sync()
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	x := float64(msg.X) * config.PixelsPerCell
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		t := m.hit(msg.X, msg.Y)
		m.pressed, m.pressing = t, true
		switch t {
		case targetEgg:
			m.ctrl.Open()
		case targetDial:
			m.ctrl.PointerDown(x)
		case targetOutside:
			m.ctrl.OutsidePress()
		}
	case tea.MouseActionMotion:
		if m.ctrl.Dragging() {
			m.ctrl.PointerMove(x)
		}
	case tea.MouseActionRelease:
		t := m.hit(msg.X, msg.Y)
		if m.ctrl.Dragging() {
			m.ctrl.PointerUp()
		}
		if m.pressing && m.pressed == targetButton && t == targetButton {
			m.ctrl.Toggle()
		}
		m.pressing = false
		m.ctrl.PointerRelease(t == targetOutside)
	}
	return m
}

func (m Model) handleTick(msg tickMsg) (Model, tea.Cmd) {
	if msg.gen != m.scheduled {
		return m, nil
	}
	m.ticking = false
	switch m.ctrl.Tick(msg.gen) {
	case dial.TickApplied:
		m.ticking = true
		return m, tickCmd(msg.gen)
	case dial.TickRang:
		return m, waitAlarm(m.ctrl.AlarmDone())
	}
	return m, nil
}

// sync starts the periodic tick for a new generation and keeps frames
// coming while the dial shakes.
func (m Model) sync() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.ctrl.State() == dial.StateRunning && (!m.ticking || m.scheduled != m.ctrl.Generation()) {
		m.scheduled = m.ctrl.Generation()
		m.ticking = true
		cmds = append(cmds, tickCmd(m.scheduled))
	}
	if m.pulse != nil && m.pulse.Active() && !m.framing {
		m.framing = true
		cmds = append(cmds, frameCmd())
	}
	return m, tea.Batch(cmds...)
}
