package tui

import (
	"time"

	"github.com/akyairhashvil/eggtimer/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// tickMsg is one countdown second for the tick generation gen.
type tickMsg struct {
	gen uint64
}

// alarmEndedMsg reports that the alarm clip finished playing.
type alarmEndedMsg struct{}

// frameMsg redraws the dial while a haptic pulse is shaking it.
type frameMsg time.Time

const frameInterval = 50 * time.Millisecond

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(config.TickInterval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// waitAlarm blocks off the update loop until done is closed.
func waitAlarm(done <-chan struct{}) tea.Cmd {
	if done == nil {
		return nil
	}
	return func() tea.Msg {
		<-done
		return alarmEndedMsg{}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}
