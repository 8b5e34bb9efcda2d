package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/eggtimer/internal/config"
	"github.com/akyairhashvil/eggtimer/internal/dial"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const texturePattern = "╱╲"

func (m Model) View() string {
	var lines []string
	if m.ctrl.IsOpen() {
		lines = m.openView()
	} else {
		lines = m.closedView()
	}

	var b strings.Builder
	b.WriteString("\n")
	pad := strings.Repeat(" ", originX)
	for _, line := range lines {
		for _, l := range strings.Split(line, "\n") {
			b.WriteString(m.fit(pad + l))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// fit truncates a line to the terminal width once the width is known.
func (m Model) fit(line string) string {
	if m.width <= 0 || ansi.StringWidth(line) <= m.width {
		return line
	}
	return ansi.Truncate(line, m.width, config.TruncationSuffix)
}

func (m Model) header() string {
	title := "Egg Timer"
	switch m.ctrl.State() {
	case dial.StateRunning:
		title += " · running"
	case dial.StatePaused:
		title += " · winding"
	case dial.StateRinging:
		return CurrentTheme.Ringing.Render(title + " · RING!")
	}
	return CurrentTheme.Header.Render(title)
}

func (m Model) closedView() []string {
	timeStyle := CurrentTheme.Time
	border := CurrentTheme.Border
	if m.ctrl.Ringing() {
		timeStyle = CurrentTheme.Ringing
		border = CurrentTheme.AlarmBorder
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		timeStyle.Render(m.ctrl.TimeText()),
		CurrentTheme.Dim.Render("click"),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(config.ClosedWidth).
		Align(lipgloss.Center).
		Render(body)

	lines := []string{m.header()}
	return append(lines, m.shake(strings.Split(box, "\n"))...)
}

func (m Model) openView() []string {
	border := CurrentTheme.Border
	switch {
	case m.ctrl.Ringing():
		border = CurrentTheme.AlarmBorder
	case m.ctrl.Dragging():
		border = CurrentTheme.DragBorder
	}

	timeStyle := CurrentTheme.Time
	if m.ctrl.Ringing() {
		timeStyle = CurrentTheme.Ringing
	}
	center := config.DialWidth / 2
	body := strings.Join([]string{
		CurrentTheme.Texture.Render(texture(m.ctrl.Offset(), config.DialWidth)),
		rulerMarks(m.ctrl.Rotation(), config.DialWidth),
		rulerLabels(m.ctrl.Rotation(), config.DialWidth),
		strings.Repeat(" ", center) + CurrentTheme.Pointer.Render("▲"),
		lipgloss.PlaceHorizontal(config.DialWidth, lipgloss.Center, timeStyle.Render(m.ctrl.TimeText())),
	}, "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(config.DialWidth).
		Render(body)

	lines := []string{m.header()}
	lines = append(lines, m.shake(strings.Split(box, "\n"))...)
	lines = append(lines, "", m.button(), "", m.progressBar(), "", m.help.View(m.keys))
	return lines
}

func (m Model) button() string {
	b := m.ctrl.Button()
	style := CurrentTheme.Button
	switch {
	case b.Disabled:
		style = CurrentTheme.ButtonDisabled
	case b.Stopping:
		style = CurrentTheme.ButtonStop
	}
	left, _ := buttonSpan(b.Label)
	return strings.Repeat(" ", left) + style.Render(buttonText(b.Label))
}

func (m Model) progressBar() string {
	frac := m.ctrl.Remaining().Hours()
	if frac > 1 {
		frac = 1
	}
	return m.progress.ViewAs(frac)
}

// shake offsets every other frame while a haptic pulse is active.
func (m Model) shake(lines []string) []string {
	if m.pulse == nil || !m.pulse.Active() || m.frame%2 == 0 {
		return lines
	}
	pad := strings.Repeat(" ", config.ShakeAmplitude)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = pad + l
	}
	return out
}

// rulerPos is the ruler position, in cells, under the centre pointer.
func rulerPos(rotation float64) float64 {
	return -rotation / config.MinuteDegrees * config.RulerCellsPerMinute
}

// rulerMarks draws the minute scale. Minutes grow to the right, so dragging
// right carries smaller values under the pointer.
func rulerMarks(rotation float64, width int) string {
	base := rulerPos(rotation)
	center := width / 2
	var b strings.Builder
	for i := 0; i < width; i++ {
		cell := int(math.Round(base + float64(i-center)))
		b.WriteString(markAt(cell))
	}
	return b.String()
}

func markAt(cell int) string {
	maxCell := int(-config.MinRotation/config.MinuteDegrees) * config.RulerCellsPerMinute
	if cell < 0 || cell > maxCell {
		return " "
	}
	if cell%config.RulerCellsPerMinute != 0 {
		return CurrentTheme.Tick.Render("·")
	}
	if (cell/config.RulerCellsPerMinute)%5 == 0 {
		return CurrentTheme.MajorTick.Render("┃")
	}
	return CurrentTheme.Tick.Render("│")
}

// rulerLabels numbers every fifth minute under its mark.
func rulerLabels(rotation float64, width int) string {
	base := rulerPos(rotation)
	center := width / 2
	row := []rune(strings.Repeat(" ", width))
	for i := 0; i < width; i++ {
		cell := int(math.Round(base + float64(i-center)))
		maxCell := int(-config.MinRotation/config.MinuteDegrees) * config.RulerCellsPerMinute
		if cell < 0 || cell > maxCell || cell%(5*config.RulerCellsPerMinute) != 0 {
			continue
		}
		label := []rune(strconv.Itoa(cell / config.RulerCellsPerMinute))
		if i+len(label) > width {
			continue
		}
		copy(row[i:], label)
	}
	return CurrentTheme.Label.Render(string(row))
}

// texture draws the face pattern, shifted by the background offset.
func texture(offset float64, width int) string {
	pattern := []rune(texturePattern)
	shift := int(math.Round(offset / config.PixelsPerCell))
	var b strings.Builder
	for i := 0; i < width; i++ {
		idx := ((i-shift)%len(pattern) + len(pattern)) % len(pattern)
		b.WriteRune(pattern[idx])
	}
	return b.String()
}
