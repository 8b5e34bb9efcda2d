package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name           string
	Border         lipgloss.Color
	DragBorder     lipgloss.Color
	AlarmBorder    lipgloss.Color
	Header         lipgloss.Style
	Time           lipgloss.Style
	Ringing        lipgloss.Style
	Button         lipgloss.Style
	ButtonStop     lipgloss.Style
	ButtonDisabled lipgloss.Style
	Tick           lipgloss.Style
	MajorTick      lipgloss.Style
	Label          lipgloss.Style
	Pointer        lipgloss.Style
	Texture        lipgloss.Style
	Dim            lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:           "Default",
		Border:         lipgloss.Color("63"),
		DragBorder:     lipgloss.Color("205"),
		AlarmBorder:    lipgloss.Color("196"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Time:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Ringing:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		ButtonStop:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Tick:           lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		MajorTick:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Label:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Pointer:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Texture:        lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:           "Dracula",
		Border:         lipgloss.Color("62"),  // Purple
		DragBorder:     lipgloss.Color("212"), // Pink
		AlarmBorder:    lipgloss.Color("203"), // Red
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Time:           lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true), // White
		Ringing:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		ButtonStop:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Tick:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		MajorTick:      lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true), // Yellow
		Label:          lipgloss.NewStyle().Foreground(lipgloss.Color("141")),            // Purple
		Pointer:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Texture:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches themes, reporting whether name exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}
