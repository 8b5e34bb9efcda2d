package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/eggtimer/internal/audio"
	"github.com/akyairhashvil/eggtimer/internal/config"
	"github.com/akyairhashvil/eggtimer/internal/dial"
	"github.com/akyairhashvil/eggtimer/internal/haptics"
	"github.com/akyairhashvil/eggtimer/internal/tui"
	"github.com/akyairhashvil/eggtimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	// 1. Options
	opts, err := config.LoadOptions(os.Getenv)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("eggtimer needs an interactive terminal.")
		os.Exit(1)
	}

	// 2. Logging stays off the screen; with EGGTIMER_DEBUG it goes to a file.
	closeLog, err := setupLogging(opts)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if !tui.SetTheme(opts.Theme) {
		log.Printf("unknown theme %q, using %s", opts.Theme, config.DefaultTheme)
	}

	// 3. Feedback devices
	sound, closeAudio := openAudio(opts, audio.Open)
	defer closeAudio()
	vibration, pulse := newHaptics(opts)

	// 4. Widget and program
	ctrl := dial.New(sound, vibration)
	model := tui.NewModel(ctrl, pulse)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func setupLogging(opts config.Options) (func(), error) {
	if !opts.Debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	dir := util.StateDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, config.LogFileName), config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { util.LogError("close debug log", f.Close()) }, nil
}

// openAudio falls back to silent clips when muted or when the speaker
// cannot be opened, so the alarm still ends on schedule.
func openAudio(opts config.Options, open func(float64) (*audio.Player, error)) (dial.Audio, func()) {
	if opts.Mute {
		return audio.NewSilent(), func() {}
	}
	p, err := open(opts.Volume)
	if err != nil {
		util.LogError("audio", err)
		return audio.NewSilent(), func() {}
	}
	return p, p.Close
}

func newHaptics(opts config.Options) (dial.Haptics, *haptics.Pulse) {
	if opts.NoHaptics {
		return nil, nil
	}
	pulse := haptics.NewPulse()
	return pulse, pulse
}
