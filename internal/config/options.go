package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read at start-up.
const (
	EnvMute      = "EGGTIMER_MUTE"
	EnvNoHaptics = "EGGTIMER_NO_HAPTICS"
	EnvTheme     = "EGGTIMER_THEME"
	EnvDebug     = "EGGTIMER_DEBUG"
	EnvVolume    = "EGGTIMER_VOLUME"
)

// Options are the runtime switches taken from the environment.
type Options struct {
	Mute      bool
	NoHaptics bool
	Debug     bool
	Theme     string
	Volume    float64 // linear gain, 0..1
}

func DefaultOptions() Options {
	return Options{Theme: DefaultTheme, Volume: 0.8}
}

// LoadOptions builds Options from getenv, usually os.Getenv.
func LoadOptions(getenv func(string) string) (Options, error) {
	opts := DefaultOptions()
	var err error
	if opts.Mute, err = envBool(getenv, EnvMute); err != nil {
		return opts, err
	}
	if opts.NoHaptics, err = envBool(getenv, EnvNoHaptics); err != nil {
		return opts, err
	}
	if opts.Debug, err = envBool(getenv, EnvDebug); err != nil {
		return opts, err
	}
	if theme := strings.TrimSpace(getenv(EnvTheme)); theme != "" {
		opts.Theme = strings.ToLower(theme)
	}
	if raw := strings.TrimSpace(getenv(EnvVolume)); raw != "" {
		vol, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return opts, fmt.Errorf("%s: %w", EnvVolume, perr)
		}
		if vol < 0 || vol > 1 {
			return opts, fmt.Errorf("%s: %v out of range [0,1]", EnvVolume, vol)
		}
		opts.Volume = vol
	}
	return opts, nil
}

func envBool(getenv func(string) string, key string) (bool, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
