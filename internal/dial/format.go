package dial

import (
	"fmt"
	"math"

	"github.com/akyairhashvil/eggtimer/internal/config"
	"github.com/akyairhashvil/eggtimer/internal/util"
)

// Adjust snaps a rotation to whole minutes and clamps it to the dial range.
func Adjust(rotation float64) float64 {
	adjusted := util.Clamp(util.Snap(rotation, config.MinuteDegrees), config.MinRotation, config.MaxRotation)
	if adjusted == 0 {
		return 0 // drop negative zero
	}
	return adjusted
}

// Seconds is the remaining time a rotation encodes.
func Seconds(rotation float64) int {
	return int(math.Round(math.Abs(rotation) / config.SecondDegrees))
}

// Format renders a rotation as H:MM:SS, or M:SS below one hour.
func Format(rotation float64) string {
	total := Seconds(rotation)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
