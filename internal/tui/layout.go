package tui

import "github.com/akyairhashvil/eggtimer/internal/config"

// Screen origin of the widget; View starts with one blank line and indents
// every line by two columns.
const (
	originX = 2
	originY = 1
)

// Rows of the open widget, relative to the origin.
const (
	rowHeader = iota
	rowBoxTop
	rowTexture
	rowRuler
	rowLabels
	rowPointer
	rowTime
	rowBoxBottom
	rowGap1
	rowButton
	rowGap2
	rowProgress
	rowGap3
	rowHelp
)

type target int

const (
	targetOutside target = iota
	targetEgg
	targetDial
	targetButton
)

const (
	dialBoxWidth = config.DialWidth + 2
	eggBoxWidth  = config.ClosedWidth + 2
	eggRows      = 4 // border, time, hint, border
)

func buttonText(label string) string {
	return "[ " + label + " ]"
}

// buttonSpan is the half-open column range of the button, relative to the origin.
func buttonSpan(label string) (int, int) {
	w := len(buttonText(label))
	left := (dialBoxWidth - w) / 2
	return left, left + w
}

// hit resolves a screen cell to the part of the widget under it.
func (m Model) hit(x, y int) target {
	col, row := x-originX, y-originY
	if !m.ctrl.IsOpen() {
		if col >= 0 && col < eggBoxWidth && row >= rowBoxTop && row < rowBoxTop+eggRows {
			return targetEgg
		}
		return targetOutside
	}
	if col >= 0 && col < dialBoxWidth && row >= rowBoxTop && row <= rowBoxBottom {
		return targetDial
	}
	if row == rowButton {
		lo, hi := buttonSpan(m.ctrl.Button().Label)
		if col >= lo && col < hi {
			return targetButton
		}
	}
	return targetOutside
}
