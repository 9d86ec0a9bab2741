package panel

import (
	"image/color"

	"envpanel-go/services/panel/internal/halcore"

	"tinygo.org/x/tinyfont/freemono"
)

// DefaultStyle is the 9pt bold monospace face the panel renders with.
// Ascent 12 keeps a 16 px row clear of the next one.
func DefaultStyle() halcore.TextStyle {
	return halcore.TextStyle{
		Font:     &freemono.Bold9pt7b,
		Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Ascent:   12,
		Baseline: halcore.BaselineTop,
	}
}
