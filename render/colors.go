package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/apple-ten/constants"
)

// RGB color definitions shared by both themes
var (
	RgbAppleRed     = tcell.NewRGBColor(220, 50, 47)    // Apple body
	RgbAppleRedDeep = tcell.NewRGBColor(180, 35, 35)    // Alternate apple body on the checkerboard
	RgbAppleText    = tcell.NewRGBColor(255, 255, 255) // Value glyph

	RgbSelection = tcell.NewRGBColor(70, 130, 230) // Drag rectangle, sum not yet ten
	RgbMatch     = tcell.NewRGBColor(40, 180, 90)  // Drag rectangle summing to ten
	RgbHint      = tcell.NewRGBColor(250, 200, 40) // Hint rectangle

	RgbTimerOK       = tcell.NewRGBColor(60, 190, 80)  // Green above half
	RgbTimerWarn     = tcell.NewRGBColor(240, 170, 30) // Amber at or below half
	RgbTimerCritical = tcell.NewRGBColor(220, 50, 47)  // Red at or below a quarter
)

// Blend mixes two colors in Lab space, t in [0,1] moving from a to b
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := toColorful(a)
	cb := toColorful(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// TimerColor returns the bar color for the remaining-time ratio
func TimerColor(ratio float64) tcell.Color {
	switch {
	case ratio <= constants.TimerCriticalRatio:
		return RgbTimerCritical
	case ratio <= constants.TimerWarnRatio:
		return RgbTimerWarn
	default:
		return RgbTimerOK
	}
}
