package render

import "github.com/gdamore/tcell/v2"

// Theme is a palette for one display mode
type Theme struct {
	Name string

	Background tcell.Color
	Foreground tcell.Color
	Muted      tcell.Color // Help text, empty timer track
	Accent     tcell.Color // Title, panel headers

	BoardLight tcell.Color // Checkerboard squares
	BoardDark  tcell.Color

	PanelBorder tcell.Color
	OverlayBg   tcell.Color
	OverlayFg   tcell.Color
}

// LightTheme is the default palette
func LightTheme() Theme {
	return Theme{
		Name:        "light",
		Background:  tcell.NewRGBColor(250, 247, 240),
		Foreground:  tcell.NewRGBColor(40, 40, 40),
		Muted:       tcell.NewRGBColor(140, 140, 140),
		Accent:      tcell.NewRGBColor(200, 40, 40),
		BoardLight:  tcell.NewRGBColor(214, 236, 190),
		BoardDark:   tcell.NewRGBColor(190, 222, 160),
		PanelBorder: tcell.NewRGBColor(120, 120, 120),
		OverlayBg:   tcell.NewRGBColor(255, 255, 255),
		OverlayFg:   tcell.NewRGBColor(30, 30, 30),
	}
}

// DarkTheme matches a Tokyo Night terminal
func DarkTheme() Theme {
	return Theme{
		Name:        "dark",
		Background:  tcell.NewRGBColor(26, 27, 38),
		Foreground:  tcell.NewRGBColor(220, 220, 230),
		Muted:       tcell.NewRGBColor(110, 110, 130),
		Accent:      tcell.NewRGBColor(255, 110, 100),
		BoardLight:  tcell.NewRGBColor(44, 60, 44),
		BoardDark:   tcell.NewRGBColor(34, 48, 34),
		PanelBorder: tcell.NewRGBColor(90, 90, 110),
		OverlayBg:   tcell.NewRGBColor(40, 42, 58),
		OverlayFg:   tcell.NewRGBColor(240, 240, 250),
	}
}

// ThemeFor picks the palette for the light-mode switch
func ThemeFor(light bool) Theme {
	if light {
		return LightTheme()
	}
	return DarkTheme()
}

// Base returns the default style of the theme
func (t Theme) Base() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
}
