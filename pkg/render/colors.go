package render

import "image/color"

// ColorTheme selects the viewer color scheme
type ColorTheme int

const (
	ThemeMetal ColorTheme = iota
	ThemeBlueprint
	ThemeNord
)

// ThemeNames maps theme enum to display name
var ThemeNames = map[ColorTheme]string{
	ThemeMetal:     "Metal",
	ThemeBlueprint: "Blueprint",
	ThemeNord:      "Nord",
}

// CurrentTheme is the active color theme (default: Metal)
var CurrentTheme = ThemeMetal

// themeColors holds the per-element palette of one theme.
type themeColors struct {
	Background color.NRGBA // chip substrate
	Metal      color.NRGBA // base-layer metal (pads, pocket frames)
	Subtract   color.NRGBA // ground-plane cutouts, semi-transparent
	Junction   color.NRGBA // Josephson junction markers
	Pin        color.NRGBA // connection pin markers
	PinNormal  color.NRGBA // pin direction indicator
}

// Metal theme: pale metal on dark sapphire, the usual layout-tool look.
var metalColors = themeColors{
	Background: color.NRGBA{R: 16, G: 20, B: 38, A: 255},
	Metal:      color.NRGBA{R: 188, G: 196, B: 212, A: 255},
	Subtract:   color.NRGBA{R: 52, G: 120, B: 180, A: 110},
	Junction:   color.NRGBA{R: 227, G: 183, B: 46, A: 255},
	Pin:        color.NRGBA{R: 255, G: 38, B: 226, A: 255},
	PinNormal:  color.NRGBA{R: 255, G: 255, B: 0, A: 255},
}

// Blueprint theme: white linework on blue
var blueprintColors = themeColors{
	Background: color.NRGBA{R: 20, G: 60, B: 90, A: 255},
	Metal:      color.NRGBA{R: 236, G: 242, B: 255, A: 255},
	Subtract:   color.NRGBA{R: 91, G: 195, B: 235, A: 110},
	Junction:   color.NRGBA{R: 235, G: 203, B: 139, A: 255},
	Pin:        color.NRGBA{R: 255, G: 150, B: 150, A: 255},
	PinNormal:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
}

// Nord theme (based on Nord color palette)
var nordColors = themeColors{
	Background: color.NRGBA{R: 46, G: 52, B: 64, A: 255},    // Nord0
	Metal:      color.NRGBA{R: 216, G: 222, B: 233, A: 255}, // Nord4
	Subtract:   color.NRGBA{R: 129, G: 161, B: 193, A: 110}, // Nord9
	Junction:   color.NRGBA{R: 235, G: 203, B: 139, A: 255}, // Nord13
	Pin:        color.NRGBA{R: 191, G: 97, B: 106, A: 255},  // Nord11
	PinNormal:  color.NRGBA{R: 163, G: 190, B: 140, A: 255}, // Nord14
}

// Theme returns the palette of the current theme.
func Theme() themeColors {
	switch CurrentTheme {
	case ThemeBlueprint:
		return blueprintColors
	case ThemeNord:
		return nordColors
	default:
		return metalColors
	}
}

// SetTheme changes the active color theme
func SetTheme(theme ColorTheme) {
	CurrentTheme = theme
}
