package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	colorschemes = map[string]tview.Theme{
		"default": tview.Theme{
			PrimitiveBackgroundColor:    tcell.ColorDefault,
			ContrastBackgroundColor:     tcell.ColorGray,
			MoreContrastBackgroundColor: tcell.ColorSteelBlue,
			BorderColor:                 tcell.ColorGray,
			TitleColor:                  tcell.ColorRed,
			GraphicsColor:               tcell.ColorBlue,
			PrimaryTextColor:            tcell.ColorLightGray,
			SecondaryTextColor:          tcell.ColorYellow,
			TertiaryTextColor:           tcell.ColorOrange,
			InverseTextColor:            tcell.ColorPurple,
			ContrastSecondaryTextColor:  tcell.ColorLime,
		},
		"gruvbox": tview.Theme{
			PrimitiveBackgroundColor:    tcell.NewHexColor(0x282828), // #282828
			ContrastBackgroundColor:     tcell.ColorDarkGoldenrod,
			MoreContrastBackgroundColor: tcell.ColorDarkSlateGray,
			BorderColor:                 tcell.ColorLightGray,
			TitleColor:                  tcell.ColorRed,
			GraphicsColor:               tcell.ColorDarkCyan,
			PrimaryTextColor:            tcell.ColorLightGray,
			SecondaryTextColor:          tcell.ColorYellow,
			TertiaryTextColor:           tcell.ColorOrange,
			InverseTextColor:            tcell.ColorWhite,
			ContrastSecondaryTextColor:  tcell.ColorLightGreen,
		},
		"dracula": tview.Theme{
			PrimitiveBackgroundColor:    tcell.NewHexColor(0x282a36), // #282a36
			ContrastBackgroundColor:     tcell.ColorDarkMagenta,
			MoreContrastBackgroundColor: tcell.ColorDarkGray,
			BorderColor:                 tcell.ColorLightGray,
			TitleColor:                  tcell.ColorRed,
			GraphicsColor:               tcell.ColorDarkCyan,
			PrimaryTextColor:            tcell.ColorWhite,
			SecondaryTextColor:          tcell.ColorYellow,
			TertiaryTextColor:           tcell.ColorOrange,
			InverseTextColor:            tcell.ColorWhite,
			ContrastSecondaryTextColor:  tcell.ColorLightGreen,
		},
	}
	// chunk table colours
	criticalColor  = tcell.ColorYellow
	ancillaryColor = tcell.ColorLightGray
	invalidColor   = tcell.ColorRed
)

func themeFor(name string) tview.Theme {
	if theme, ok := colorschemes[name]; ok {
		return theme
	}
	return colorschemes["default"]
}
