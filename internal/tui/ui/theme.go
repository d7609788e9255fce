package ui

import "github.com/gdamore/tcell/v2"

// Theme holds color constants for the TUI.
type Theme struct {
	Name              string
	BgColor           tcell.Color
	FgColor           tcell.Color
	MutedColor        tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	TableHeaderFg     tcell.Color
	TableHeaderBg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	CrumbActiveFg     tcell.Color
	CrumbActiveBg     tcell.Color
	CrumbInactiveFg   tcell.Color
	CrumbInactiveBg   tcell.Color
	MenuKeyColor      tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	UnreadColor       tcell.Color
	OnlineColor       tcell.Color
	OwnMessageColor   tcell.Color
	TickColor         tcell.Color
	TickReadColor     tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
	ButtonBgColor     tcell.Color
	ButtonFgColor     tcell.Color
}

// DarkTheme returns the dark palette.
func DarkTheme() *Theme {
	return &Theme{
		Name:              "dark",
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorWhiteSmoke,
		MutedColor:        tcell.ColorGray,
		BorderColor:       tcell.ColorDarkCyan,
		BorderFocusColor:  tcell.ColorLightSeaGreen,
		TableHeaderFg:     tcell.ColorWhite,
		TableHeaderBg:     tcell.ColorBlack,
		TableCursorFg:     tcell.ColorBlack,
		TableCursorBg:     tcell.ColorMediumAquamarine,
		CrumbActiveFg:     tcell.ColorBlack,
		CrumbActiveBg:     tcell.ColorMediumSeaGreen,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorDarkCyan,
		MenuKeyColor:      tcell.ColorMediumSeaGreen,
		TitleColor:        tcell.ColorLightSeaGreen,
		CounterColor:      tcell.ColorPapayaWhip,
		UnreadColor:       tcell.ColorLimeGreen,
		OnlineColor:       tcell.ColorLimeGreen,
		OwnMessageColor:   tcell.ColorPaleGreen,
		TickColor:         tcell.ColorGray,
		TickReadColor:     tcell.ColorDeepSkyBlue,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorDarkCyan,
		ButtonBgColor:     tcell.ColorDarkGreen,
		ButtonFgColor:     tcell.ColorWhite,
	}
}

// LightTheme returns the light palette.
func LightTheme() *Theme {
	return &Theme{
		Name:              "light",
		BgColor:           tcell.ColorWhite,
		FgColor:           tcell.ColorBlack,
		MutedColor:        tcell.ColorDimGray,
		BorderColor:       tcell.ColorTeal,
		BorderFocusColor:  tcell.ColorDarkGreen,
		TableHeaderFg:     tcell.ColorBlack,
		TableHeaderBg:     tcell.ColorWhite,
		TableCursorFg:     tcell.ColorBlack,
		TableCursorBg:     tcell.ColorPaleGreen,
		CrumbActiveFg:     tcell.ColorWhite,
		CrumbActiveBg:     tcell.ColorSeaGreen,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorLightGray,
		MenuKeyColor:      tcell.ColorSeaGreen,
		TitleColor:        tcell.ColorTeal,
		CounterColor:      tcell.ColorSaddleBrown,
		UnreadColor:       tcell.ColorGreen,
		OnlineColor:       tcell.ColorGreen,
		OwnMessageColor:   tcell.ColorDarkGreen,
		TickColor:         tcell.ColorDarkGray,
		TickReadColor:     tcell.ColorDodgerBlue,
		FlashInfoColor:    tcell.ColorNavy,
		FlashWarnColor:    tcell.ColorDarkOrange,
		FlashErrColor:     tcell.ColorRed,
		PromptBorderColor: tcell.ColorTeal,
		ButtonBgColor:     tcell.ColorSeaGreen,
		ButtonFgColor:     tcell.ColorWhite,
	}
}

// ThemeNamed returns the palette called name, defaulting to dark.
func ThemeNamed(name string) *Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
