package prefs

import "github.com/muesli/termenv"

// Detector reports the theme the environment prefers.
type Detector func() Theme

// DetectTerminal infers the preferred theme from the terminal background.
func DetectTerminal() Theme {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}
