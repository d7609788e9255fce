package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// ProfileData holds what the header shows about the signed-in user.
type ProfileData struct {
	Name   string
	Email  string
	Status string
	Theme  string
	Chats  int
	Unread int
}

// ProfileInfo displays profile metadata in the header.
type ProfileInfo struct {
	*tview.TextView
	theme *Theme
}

// NewProfileInfo creates a new profile info panel.
func NewProfileInfo(theme *Theme) *ProfileInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &ProfileInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the profile info. A nil data shows only the profile name.
func (pi *ProfileInfo) Update(profile string, data *ProfileData) {
	pi.Clear()

	fg := ColorName(pi.theme.FgColor)
	counter := ColorName(pi.theme.CounterColor)

	if data == nil {
		_, _ = fmt.Fprintf(pi, "[%s::b]Profile:[-:-:-] [%s]%s[-]", fg, counter, profile)
		return
	}

	status := data.Status
	if status == "" {
		status = "-"
	}

	_, _ = fmt.Fprintf(pi,
		"[%s::b]Profile:[-:-:-] [%s]%s[-]\n"+
			"[%s::b]User:[-:-:-]    [%s]%s[-]\n"+
			"[%s::b]Email:[-:-:-]   [%s]%s[-]\n"+
			"[%s::b]Status:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]Chats:[-:-:-]   [%s]%d (%d unread)[-]\n"+
			"[%s::b]Theme:[-:-:-]   [%s]%s[-]",
		fg, counter, profile,
		fg, counter, tview.Escape(data.Name),
		fg, counter, tview.Escape(data.Email),
		fg, counter, tview.Escape(status),
		fg, counter, data.Chats, data.Unread,
		fg, counter, data.Theme,
	)
}
