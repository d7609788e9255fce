package views

import (
	"fmt"

	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/tui/ui"
	"github.com/rivo/tview"
)

// ParticipantLabels are the localized field names of the details view.
type ParticipantLabels struct {
	Title, Status, Email, Online, Offline, Messages string
}

// ParticipantInfo shows who is on the other side of the open chat.
type ParticipantInfo struct {
	*tview.TextView
	theme  *ui.Theme
	labels ParticipantLabels
}

// NewParticipantInfo creates a new participant details view.
func NewParticipantInfo(theme *ui.Theme, labels ParticipantLabels) *ParticipantInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" " + labels.Title + " ")
	tv.SetTitleColor(theme.TitleColor)

	return &ParticipantInfo{
		TextView: tv,
		theme:    theme,
		labels:   labels,
	}
}

// Name implements Component.
func (pi *ParticipantInfo) Name() string { return pi.labels.Title }

// Hints implements Component.
func (pi *ParticipantInfo) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// Update renders the details of u.
func (pi *ParticipantInfo) Update(u identity.User, messages int) {
	pi.Clear()

	fg := ui.ColorName(pi.theme.FgColor)
	ct := ui.ColorName(pi.theme.CounterColor)

	presence := pi.labels.Offline
	if u.Online {
		presence = pi.labels.Online
	}
	status := u.Status
	if status == "" {
		status = "-"
	}

	_, _ = fmt.Fprintf(pi,
		"\n [%s::b]%s[-:-:-]\n\n"+
			" [%s::b]%s:[-:-:-] [%s]%s[-]\n"+
			" [%s::b]%s:[-:-:-] [%s]%s[-]\n"+
			" [%s::b]%s:[-:-:-] [%s]%d[-]\n\n"+
			" [%s]%s[-]",
		ct, display(u.Name),
		fg, pi.labels.Status, ct, display(status),
		fg, pi.labels.Email, ct, display(u.Email),
		fg, pi.labels.Messages, ct, messages,
		ui.ColorName(pi.theme.MutedColor), presence,
	)
	pi.SetTitle(fmt.Sprintf(" %s: %s ", pi.labels.Title, display(u.Name)))
}
