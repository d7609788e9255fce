package views

import (
	"fmt"

	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/tui/ui"
	"github.com/rivo/tview"
)

// SettingsLabels are the localized texts of the settings page.
type SettingsLabels struct {
	Title  string
	Name   string
	Status string
	Save   string
	Theme  string
	Light  string
	Dark   string
	Share  string
	Logout string
}

// SettingsView edits the profile and the theme, and shows the profile QR.
type SettingsView struct {
	*tview.Flex
	theme  *ui.Theme
	labels SettingsLabels
	form   *tview.Form
	share  *tview.TextView

	name   string
	status string

	onSave        func(identity.ProfileUpdate)
	onToggleTheme func()
	onLogout      func()
}

// NewSettingsView creates the settings page.
func NewSettingsView(theme *ui.Theme, labels SettingsLabels) *SettingsView {
	form := tview.NewForm()
	form.SetBorder(true)
	form.SetBorderColor(theme.BorderColor)
	form.SetBackgroundColor(theme.BgColor)
	form.SetTitle(" " + labels.Title + " ")
	form.SetTitleColor(theme.TitleColor)
	form.SetLabelColor(theme.FgColor)
	form.SetFieldBackgroundColor(theme.TableCursorBg)
	form.SetFieldTextColor(theme.TableCursorFg)
	form.SetButtonBackgroundColor(theme.ButtonBgColor)
	form.SetButtonTextColor(theme.ButtonFgColor)
	form.SetBorderPadding(1, 1, 2, 2)

	share := tview.NewTextView().
		SetDynamicColors(true)
	share.SetBorder(true)
	share.SetBorderColor(theme.BorderColor)
	share.SetBackgroundColor(theme.BgColor)
	share.SetTextColor(theme.FgColor)
	share.SetTitle(" " + labels.Share + " ")
	share.SetTitleColor(theme.TitleColor)

	flex := tview.NewFlex().
		AddItem(form, 0, 1, true).
		AddItem(share, 0, 1, false)

	return &SettingsView{
		Flex:   flex,
		theme:  theme,
		labels: labels,
		form:   form,
		share:  share,
	}
}

// Name implements Component.
func (sv *SettingsView) Name() string { return sv.labels.Title }

// Hints implements Component.
func (sv *SettingsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Esc", Description: "Back"},
	}
}

// SetOnSave sets the callback for the save button.
func (sv *SettingsView) SetOnSave(fn func(identity.ProfileUpdate)) {
	sv.onSave = fn
}

// SetOnToggleTheme sets the callback for the theme button.
func (sv *SettingsView) SetOnToggleTheme(fn func()) {
	sv.onToggleTheme = fn
}

// SetOnLogout sets the callback for the logout button.
func (sv *SettingsView) SetOnLogout(fn func()) {
	sv.onLogout = fn
}

// Form returns the profile form (for focus management).
func (sv *SettingsView) Form() *tview.Form {
	return sv.form
}

// Update fills the page for u with the given active theme name.
func (sv *SettingsView) Update(u identity.User, themeName string) {
	sv.name = u.Name
	sv.status = u.Status

	sv.form.Clear(true)
	sv.form.AddInputField(sv.labels.Name, sv.name, 32, nil, func(s string) { sv.name = s })
	sv.form.AddInputField(sv.labels.Status, sv.status, 32, nil, func(s string) { sv.status = s })
	sv.form.AddButton(sv.labels.Save, func() {
		if sv.onSave == nil {
			return
		}
		name, status := sv.name, sv.status
		sv.onSave(identity.ProfileUpdate{Name: &name, Status: &status})
	})

	next := sv.labels.Dark
	if themeName == "dark" {
		next = sv.labels.Light
	}
	sv.form.AddButton(fmt.Sprintf("%s: %s", sv.labels.Theme, next), func() {
		if sv.onToggleTheme != nil {
			sv.onToggleTheme()
		}
	})
	sv.form.AddButton(sv.labels.Logout, func() {
		if sv.onLogout != nil {
			sv.onLogout()
		}
	})

	sv.renderShare(u)
}

func (sv *SettingsView) renderShare(u identity.User) {
	sv.share.Clear()
	uri := shareURI(u.Email)
	code, err := renderQR(uri)
	if err != nil {
		_, _ = fmt.Fprintf(sv.share, "\n  [%s]%s[-]", ui.ColorName(sv.theme.FlashErrColor), tview.Escape(err.Error()))
		return
	}
	_, _ = fmt.Fprintf(sv.share, "\n%s\n  [%s]%s[-]", code, ui.ColorName(sv.theme.MutedColor), tview.Escape(uri))
}
