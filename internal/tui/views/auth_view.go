package views

import (
	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/tui/ui"
	"github.com/rivo/tview"
)

// AuthLabels are the localized texts of the auth form.
type AuthLabels struct {
	TitleLogin     string
	TitleRegister  string
	Name           string
	Email          string
	Password       string
	Token          string
	SubmitLogin    string
	SubmitRegister string
	SubmitToken    string
	ToggleRegister string
	ToggleLogin    string
}

// AuthView is the login/register form. It also accepts a token issued by an
// external identity provider.
type AuthView struct {
	*tview.Form
	theme    *ui.Theme
	labels   AuthLabels
	register bool

	email    string
	password string
	name     string
	token    string

	onSubmit func(identity.Credentials)
	refocus  func(tview.Primitive)
}

// NewAuthView creates a new auth view in login mode.
func NewAuthView(theme *ui.Theme, labels AuthLabels) *AuthView {
	form := tview.NewForm()
	form.SetBorder(true)
	form.SetBorderColor(theme.BorderColor)
	form.SetBackgroundColor(theme.BgColor)
	form.SetTitleColor(theme.TitleColor)
	form.SetLabelColor(theme.FgColor)
	form.SetFieldBackgroundColor(theme.TableCursorBg)
	form.SetFieldTextColor(theme.TableCursorFg)
	form.SetButtonBackgroundColor(theme.ButtonBgColor)
	form.SetButtonTextColor(theme.ButtonFgColor)
	form.SetBorderPadding(1, 1, 2, 2)

	av := &AuthView{
		Form:   form,
		theme:  theme,
		labels: labels,
	}
	av.build()
	return av
}

// Name implements Component.
func (av *AuthView) Name() string {
	if av.register {
		return av.labels.TitleRegister
	}
	return av.labels.TitleLogin
}

// Hints implements Component.
func (av *AuthView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl-C", Description: "Quit"},
	}
}

// SetOnSubmit sets the callback receiving the entered credentials.
func (av *AuthView) SetOnSubmit(fn func(identity.Credentials)) {
	av.onSubmit = fn
}

// SetRefocus sets the function used to hand focus back to the form after it
// is rebuilt.
func (av *AuthView) SetRefocus(fn func(tview.Primitive)) {
	av.refocus = fn
}

// Registering reports whether the form is in register mode.
func (av *AuthView) Registering() bool {
	return av.register
}

// ToggleMode switches between the login and register forms, keeping what
// was typed.
func (av *AuthView) ToggleMode() {
	av.register = !av.register
	av.build()
	av.SetFocus(av.GetFormItemCount() + av.GetButtonCount() - 1)
	if av.refocus != nil {
		av.refocus(av)
	}
}

// Reset clears the secrets after a successful login.
func (av *AuthView) Reset() {
	av.password = ""
	av.token = ""
	av.build()
}

// Credentials returns what the form currently holds.
func (av *AuthView) Credentials() identity.FormCredentials {
	c := identity.FormCredentials{Email: av.email, Password: av.password}
	if av.register {
		c.Name = av.name
	}
	return c
}

func (av *AuthView) build() {
	av.Clear(true)
	av.SetTitle(" " + av.Name() + " ")

	if av.register {
		av.AddInputField(av.labels.Name, av.name, 32, nil, func(s string) { av.name = s })
	}
	av.AddInputField(av.labels.Email, av.email, 32, nil, func(s string) { av.email = s })
	av.AddPasswordField(av.labels.Password, av.password, 32, '*', func(s string) { av.password = s })
	av.AddInputField(av.labels.Token, av.token, 32, nil, func(s string) { av.token = s })

	submit := av.labels.SubmitLogin
	toggle := av.labels.ToggleRegister
	if av.register {
		submit = av.labels.SubmitRegister
		toggle = av.labels.ToggleLogin
	}
	av.AddButton(submit, func() { av.submit(av.Credentials()) })
	av.AddButton(av.labels.SubmitToken, func() {
		av.submit(identity.AssertionCredentials{Token: av.token})
	})
	av.AddButton(toggle, av.ToggleMode)
}

func (av *AuthView) submit(c identity.Credentials) {
	if av.onSubmit != nil {
		av.onSubmit(c)
	}
}
