package tui

import (
	"github.com/matheus3301/flowchat/internal/tui/model"
	"github.com/matheus3301/flowchat/internal/tui/views"
)

func authLabels(tr model.Translator) views.AuthLabels {
	return views.AuthLabels{
		TitleLogin:     tr.T("auth.title.login"),
		TitleRegister:  tr.T("auth.title.register"),
		Name:           tr.T("auth.name"),
		Email:          tr.T("auth.email"),
		Password:       tr.T("auth.password"),
		Token:          tr.T("auth.token"),
		SubmitLogin:    tr.T("auth.submit.login"),
		SubmitRegister: tr.T("auth.submit.register"),
		SubmitToken:    tr.T("auth.submit.token"),
		ToggleRegister: tr.T("auth.toggle.register"),
		ToggleLogin:    tr.T("auth.toggle.login"),
	}
}

func settingsLabels(tr model.Translator) views.SettingsLabels {
	return views.SettingsLabels{
		Title:  tr.T("settings.title"),
		Name:   tr.T("settings.name"),
		Status: tr.T("settings.status"),
		Save:   tr.T("settings.save"),
		Theme:  tr.T("settings.theme"),
		Light:  tr.T("settings.theme.light"),
		Dark:   tr.T("settings.theme.dark"),
		Share:  tr.T("settings.share"),
		Logout: tr.T("settings.logout"),
	}
}

func participantLabels(tr model.Translator) views.ParticipantLabels {
	return views.ParticipantLabels{
		Title:    tr.T("details.title"),
		Status:   tr.T("details.status"),
		Email:    tr.T("details.email"),
		Online:   tr.T("details.online"),
		Offline:  tr.T("details.offline"),
		Messages: tr.T("details.messages"),
	}
}
