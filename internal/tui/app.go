// Package tui is the terminal front end: auth form, chat list, conversation
// thread and settings, driven by the application state.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/flowchat/internal/bus"
	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/locale"
	"github.com/matheus3301/flowchat/internal/nav"
	"github.com/matheus3301/flowchat/internal/prefs"
	"github.com/matheus3301/flowchat/internal/state"
	"github.com/matheus3301/flowchat/internal/tui/keys"
	"github.com/matheus3301/flowchat/internal/tui/model"
	"github.com/matheus3301/flowchat/internal/tui/ui"
	"github.com/matheus3301/flowchat/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Page names inside the tview page stack.
const (
	pageAuth     = "auth"
	pageChats    = "chats"
	pageThread   = "thread"
	pageDetails  = "details"
	pageSettings = "settings"
	pageHelp     = "help"
)

// App is the main TUI application shell.
type App struct {
	app     *tview.Application
	state   *state.App
	loc     *locale.Localizer
	bus     *bus.Bus
	logger  *zap.Logger
	profile string

	vm       *model.ViewModel
	registry *keys.Registry
	flash    *ui.FlashModel

	// Widgets below are rebuilt whenever the theme changes.
	theme      *ui.Theme
	root       *tview.Flex
	pages      *ui.Pages
	info       *ui.ProfileInfo
	menu       *ui.Menu
	crumbs     *ui.Crumbs
	flashBar   *ui.FlashBar
	prompt     *ui.Prompt
	authView   *views.AuthView
	chatList   *views.ConversationList
	thread     *views.MessageThread
	details    *views.ParticipantInfo
	settings   *views.SettingsView
	help       *views.HelpView
	components map[string]ui.Component
	promptOpen bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application over a booted state.
func NewApp(st *state.App, loc *locale.Localizer, b *bus.Bus, logger *zap.Logger, profile string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		app:      tview.NewApplication(),
		state:    st,
		loc:      loc,
		bus:      b,
		logger:   logger,
		profile:  profile,
		vm:       model.NewViewModel(st, loc),
		registry: keys.NewRegistry(),
		flash:    ui.NewFlashModel(),
		ctx:      ctx,
		cancel:   cancel,
	}

	a.setupBindings()
	a.build()
	a.app.SetInputCapture(a.captureInput)
	return a
}

func (a *App) setupBindings() {
	a.registry.AddGlobal(keys.OnRune('q', a.Stop))
	a.registry.AddGlobal(keys.OnRune(':', func() { a.openPrompt(ui.PromptCommand) }))
	a.registry.AddGlobal(keys.OnRune('?', a.showHelp))

	a.registry.AddView(pageChats, keys.OnRune('/', func() { a.openPrompt(ui.PromptFilter) }))
	a.registry.AddView(pageChats, keys.OnRune('0', func() { a.setFilter("") }))
	a.registry.AddView(pageChats, keys.OnRune(',', func() { a.navigate(nav.Settings) }))
	for n := '1'; n <= '9'; n++ {
		idx := int(n - '0')
		a.registry.AddView(pageChats, keys.OnRune(n, func() {
			if id := a.chatList.ChatByIndex(idx); id != "" {
				a.openChat(id)
			}
		}))
	}

	a.registry.AddView(pageThread, keys.OnRune('i', func() { a.app.SetFocus(a.thread.Composer()) }))
	a.registry.AddView(pageThread, keys.OnRune('d', a.showDetails))
}

// build creates every widget with the current theme and lays them out.
func (a *App) build() {
	a.theme = ui.ThemeNamed(string(a.state.Theme()))
	t := a.theme

	a.pages = ui.NewPages()
	a.info = ui.NewProfileInfo(t)
	a.menu = ui.NewMenu(t)
	a.crumbs = ui.NewCrumbs(t)
	a.flashBar = ui.NewFlashBar(t)
	a.prompt = ui.NewPrompt(t)
	a.authView = views.NewAuthView(t, authLabels(a.loc))
	a.chatList = views.NewConversationList(t, a.loc.T("chats.title"))
	a.thread = views.NewMessageThread(t, a.loc.T("thread.compose"))
	a.details = views.NewParticipantInfo(t, participantLabels(a.loc))
	a.settings = views.NewSettingsView(t, settingsLabels(a.loc))
	a.help = views.NewHelpView(t)

	a.components = map[string]ui.Component{
		pageAuth:     a.authView,
		pageChats:    a.chatList,
		pageThread:   a.thread,
		pageDetails:  a.details,
		pageSettings: a.settings,
		pageHelp:     a.help,
	}

	a.pages.AddPage(pageAuth, a.authView, true, false)
	a.pages.AddPage(pageChats, a.chatList, true, false)
	a.pages.AddPage(pageThread, a.thread, true, false)
	a.pages.AddPage(pageDetails, a.details, true, false)
	a.pages.AddPage(pageSettings, a.settings, true, false)
	a.pages.AddPage(pageHelp, a.help, true, false)
	a.pages.SetOnChange(a.onStackChange)

	a.authView.SetOnSubmit(a.login)
	a.authView.SetRefocus(func(p tview.Primitive) { a.app.SetFocus(p) })
	a.chatList.SetSelectedFunc(func(row, _ int) {
		if id := a.chatList.ChatByIndex(row); id != "" {
			a.openChat(id)
		}
	})
	a.thread.SetOnSend(a.send)
	a.settings.SetOnSave(a.saveProfile)
	a.settings.SetOnToggleTheme(func() { a.setTheme("") })
	a.settings.SetOnLogout(a.logout)
	a.prompt.SetOnSubmit(a.submitPrompt)
	a.prompt.SetOnChange(func(mode ui.PromptMode, text string) {
		if mode == ui.PromptFilter {
			a.setFilter(text)
		}
	})
	a.prompt.SetOnCancel(a.closePrompt)

	logo := ui.NewLogo(t)
	header := tview.NewFlex().
		AddItem(logo, 16, 0, false).
		AddItem(a.info, 0, 1, false).
		AddItem(a.menu, 0, 1, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 7, 0, false).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.flashBar, 1, 0, false)
	a.root.SetBackgroundColor(t.BgColor)
	a.promptOpen = false

	a.app.SetRoot(a.root, true)
	a.syncPage()
}

func (a *App) captureInput(event *tcell.EventKey) *tcell.EventKey {
	current := a.pages.Current()

	if event.Key() == tcell.KeyEscape && !a.promptOpen {
		if a.back(current) {
			return nil
		}
	}

	// Text inputs and the auth form handle their own keys.
	if _, ok := a.app.GetFocus().(*tview.InputField); ok {
		return event
	}
	if current == pageAuth || current == pageSettings {
		return event
	}

	if a.registry.HandleEvent(current, event) {
		return nil
	}
	return event
}

// back handles Escape. It reports whether the key was consumed.
func (a *App) back(current string) bool {
	switch current {
	case pageThread:
		if a.app.GetFocus() == a.thread.Composer() {
			a.app.SetFocus(a.thread.Messages())
			return true
		}
		a.vm.Close()
		a.pages.Pop()
		a.refresh()
		a.app.SetFocus(a.chatList)
		return true
	case pageDetails, pageHelp:
		a.pages.Pop()
		a.focusCurrent()
		return true
	case pageSettings:
		a.navigate(nav.Chats)
		return true
	}
	return false
}

func (a *App) onStackChange(stack []string) {
	names := make([]string, 0, len(stack))
	for _, p := range stack {
		if c, ok := a.components[p]; ok {
			names = append(names, c.Name())
		}
	}
	a.crumbs.Update(names)
	if len(stack) > 0 {
		if c, ok := a.components[stack[len(stack)-1]]; ok {
			a.menu.Update(c.Hints())
		}
	}
}

// syncPage lays the page stack out for the state's current page.
func (a *App) syncPage() {
	switch a.state.Page() {
	case nav.Auth:
		a.vm.Close()
		a.vm.Filter = ""
		a.pages.Reset(pageAuth)
	case nav.Chats:
		a.pages.Reset(pageChats)
		if th, ok := a.vm.Thread(); ok {
			a.thread.Update(th, a.loc.T("thread.online"))
			a.pages.Push(pageThread)
		}
	case nav.Settings:
		if u, ok := a.state.CurrentUser(); ok {
			a.settings.Update(u, string(a.state.Theme()))
		}
		a.pages.Reset(pageChats)
		a.pages.Push(pageSettings)
	}
	a.refresh()
	a.focusCurrent()
}

func (a *App) focusCurrent() {
	switch a.pages.Current() {
	case pageAuth:
		a.app.SetFocus(a.authView)
	case pageChats:
		a.app.SetFocus(a.chatList)
	case pageThread:
		a.app.SetFocus(a.thread.Messages())
	case pageDetails:
		a.app.SetFocus(a.details)
	case pageSettings:
		a.app.SetFocus(a.settings.Form())
	case pageHelp:
		a.app.SetFocus(a.help)
	}
}

// refresh redraws the data-bound widgets.
func (a *App) refresh() {
	a.chatList.Update(a.vm.Rows(), a.vm.Filter)
	if th, ok := a.vm.Thread(); ok {
		a.thread.Update(th, a.loc.T("thread.online"))
	}

	u, ok := a.state.CurrentUser()
	if !ok {
		a.info.Update(a.profile, nil)
	} else {
		chats, unread := a.vm.Summary()
		a.info.Update(a.profile, &ui.ProfileData{
			Name:   u.Name,
			Email:  u.Email,
			Status: u.Status,
			Theme:  string(a.state.Theme()),
			Chats:  chats,
			Unread: unread,
		})
	}
	a.flashBar.Update(a.flash.Current())
}

func (a *App) handleEvent(evt bus.Event) {
	a.logger.Debug("ui event", zap.String("kind", evt.Kind))
	switch evt.Kind {
	case bus.KindPageChanged:
		a.syncPage()
	case bus.KindThemeChanged:
		a.build()
		a.flash.Info(a.loc.T("flash.theme"))
		a.flashBar.Update(a.flash.Current())
	default:
		a.refresh()
	}
}

func (a *App) navigate(p nav.Page) {
	if err := a.state.Navigate(p); err != nil {
		a.logger.Warn("navigation refused", zap.String("page", string(p)), zap.Error(err))
		a.flash.Err(err)
		a.refresh()
	}
}

func (a *App) login(c identity.Credentials) {
	u, err := a.state.Login(c)
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		a.flash.Warn(a.loc.T("auth.invalid"))
	case errors.Is(err, identity.ErrAssertion):
		a.flash.Warn(a.loc.T("auth.failed"))
	case err != nil:
		a.logger.Error("login failed", zap.Error(err))
		a.flash.Err(err)
	default:
		a.authView.Reset()
		a.flash.Info(a.loc.T("flash.welcome") + " " + u.Name)
	}
	a.flashBar.Update(a.flash.Current())
}

func (a *App) logout() {
	if err := a.state.Logout(); err != nil {
		a.logger.Error("logout failed", zap.Error(err))
		a.flash.Err(err)
		a.refresh()
		return
	}
	a.flash.Info(a.loc.T("flash.signed_out"))
}

func (a *App) openChat(chatID string) {
	th, ok := a.vm.Open(chatID)
	if !ok {
		return
	}
	a.thread.Update(th, a.loc.T("thread.online"))
	a.pages.Push(pageThread)
	a.app.SetFocus(a.thread.Messages())
	a.refresh()
}

func (a *App) showDetails() {
	th, ok := a.vm.Thread()
	if !ok {
		return
	}
	a.details.Update(th.Participant, len(th.Lines))
	a.pages.Push(pageDetails)
	a.app.SetFocus(a.details)
}

func (a *App) showHelp() {
	a.pages.Push(pageHelp)
	a.app.SetFocus(a.help)
}

func (a *App) send(text string) {
	// Blank input is a silent no-op.
	a.vm.Send(text)
}

func (a *App) saveProfile(p identity.ProfileUpdate) {
	u, ok, err := a.state.UpdateUser(p)
	if err != nil {
		a.logger.Error("profile update failed", zap.Error(err))
		a.flash.Err(err)
		return
	}
	if ok {
		a.settings.Update(u, string(a.state.Theme()))
		a.app.SetFocus(a.settings.Form())
		a.flash.Info(a.loc.T("settings.saved"))
	}
	a.refresh()
}

// setTheme sets the named theme, or toggles when name is empty.
func (a *App) setTheme(name string) {
	if name == "" {
		if _, err := a.state.ToggleTheme(); err != nil {
			a.flash.Err(err)
		}
		return
	}
	t, err := prefs.ParseTheme(name)
	if err == nil {
		err = a.state.SetTheme(t)
	}
	if err != nil {
		a.flash.Err(err)
		a.refresh()
	}
}

func (a *App) setFilter(term string) {
	a.vm.Filter = term
	a.chatList.Update(a.vm.Rows(), term)
}

func (a *App) openPrompt(mode ui.PromptMode) {
	title, text := a.loc.T("prompt.command"), ""
	if mode == ui.PromptFilter {
		title, text = a.loc.T("chats.search"), a.vm.Filter
	}
	a.prompt.Activate(mode, title, text)
	a.root.ResizeItem(a.prompt, 3, 0)
	a.promptOpen = true
	a.app.SetFocus(a.prompt)
}

func (a *App) closePrompt() {
	a.root.ResizeItem(a.prompt, 0, 0)
	a.promptOpen = false
	a.focusCurrent()
}

func (a *App) submitPrompt(mode ui.PromptMode, text string) {
	a.closePrompt()
	if mode == ui.PromptFilter {
		a.setFilter(text)
		return
	}
	a.runCommand(ParseCommand(text))
}

func (a *App) runCommand(cmd Command) {
	switch cmd.Name {
	case "":
	case "q", "quit":
		a.Stop()
	case "chats":
		a.navigate(nav.Chats)
	case "settings":
		a.navigate(nav.Settings)
	case "theme":
		a.setTheme(cmd.Args)
	case "filter":
		a.setFilter(cmd.Args)
	case "logout":
		a.logout()
	case "help", "h":
		a.showHelp()
	default:
		a.flash.Warn(a.loc.T("flash.unknown_command") + ": " + cmd.Name)
		a.flashBar.Update(a.flash.Current())
	}
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	events, unsubscribe := a.bus.Subscribe("", 64)
	defer unsubscribe()

	go func() {
		for {
			select {
			case evt := <-events:
				a.app.QueueUpdateDraw(func() { a.handleEvent(evt) })
			case <-a.ctx.Done():
				return
			}
		}
	}()
	a.startTicker()

	return a.app.Run()
}

// startTicker expires flash messages.
func (a *App) startTicker() {
	ticker := time.NewTicker(time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.app.QueueUpdateDraw(func() {
					a.flashBar.Update(a.flash.Current())
				})
			case <-a.ctx.Done():
				return
			}
		}
	}()
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
