// Package state holds the session-wide application state (signed-in user,
// theme, current page) and the only functions allowed to change it.
package state

import (
	"errors"
	"fmt"

	"github.com/matheus3301/flowchat/internal/bus"
	"github.com/matheus3301/flowchat/internal/conversation"
	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/nav"
	"github.com/matheus3301/flowchat/internal/prefs"
	"go.uber.org/zap"
)

// StoreFactory builds the conversation store of a freshly signed-in user.
type StoreFactory func(owner identity.User) *conversation.Store

// App is the explicit application state shared by every screen.
type App struct {
	prefs    *prefs.Prefs
	nav      *nav.Machine
	bus      *bus.Bus
	logger   *zap.Logger
	detect   prefs.Detector
	newStore StoreFactory

	user  *identity.User
	theme prefs.Theme
	chats *conversation.Store
}

// New creates the application state. Call Boot before reading it.
func New(p *prefs.Prefs, m *nav.Machine, b *bus.Bus, logger *zap.Logger, detect prefs.Detector, newStore StoreFactory) *App {
	return &App{
		prefs:    p,
		nav:      m,
		bus:      b,
		logger:   logger,
		detect:   detect,
		newStore: newStore,
		theme:    prefs.Dark,
	}
}

// Boot restores the stored user and theme. Without a stored user the app
// opens on the auth page; without a stored theme the detector decides.
func (a *App) Boot() error {
	u, ok, err := a.prefs.User()
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	t, stored, err := a.prefs.Theme()
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	if !stored {
		t = a.detect()
		a.logger.Info("no stored theme, using detected preference", zap.String("theme", string(t)))
		if err := a.prefs.SetTheme(t); err != nil {
			return fmt.Errorf("store theme: %w", err)
		}
	}
	a.theme = t

	if !ok {
		return a.nav.Go(nav.Auth)
	}
	a.user = &u
	a.chats = a.newStore(u)
	a.logger.Info("restored session", zap.String("user", u.ID))
	return a.nav.Go(nav.Chats)
}

// Login normalizes creds into a user and signs it in. Provider failures are
// logged and returned; nothing is retried.
func (a *App) Login(creds identity.Credentials) (identity.User, error) {
	u, err := identity.NewUser(creds)
	if err != nil {
		if errors.Is(err, identity.ErrAssertion) {
			a.logger.Warn("identity provider login failed", zap.Error(err))
		}
		return identity.User{}, err
	}
	return a.SignIn(u)
}

// SignIn makes u the current user, filling missing fields from the default
// profile, persists it and opens the chat list.
func (a *App) SignIn(u identity.User) (identity.User, error) {
	u = identity.MergeOver(conversation.DefaultOwner, u)
	if err := a.prefs.SetUser(u); err != nil {
		return identity.User{}, fmt.Errorf("store user: %w", err)
	}
	a.user = &u
	a.chats = a.newStore(u)
	if err := a.nav.Go(nav.Chats); err != nil {
		return identity.User{}, err
	}
	a.logger.Info("signed in", zap.String("user", u.ID))
	a.bus.Emit(bus.KindSignedIn, u)
	return u, nil
}

// Logout forgets the current user and returns to the auth page.
func (a *App) Logout() error {
	if err := a.prefs.ClearUser(); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	prev := a.user
	a.user = nil
	a.chats = nil
	if err := a.nav.Go(nav.Auth); err != nil {
		return err
	}
	if prev != nil {
		a.logger.Info("signed out", zap.String("user", prev.ID))
		a.bus.Emit(bus.KindSignedOut, *prev)
	}
	return nil
}

// UpdateUser applies a partial profile edit. It reports false when nobody is
// signed in.
func (a *App) UpdateUser(p identity.ProfileUpdate) (identity.User, bool, error) {
	if a.user == nil {
		return identity.User{}, false, nil
	}
	u := p.Apply(*a.user)
	if err := a.prefs.SetUser(u); err != nil {
		return identity.User{}, false, fmt.Errorf("store user: %w", err)
	}
	a.user = &u
	if a.chats != nil {
		a.chats.PutUser(u)
	}
	a.bus.Emit(bus.KindProfileEdited, u)
	return u, true, nil
}

// SetTheme changes and persists the theme.
func (a *App) SetTheme(t prefs.Theme) error {
	if _, err := prefs.ParseTheme(string(t)); err != nil {
		return err
	}
	if err := a.prefs.SetTheme(t); err != nil {
		return fmt.Errorf("store theme: %w", err)
	}
	a.theme = t
	a.bus.Emit(bus.KindThemeChanged, t)
	return nil
}

// ToggleTheme switches between light and dark.
func (a *App) ToggleTheme() (prefs.Theme, error) {
	next := prefs.Dark
	if a.theme == prefs.Dark {
		next = prefs.Light
	}
	return next, a.SetTheme(next)
}

// Navigate moves to page. Pages other than auth require a signed-in user;
// without one the app goes to the auth page instead.
func (a *App) Navigate(page nav.Page) error {
	if a.user == nil && page != nav.Auth {
		return a.nav.Go(nav.Auth)
	}
	return a.nav.Go(page)
}

// CurrentUser returns the signed-in user.
func (a *App) CurrentUser() (identity.User, bool) {
	if a.user == nil {
		return identity.User{}, false
	}
	return *a.user, true
}

// Chats returns the conversation store of the signed-in user.
func (a *App) Chats() (*conversation.Store, bool) {
	return a.chats, a.chats != nil
}

// Theme returns the active theme.
func (a *App) Theme() prefs.Theme {
	return a.theme
}

// Page returns the current page.
func (a *App) Page() nav.Page {
	return a.nav.Current()
}
