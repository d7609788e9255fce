// Package prefs maps the two persisted entries of a profile onto the
// key-value store.
package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/matheus3301/flowchat/internal/identity"
	"go.uber.org/zap"
)

// Keys of the persisted entries.
const (
	UserKey  = "flowchat_user"
	ThemeKey = "flowchat_theme"
)

// Theme is the colour scheme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme validates s as a Theme.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case Light, Dark:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q: want light or dark", s)
	}
}

// KV is the blob store the preferences live in.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Prefs reads and writes the stored user and theme.
type Prefs struct {
	kv     KV
	logger *zap.Logger
}

// New creates Prefs over kv.
func New(kv KV, logger *zap.Logger) *Prefs {
	return &Prefs{kv: kv, logger: logger}
}

// User returns the stored user. A missing or unreadable entry reports false,
// which callers treat as a first run.
func (p *Prefs) User() (identity.User, bool, error) {
	raw, ok, err := p.kv.Get(UserKey)
	if err != nil || !ok {
		return identity.User{}, false, err
	}
	var u identity.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		p.logger.Warn("ignoring unreadable stored user", zap.Error(err))
		return identity.User{}, false, nil
	}
	return u, true, nil
}

// SetUser stores u.
func (p *Prefs) SetUser(u identity.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return p.kv.Set(UserKey, string(raw))
}

// ClearUser removes the stored user.
func (p *Prefs) ClearUser() error {
	return p.kv.Delete(UserKey)
}

// Theme returns the stored theme. Unknown values report false.
func (p *Prefs) Theme() (Theme, bool, error) {
	raw, ok, err := p.kv.Get(ThemeKey)
	if err != nil || !ok {
		return "", false, err
	}
	t, err := ParseTheme(raw)
	if err != nil {
		p.logger.Warn("ignoring stored theme", zap.String("value", raw))
		return "", false, nil
	}
	return t, true, nil
}

// SetTheme stores t.
func (p *Prefs) SetTheme(t Theme) error {
	return p.kv.Set(ThemeKey, string(t))
}
