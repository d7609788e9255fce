package prefs

import (
	"path/filepath"
	"testing"

	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPrefs(t *testing.T) (*Prefs, *store.DB) {
	t.Helper()
	db, _, err := store.OpenMigrated(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, zap.NewNop()), db
}

func TestUserRoundTrip(t *testing.T) {
	p, db := newTestPrefs(t)

	_, ok, err := p.User()
	require.NoError(t, err)
	require.False(t, ok)

	u := identity.User{ID: "u9", Name: "X", Email: "u9@x.com", Online: true}
	require.NoError(t, p.SetUser(u))

	got, ok, err := p.User()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, u, got)

	raw, ok, err := db.Get(UserKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"id":"u9","name":"X","avatarUrl":"","online":true,"email":"u9@x.com"}`, raw)

	require.NoError(t, p.ClearUser())
	_, ok, err = p.User()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUserCorruptBlobIsFirstRun(t *testing.T) {
	p, db := newTestPrefs(t)
	require.NoError(t, db.Set(UserKey, "{not json"))

	_, ok, err := p.User()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestThemeRoundTrip(t *testing.T) {
	p, _ := newTestPrefs(t)

	_, ok, err := p.Theme()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, p.SetTheme(Dark))
	got, ok, err := p.Theme()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Dark, got)
}

func TestThemeUnknownValueIgnored(t *testing.T) {
	p, db := newTestPrefs(t)
	require.NoError(t, db.Set(ThemeKey, "sepia"))

	_, ok, err := p.Theme()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseTheme(t *testing.T) {
	for _, s := range []string{"light", "dark"} {
		got, err := ParseTheme(s)
		require.NoError(t, err)
		require.Equal(t, Theme(s), got)
	}
	_, err := ParseTheme("Dark")
	require.Error(t, err)
}
