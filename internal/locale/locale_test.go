package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewResolvesSupportedLanguages(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"ar", language.Arabic},
		{"ar-EG", language.Arabic},
		{"en", language.English},
		{"en-US", language.English},
		{"", language.Arabic},
		{"not a tag", language.Arabic},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			l, err := New(tt.lang)
			require.NoError(t, err)
			base, _ := l.Tag().Base()
			wantBase, _ := tt.want.Base()
			require.Equal(t, wantBase, base)
		})
	}
}

func TestT(t *testing.T) {
	ar, err := New("ar")
	require.NoError(t, err)
	en, err := New("en")
	require.NoError(t, err)

	require.Equal(t, "الإعدادات", ar.T("settings.title"))
	require.Equal(t, "Settings", en.T("settings.title"))
	require.Equal(t, "no.such.message", en.T("no.such.message"))
}

func TestShortTime(t *testing.T) {
	ar, err := New("ar")
	require.NoError(t, err)
	en, err := New("en")
	require.NoError(t, err)

	morning := time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 10, 15, 0, 5, 0, 0, time.UTC)

	require.Equal(t, "10:30 صباحًا", ar.ShortTime(morning))
	require.Equal(t, "8:00 مساءً", ar.ShortTime(evening))
	require.Equal(t, "10:30 AM", en.ShortTime(morning))
	require.Equal(t, "12:05 AM", en.ShortTime(midnight))
}
