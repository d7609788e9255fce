// Package locale loads the UI message catalogs and formats display times.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var catalogs embed.FS

// Default is the locale of the seeded data.
var Default = language.Arabic

// Localizer resolves UI strings for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New builds a localizer for lang (a BCP 47 tag such as "ar" or "en-US").
// Unknown or unsupported languages fall back to Default.
func New(lang string) (*Localizer, error) {
	bundle := i18n.NewBundle(Default)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(catalogs, "messages/*.toml")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		buf, err := catalogs.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, name); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
	}

	tag := Default
	if t, err := language.Parse(lang); err == nil {
		matcher := language.NewMatcher(bundle.LanguageTags())
		_, idx, conf := matcher.Match(t)
		if conf != language.No {
			tag = bundle.LanguageTags()[idx]
		}
	}

	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Tag returns the resolved language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T returns the message for id, or id itself when the catalog lacks it.
func (l *Localizer) T(id string) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return s
}

// ShortTime renders t as a 12-hour clock with the localized day period,
// e.g. "10:30 صباحًا" or "4:05 PM".
func (l *Localizer) ShortTime(t time.Time) string {
	period := l.T("period.am")
	if t.Hour() >= 12 {
		period = l.T("period.pm")
	}
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "time.short",
		TemplateData: map[string]string{
			"Clock":  t.Format("3:04"),
			"Period": period,
		},
	})
	if err != nil {
		return t.Format("3:04 PM")
	}
	return s
}
