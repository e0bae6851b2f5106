package internal

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs of the fixed strings the widgets render.
const (
	MsgLabelNone    = "LabelNone"
	MsgFooterSelect = "FooterSelect"
	MsgFooterBack   = "FooterBack"
	MsgPickerEmpty  = "PickerEmpty"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizerMu sync.RWMutex
	localizer   *i18n.Localizer
)

func loadBundle() {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to read embedded locales", "error", err)
			return
		}

		for _, entry := range entries {
			data, err := localeFS.ReadFile("locales/" + entry.Name())
			if err != nil {
				GetInternalLogger().Error("Failed to read locale file", "file", entry.Name(), "error", err)
				continue
			}
			if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
				GetInternalLogger().Error("Failed to parse locale file", "file", entry.Name(), "error", err)
			}
		}

		localizerMu.Lock()
		localizer = i18n.NewLocalizer(bundle, language.English.String())
		localizerMu.Unlock()
	})
}

// SetLanguage switches the active language. The tag is a BCP 47 tag such as
// "de" or "fr-CA"; English stays as the fallback.
func SetLanguage(tag string) error {
	loadBundle()

	parsed, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("parse language %q: %w", tag, err)
	}

	localizerMu.Lock()
	localizer = i18n.NewLocalizer(bundle, parsed.String(), language.English.String())
	localizerMu.Unlock()
	return nil
}

// LanguageFromEnv derives a language tag from LC_ALL, LC_MESSAGES or LANG,
// e.g. "de_DE.UTF-8" becomes "de-DE". Returns "" when none is set.
func LanguageFromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		raw := os.Getenv(name)
		if raw == "" || raw == "C" || raw == "POSIX" {
			continue
		}
		if i := strings.IndexAny(raw, ".@"); i >= 0 {
			raw = raw[:i]
		}
		return strings.ReplaceAll(raw, "_", "-")
	}
	return ""
}

// Localize returns the message for id in the active language, or fallback
// when the message is unknown.
func Localize(id, fallback string) string {
	loadBundle()

	localizerMu.RLock()
	l := localizer
	localizerMu.RUnlock()

	if l == nil {
		return fallback
	}

	text, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return text
}
