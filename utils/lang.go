package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, file := range []string{"en.yaml", "zh_tw.yaml"} {
		if _, err := b.LoadMessageFile(path.Join(dir, file)); err != nil {
			return err
		}
	}
	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		return nil
	}
	return i18n.NewLocalizer(bundle, lang)
}

// Localize translates the message id for an Accept-Language value. The fallback is
// returned as-is when no bundle is loaded or the id has no translation.
func Localize(lang, id, fallback string) string {
	localizer := NewLocalizer(lang)
	if localizer == nil {
		return fallback
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: fallback,
		},
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
