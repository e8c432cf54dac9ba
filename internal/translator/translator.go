package translator

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

const (
	LanguageVi = "vi"
	LanguageEn = "en"
)

const translationDir = "translation"

//go:embed translation/*.toml
var translationFS embed.FS

type Translator struct {
	bundle *i18n.Bundle
}

// New loads every embedded message file. Vietnamese is the fallback language.
func New() (*Translator, error) {
	bundle := i18n.NewBundle(language.Vietnamese)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(translationFS, translationDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		_, err = bundle.LoadMessageFileFS(translationFS, path.Join(translationDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to load translation %s: %w", entry.Name(), err)
		}
	}

	return &Translator{bundle: bundle}, nil
}

// Localize renders messageID for an Accept-Language value.
// Unknown ids are returned as is.
func (t *Translator) Localize(acceptLanguage, messageID string, data map[string]any) string {
	localizer := i18n.NewLocalizer(t.bundle, acceptLanguage, LanguageVi)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
