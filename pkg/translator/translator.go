package translator

import (
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // languages with a <lang>.toml file in the folder
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads one message file per supported language into the
// package-level bundle. Missing files are logged and skipped so a partial
// translation set never prevents startup.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range cfg.SupportedLanguages {
		file := filepath.Join(cfg.TranslationFolder, strings.ToLower(lang)+".toml")
		if _, err := Translator.LoadMessageFile(file); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", file), zap.Error(err))
		}
	}
}
