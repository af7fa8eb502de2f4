package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageEn = "en"
	LanguageId = "id"
)

var (
	supportedCodes = []string{LanguageEn}
	matcher        = language.NewMatcher([]language.Tag{language.English})
)

// InitTranslator loads the <lang>.toml files of every supported language
// from cfg.TranslationFolder. Missing files are logged and skipped.
// English is always supported and is the fallback for Match.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	setSupported(cfg.SupportedLanguages)

	if _, err := os.Stat(cfg.TranslationFolder); err != nil {
		zap.L().Error("failed to read translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, lang := range cfg.SupportedLanguages {
		file := filepath.Join(cfg.TranslationFolder, lang+".toml")
		if _, err := Translator.LoadMessageFile(file); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", file), zap.Error(err))
		}
	}
}

func setSupported(langs []string) {
	codes := []string{LanguageEn}
	tags := []language.Tag{language.English}
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("skipping unsupported language code", zap.String("lang", lang), zap.Error(err))
			continue
		}
		if tag == language.English {
			continue
		}
		codes = append(codes, lang)
		tags = append(tags, tag)
	}
	supportedCodes = codes
	matcher = language.NewMatcher(tags)
}

// Match picks the supported language code that best fits an Accept-Language
// header value. Anything unparseable or unmatched resolves to English.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(supportedCodes) {
		return LanguageEn
	}
	return supportedCodes[index]
}
