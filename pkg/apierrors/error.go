package apierrors

import (
	"fmt"
	"sync"

	"lifedash/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr is the error body every handler returns.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError builds a JsonErr whose message is msgKey translated into lang.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}}
}

type localizerKey struct {
	bundle *i18n.Bundle
	lang   string
}

// Localizers are reused per bundle and language; re-initializing the
// translator yields a new bundle and so fresh entries.
var localizers sync.Map

func localizer(lang string) *i18n.Localizer {
	key := localizerKey{bundle: translator.Translator, lang: lang}
	if l, ok := localizers.Load(key); ok {
		return l.(*i18n.Localizer)
	}
	l, _ := localizers.LoadOrStore(key, i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn))
	return l.(*i18n.Localizer)
}

// GetTransErrorMsg retrieves the translated message for msgKey, falling back
// to English and then to the key itself. Success messages use it too.
func GetTransErrorMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}
	msg, err := localizer(lang).Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
