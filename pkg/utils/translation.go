package utils

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tensorcube/tensorcube-web/pkg/constants"
)

var TranslateByIDWithContextFunc = TranslateByIDWithContext

func LocalizerFromContext(ctx context.Context) (*i18n.Localizer, bool) {
	l, ok := ctx.Value(LocalizerKey).(*i18n.Localizer)
	return l, ok
}

func TranslateByIDWithContext(ctx context.Context, msgID string) string {
	if l, ok := LocalizerFromContext(ctx); ok {
		msg, _ := l.LocalizeMessage(&i18n.Message{
			ID: msgID,
		})

		return msg
	}

	return ""
}

// GetLanguageFromHeader picks the first Accept-Language tag, English otherwise.
func GetLanguageFromHeader(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return constants.EnglishLanguage
	}

	base, _ := tags[0].Base()

	return base.String()
}
