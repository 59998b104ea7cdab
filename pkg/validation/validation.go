package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"
)

const (
	englishTranslatorCode = "en"
	invalidInputKey       = "_"
)

type IValidator interface {
	Validate(i interface{}) map[string]string
}

type validation struct {
	validator  *validator.Validate
	translator ut.Translator
}

func InitValidator() IValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	universal := ut.New(enLocale, enLocale)
	translator, _ := universal.GetTranslator(englishTranslatorCode)

	_ = enTranslation.RegisterDefaultTranslations(v, translator)

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, key := range []string{"json", "query", "form"} {
			name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	return &validation{
		validator:  v,
		translator: translator,
	}
}

// Validate returns field name -> translated message; empty when i is valid.
func (v *validation) Validate(i interface{}) map[string]string {
	messages := make(map[string]string)

	err := v.validator.Struct(i)
	if err == nil {
		return messages
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages[invalidInputKey] = err.Error()
		return messages
	}

	for _, fieldErr := range validationErrors {
		messages[fieldErr.Field()] = fieldErr.Translate(v.translator)
	}

	return messages
}
