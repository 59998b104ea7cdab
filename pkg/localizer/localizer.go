package localizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const defaultLocaleDir = "locale"

func InitLocalizer(defaultLang language.Tag, languages []language.Tag) *i18n.Bundle {
	bundle, err := LoadBundle(defaultLocaleDir, defaultLang, languages)
	if err != nil {
		panic(err)
	}

	return bundle
}

// LoadBundle reads dir/active.<lang>.toml for every language. A language
// without a message file is served from the default message strings.
func LoadBundle(dir string, defaultLang language.Tag, languages []language.Tag) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, l := range languages {
		path := filepath.Join(dir, fmt.Sprintf("active.%s.toml", l.String()))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, fmt.Errorf("failed to load message file %s: %w", path, err)
		}
	}

	return bundle, nil
}
