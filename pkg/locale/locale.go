// Package locale loads the embedded message catalog used by the CLI and
// renderers. Strings are looked up by key with gotext.Get; a missing catalog
// leaves keys untranslated.
package locale

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is the catalog loaded when no language is requested
const DefaultLanguage = "en_GB"

const domain = "default"

//go:embed locales
var catalogs embed.FS

// Init installs the catalog for lang as gotext's global storage
func Init(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := catalogs.ReadFile(fmt.Sprintf("locales/%s/%s.po", lang, domain))
	if err != nil {
		return fmt.Errorf("locale: no catalog for %q: %w", lang, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("locales", lang)
	l.AddTranslator(domain, po)
	gotext.SetStorage(l)
	return nil
}
