// Package i18n translates lyra's CLI messages. English strings double as
// message keys; Korean translations are registered in a private catalog.
package i18n

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// LangEnvVar overrides the message language.
const LangEnvVar = "LYRA_LANG"

// Supported languages
const (
	LangEnglish = "en"
	LangKorean  = "ko"
)

var supported = map[string]language.Tag{
	LangEnglish: language.English,
	LangKorean:  language.Korean,
}

var (
	buildOnce sync.Once
	cat       *catalog.Builder

	mu      sync.RWMutex
	current = LangEnglish
	printer *message.Printer
)

func messages() *catalog.Builder {
	buildOnce.Do(func() {
		cat = catalog.NewBuilder(catalog.Fallback(language.English))
		for key, translated := range korean {
			// SetString only fails on malformed plural selectors, which
			// plain strings never are.
			_ = cat.SetString(language.Korean, key, translated)
		}
	})
	return cat
}

// Translator formats messages in one language.
type Translator struct {
	lang    string
	printer *message.Printer
}

// New returns a Translator for lang, falling back to English for
// languages lyra doesn't ship.
func New(lang string) *Translator {
	lang = Normalize(lang)
	return &Translator{
		lang:    lang,
		printer: message.NewPrinter(supported[lang], message.Catalog(messages())),
	}
}

// Lang returns the language code this translator uses.
func (t *Translator) Lang() string {
	return t.lang
}

// T formats the message identified by its English text.
func (t *Translator) T(key string, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}

// Normalize maps a locale string such as "ko_KR.UTF-8" to a supported
// language code. Unknown or empty input yields English.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	if _, ok := supported[lang]; ok {
		return lang
	}
	return LangEnglish
}

// Resolve picks the message language in priority order: the --lang flag,
// LYRA_LANG, the registry's lang setting, then LC_ALL and LANG.
func Resolve(flag, configured string) string {
	candidates := []string{flag, os.Getenv(LangEnvVar), configured, os.Getenv("LC_ALL"), os.Getenv("LANG")}
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		return Normalize(c)
	}
	return LangEnglish
}

// SetLang switches the package-level language used by T.
func SetLang(lang string) {
	t := New(lang)
	mu.Lock()
	current = t.lang
	printer = t.printer
	mu.Unlock()
}

// Lang returns the package-level language.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// T formats a message in the package-level language.
func T(key string, args ...interface{}) string {
	mu.RLock()
	p := printer
	mu.RUnlock()
	return p.Sprintf(key, args...)
}

func init() {
	SetLang(LangEnglish)
}
