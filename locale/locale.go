// Package locale resolves display strings for the storefront's two fixed
// languages. A Locale is an immutable value constructed once per request
// and passed explicitly to every display-producing step.
package locale

// Language is one of the two supported language codes.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// ParseLanguage maps a raw selector to a Language. Anything that is not
// "en" falls back to Arabic, the storefront's default.
func ParseLanguage(s string) Language {
	if s == string(English) {
		return English
	}
	return Arabic
}

// Locale carries the active language and its text direction.
type Locale struct {
	Language Language
	IsRTL    bool
}

func New(lang Language) Locale {
	return Locale{
		Language: lang,
		IsRTL:    lang == Arabic,
	}
}

// T looks up a translation key. An unmapped key degrades to the key
// itself; a missing translation is never fatal.
func (l Locale) T(key string) string {
	pair, ok := translations[key]
	if !ok {
		return key
	}
	if l.Language == English {
		return pair.en
	}
	return pair.ar
}

// Table resolves the whole translation table for the locale's language.
func (l Locale) Table() map[string]string {
	out := make(map[string]string, len(translations))
	for key := range translations {
		out[key] = l.T(key)
	}
	return out
}
