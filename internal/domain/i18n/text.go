// internal/domain/i18n/text.go
package i18n

import "strings"

// Locale is one of the storefront's three UI languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleLV Locale = "lv"
	LocaleRU Locale = "ru"
)

// DefaultLocale is the fallback for unknown or missing language selections.
const DefaultLocale = LocaleEN

// ParseLocale normalizes a raw language value; unknown values fall back to en.
func ParseLocale(raw string) Locale {
	switch Locale(strings.ToLower(strings.TrimSpace(raw))) {
	case LocaleLV:
		return LocaleLV
	case LocaleRU:
		return LocaleRU
	default:
		return DefaultLocale
	}
}

// Text holds one value per supported locale (product names, descriptions).
type Text struct {
	EN string `json:"en" firestore:"en"`
	LV string `json:"lv" firestore:"lv"`
	RU string `json:"ru" firestore:"ru"`
}

// Pick selects the value for locale, falling back to en, then to any
// non-empty value.
func (t Text) Pick(locale Locale) string {
	var v string
	switch locale {
	case LocaleLV:
		v = t.LV
	case LocaleRU:
		v = t.RU
	default:
		v = t.EN
	}
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	if s := strings.TrimSpace(t.EN); s != "" {
		return s
	}
	if s := strings.TrimSpace(t.LV); s != "" {
		return s
	}
	return strings.TrimSpace(t.RU)
}
