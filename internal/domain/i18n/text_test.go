package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleLV, ParseLocale(" LV "))
	assert.Equal(t, LocaleRU, ParseLocale("ru"))
	assert.Equal(t, LocaleEN, ParseLocale("en"))
	assert.Equal(t, LocaleEN, ParseLocale(""))
	assert.Equal(t, LocaleEN, ParseLocale("de"))
}

func TestTextPick(t *testing.T) {
	full := Text{EN: "Cable", LV: "Kabelis", RU: "Кабель"}
	assert.Equal(t, "Kabelis", full.Pick(LocaleLV))
	assert.Equal(t, "Кабель", full.Pick(LocaleRU))
	assert.Equal(t, "Cable", full.Pick(LocaleEN))

	// missing locale falls back to en, then to any non-empty value
	assert.Equal(t, "Cable", Text{EN: "Cable"}.Pick(LocaleRU))
	assert.Equal(t, "Kabelis", Text{LV: "Kabelis"}.Pick(LocaleRU))
	assert.Equal(t, "", Text{}.Pick(LocaleLV))
}

func TestMessagesFallBackToEnglish(t *testing.T) {
	assert.NotEmpty(t, RemoteFailure(LocaleLV))
	assert.Equal(t, RemoteFailure(LocaleEN), RemoteFailure(Locale("xx")))
	assert.NotEmpty(t, CheckoutSubject(LocaleRU))
	assert.NotEmpty(t, CheckoutBody(LocaleEN))
}
