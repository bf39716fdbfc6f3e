package domain

import "slices"

// Language is a language the translation endpoint accepts.
type Language struct {
	Code       string
	NativeName string
}

// supportedLanguages is the process-wide language table. It is built once and
// never mutated; accessors hand out copies.
var supportedLanguages = []Language{
	{Code: "ar", NativeName: "العربية"},
	{Code: "de", NativeName: "Deutsch"},
	{Code: "el", NativeName: "Ελληνικά"},
	{Code: "en", NativeName: "English"},
	{Code: "es", NativeName: "Español"},
	{Code: "fr", NativeName: "Français"},
	{Code: "he", NativeName: "עברית"},
	{Code: "it", NativeName: "Italiano"},
	{Code: "ja", NativeName: "日本語"},
	{Code: "ko", NativeName: "한국어"},
	{Code: "nl", NativeName: "Nederlands"},
	{Code: "pl", NativeName: "Polski"},
	{Code: "pt", NativeName: "Português"},
	{Code: "ru", NativeName: "Русский"},
	{Code: "sv", NativeName: "Svenska"},
	{Code: "th", NativeName: "ไทย"},
	{Code: "tr", NativeName: "Türkçe"},
	{Code: "uk", NativeName: "Українська"},
	{Code: "vi", NativeName: "Tiếng Việt"},
	{Code: "zh-Hans", NativeName: "中文 (简体)"},
}

var languagesByCode = func() map[string]Language {
	m := make(map[string]Language, len(supportedLanguages))
	for _, l := range supportedLanguages {
		m[l.Code] = l
	}
	return m
}()

// Languages returns the supported languages ordered by code.
func Languages() []Language {
	return slices.Clone(supportedLanguages)
}

// LookupLanguage returns the language with the given code.
func LookupLanguage(code string) (Language, bool) {
	l, ok := languagesByCode[code]
	return l, ok
}

// IsSupportedLanguage reports whether code is in the language table.
func IsSupportedLanguage(code string) bool {
	_, ok := languagesByCode[code]
	return ok
}
