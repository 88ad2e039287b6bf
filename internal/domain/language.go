package domain

// Language selects which localized column variant is read for categories,
// tags and article translations.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBengali Language = "bn"
)

var DefaultLanguage = LanguageEnglish

var SupportedLanguages = map[Language]bool{
	LanguageEnglish: true,
	LanguageBengali: true,
}

// ParseLanguage normalizes a raw language value. Anything outside the
// supported set falls back to English rather than failing.
func ParseLanguage(raw string) Language {
	l := Language(raw)
	if SupportedLanguages[l] {
		return l
	}
	return DefaultLanguage
}

// NameColumn maps the language to one of two fixed column identifiers.
// The raw request value itself is never interpolated into SQL text.
func (l Language) NameColumn() string {
	if l == LanguageBengali {
		return "name_bn"
	}
	return "name_en"
}

func (l Language) String() string {
	return string(l)
}
