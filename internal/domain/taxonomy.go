package domain

import "time"

// Category and Tag share the same shape: a stable code plus a localized
// name pair. LocalizedName picks the variant for the requested language.

type Category struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	NameEn    string    `json:"nameEn"`
	NameBn    string    `json:"nameBn"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Category) LocalizedName(lang Language) string {
	if lang == LanguageBengali {
		return c.NameBn
	}
	return c.NameEn
}

type Tag struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	NameEn    string    `json:"nameEn"`
	NameBn    string    `json:"nameBn"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t Tag) LocalizedName(lang Language) string {
	if lang == LanguageBengali {
		return t.NameBn
	}
	return t.NameEn
}
