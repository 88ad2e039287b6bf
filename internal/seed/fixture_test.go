package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixture = `
users:
  - email: editor@khoborhub.com
    displayName: Editor
    role: admin
    password: secret-pass
categories:
  - code: politics
    nameEn: Politics
    nameBn: রাজনীতি
tags:
  - code: dhaka
    nameEn: Dhaka
    nameBn: ঢাকা
articles:
  - authorEmail: editor@khoborhub.com
    categoryCode: politics
    status: published
    tagCodes: [dhaka]
    translations:
      - lang: en
        title: Budget session opens
        slug: budget-session-opens
        body: The annual budget session opened today.
      - lang: bn
        title: বাজেট অধিবেশন শুরু
        slug: budget-odhibeshon-shuru
        body: বার্ষিক বাজেট অধিবেশন আজ শুরু হয়েছে।
`

func TestParse_SampleFixture(t *testing.T) {
	f, err := Parse([]byte(sampleFixture))
	require.NoError(t, err)

	require.Len(t, f.Users, 1)
	assert.Equal(t, "editor@khoborhub.com", f.Users[0].Email)
	assert.Equal(t, "admin", f.Users[0].Role)

	require.Len(t, f.Categories, 1)
	assert.Equal(t, "রাজনীতি", f.Categories[0].NameBn)

	require.Len(t, f.Articles, 1)
	assert.Equal(t, []string{"dhaka"}, f.Articles[0].TagCodes)
	require.Len(t, f.Articles[0].Translations, 2)
	assert.Equal(t, "bn", f.Articles[0].Translations[1].Lang)
}

func TestParse_RejectsUserWithoutPassword(t *testing.T) {
	_, err := Parse([]byte(`
users:
  - email: someone@khoborhub.com
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no password")
}

func TestParse_RejectsArticleWithoutTranslations(t *testing.T) {
	_, err := Parse([]byte(`
articles:
  - authorEmail: someone@khoborhub.com
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no translations")
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("users: [broken"))
	require.Error(t, err)
}
