package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveExcerpt_StoredWins(t *testing.T) {
	got := DeriveExcerpt("  stored excerpt  ", "<p>body text</p>")
	assert.Equal(t, "stored excerpt", got)
}

func TestDeriveExcerpt_BlankStoredFallsBackToBody(t *testing.T) {
	got := DeriveExcerpt("   ", "<p>Hello  <b>world</b></p>")
	assert.Equal(t, "Hello world", got)
}

func TestDeriveExcerpt_StripsTagsAndCollapsesWhitespace(t *testing.T) {
	body := "<div class=\"x\">first</div>\n\n<span>second\tthird</span>"
	got := DeriveExcerpt("", body)
	assert.Equal(t, "first second third", got)
}

func TestDeriveExcerpt_HardCutAt220Runes(t *testing.T) {
	body := strings.Repeat("a", 500)
	got := DeriveExcerpt("", body)
	assert.Len(t, []rune(got), ExcerptMaxLen)
}

func TestDeriveExcerpt_CutCountsRunesNotBytes(t *testing.T) {
	// Bengali text is multi-byte per rune; the cut must not split runes.
	body := strings.Repeat("ক", 300) // KA
	got := DeriveExcerpt("", body)
	runes := []rune(got)
	assert.Len(t, runes, ExcerptMaxLen)
	for _, r := range runes {
		assert.Equal(t, 'ক', r)
	}
}

func TestDeriveExcerpt_ShortBodyUnchanged(t *testing.T) {
	got := DeriveExcerpt("", "short body")
	assert.Equal(t, "short body", got)
}

func TestDeriveExcerpt_EmptyEverything(t *testing.T) {
	assert.Equal(t, "", DeriveExcerpt("", ""))
}
