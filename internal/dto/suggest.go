package dto

import (
	"strings"
	"unicode/utf8"

	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/domain"
	"github.com/khoborhub/khobor/pkg/utils"
)

const (
	SuggestQueryMaxLen    = 64
	SuggestLimitDefault   = 10
	SuggestLimitMax       = 20
	SuggestPerTypeDefault = 5
	SuggestPerTypeMax     = 10
)

// SuggestRequest carries the raw query-string values of GET /search/suggestions.
type SuggestRequest struct {
	Q            string
	Types        string
	Lang         string
	Limit        string
	PerTypeLimit string
	IncludeMeta  string
}

type SuggestParams struct {
	Query        string
	Types        []string
	Lang         domain.Language
	Limit        int
	PerTypeLimit int
	IncludeMeta  bool
}

func (r SuggestRequest) Normalize() (*SuggestParams, error) {
	q := strings.TrimSpace(r.Q)
	if q == "" {
		return nil, apperr.NewValidation("q is required")
	}
	if utf8.RuneCountInString(q) > SuggestQueryMaxLen {
		return nil, apperr.NewValidation("q too long")
	}

	types, err := parseTypes(r.Types)
	if err != nil {
		return nil, err
	}

	return &SuggestParams{
		Query:        q,
		Types:        types,
		Lang:         domain.ParseLanguage(r.Lang),
		Limit:        clampInt(r.Limit, SuggestLimitDefault, 1, SuggestLimitMax),
		PerTypeLimit: clampInt(r.PerTypeLimit, SuggestPerTypeDefault, 1, SuggestPerTypeMax),
		IncludeMeta:  utils.ParseBoolFlag(r.IncludeMeta),
	}, nil
}

// Suggestion is one autocomplete candidate. Articles carry title/slug,
// categories and tags carry name/code. Highlight holds the same fields with
// the first query occurrence wrapped in <c></c>.
type Suggestion struct {
	Type      string            `json:"type"`
	ID        int64             `json:"id"`
	Title     string            `json:"title,omitempty"`
	Name      string            `json:"name,omitempty"`
	Slug      string            `json:"slug,omitempty"`
	Code      string            `json:"code,omitempty"`
	Highlight map[string]string `json:"highlight"`
}

type SuggestMeta struct {
	TookMs          int64          `json:"tookMs"`
	TotalCandidates map[string]int `json:"totalCandidates"`
}

type SuggestResponse struct {
	Query       string       `json:"query"`
	Types       []string     `json:"types"`
	Suggestions []Suggestion `json:"suggestions"`
	Meta        *SuggestMeta `json:"meta,omitempty"`
}
