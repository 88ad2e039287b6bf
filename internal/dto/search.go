package dto

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/domain"
	"github.com/khoborhub/khobor/pkg/utils"
)

// Searchable entity types. The set is closed; anything else in a `types`
// parameter is a semantic error.
const (
	TypeArticles   = "articles"
	TypeCategories = "categories"
	TypeTags       = "tags"
)

var AllTypes = []string{TypeArticles, TypeCategories, TypeTags}

var validTypes = map[string]bool{
	TypeArticles:   true,
	TypeCategories: true,
	TypeTags:       true,
}

const (
	SearchQueryMaxLen  = 100
	SearchLimitDefault = 10
	SearchLimitMax     = 100
)

// SearchRequest carries the raw query-string values of GET /search.
type SearchRequest struct {
	Q             string
	Types         string
	Lang          string
	Limit         string
	Page          string
	IncludeCounts string
}

// SearchParams is the normalized parameter bundle consumed by the searcher.
type SearchParams struct {
	Query         string
	Types         []string
	Lang          domain.Language
	Limit         int
	Page          int
	Offset        int
	IncludeCounts bool
}

// Normalize validates the request and produces the parameter bundle.
// All validation happens here, before any store access.
func (r SearchRequest) Normalize() (*SearchParams, error) {
	q := strings.TrimSpace(r.Q)
	if q == "" {
		return nil, apperr.NewValidation("q is required")
	}
	if utf8.RuneCountInString(q) > SearchQueryMaxLen {
		return nil, apperr.NewValidation("q too long")
	}

	types, err := parseTypes(r.Types)
	if err != nil {
		return nil, err
	}

	limit := clampInt(r.Limit, SearchLimitDefault, 1, SearchLimitMax)
	page := clampInt(r.Page, 1, 1, 0)

	return &SearchParams{
		Query:         q,
		Types:         types,
		Lang:          domain.ParseLanguage(r.Lang),
		Limit:         limit,
		Page:          page,
		Offset:        (page - 1) * limit,
		IncludeCounts: utils.ParseBoolFlag(r.IncludeCounts),
	}, nil
}

// parseTypes splits a CSV list against the closed type set, preserving
// request order and dropping duplicates. Empty input means all types.
func parseTypes(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return append([]string(nil), AllTypes...), nil
	}

	seen := make(map[string]bool, len(AllTypes))
	var types []string
	for _, part := range strings.Split(raw, ",") {
		t := strings.TrimSpace(part)
		if t == "" {
			continue
		}
		if !validTypes[t] {
			return nil, apperr.NewSemantic("invalid type: " + t)
		}
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return append([]string(nil), AllTypes...), nil
	}
	return types, nil
}

// clampInt parses raw, falling back to def on empty or garbage input and
// clamping into [min, max]. A max of 0 means unbounded above.
func clampInt(raw string, def, min, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

// ArticleHit is one article row of a search result page.
type ArticleHit struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Excerpt      string   `json:"excerpt"`
	CreatedAt    *string  `json:"created_at"`
	UpdatedAt    *string  `json:"updated_at"`
	CategoryName *string  `json:"category_name"`
	TagCodes     []string `json:"tag_codes"`
	TagNames     []string `json:"tag_names"`
}

// TermHit is one category or tag row of a search result page.
type TermHit struct {
	ID        int64   `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	CreatedAt *string `json:"created_at"`
}

// TypeResult is the per-type page envelope. Total is only present when
// exact counts were requested.
type TypeResult[T any] struct {
	Items   []T    `json:"items"`
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	HasMore bool   `json:"hasMore"`
	Total   *int64 `json:"total,omitempty"`
}

// SearchResults attaches per-type pages by stable key.
type SearchResults struct {
	Articles   *TypeResult[ArticleHit] `json:"articles,omitempty"`
	Categories *TypeResult[TermHit]    `json:"categories,omitempty"`
	Tags       *TypeResult[TermHit]    `json:"tags,omitempty"`
}

type SearchResponse struct {
	Query   string        `json:"query"`
	Types   []string      `json:"types"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Sort    string        `json:"sort"`
	Results SearchResults `json:"results"`
}
