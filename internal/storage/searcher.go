package storage

import (
	"context"

	"github.com/khoborhub/khobor/internal/dto"
)

// GlobalSearcher runs the cross-type search. Implementations must only
// surface published articles and must fail the whole call when any
// per-type query fails; partial results are never returned.
type GlobalSearcher interface {
	Search(ctx context.Context, params *dto.SearchParams) (*dto.SearchResults, error)
}

// Suggester returns relevance-ordered autocomplete candidates per type,
// capped at params.PerTypeLimit rows each. Candidate counts are the raw
// per-type counts before the overall limit is applied.
type Suggester interface {
	Suggest(ctx context.Context, params *dto.SuggestParams) ([]dto.Suggestion, map[string]int, error)
}
