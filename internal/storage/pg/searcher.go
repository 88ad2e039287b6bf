package pg

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/khoborhub/khobor/internal/dto"
	"golang.org/x/sync/errgroup"
)

// Searcher implements storage.GlobalSearcher over the relational schema.
// Each call fans out one read-only query per requested type; there is no
// state shared between calls.
type Searcher struct {
	db DB
}

func NewSearcher(pool *ConnectionPool) *Searcher {
	return &Searcher{db: pool.GetConn()}
}

// Search runs all requested per-type queries concurrently and waits for
// every one of them. Any single failure aborts the whole call so the
// response is either complete or absent.
func (s *Searcher) Search(ctx context.Context, params *dto.SearchParams) (*dto.SearchResults, error) {
	slog.Info("Executing global search",
		"query", params.Query,
		"types", params.Types,
		"lang", params.Lang,
		"page", params.Page,
		"limit", params.Limit,
		"include_counts", params.IncludeCounts)

	pattern := containsPattern(params.Query)

	var results dto.SearchResults
	g, gctx := errgroup.WithContext(ctx)

	for _, typ := range params.Types {
		switch typ {
		case dto.TypeArticles:
			g.Go(func() error {
				page, err := s.searchArticles(gctx, params, pattern)
				if err != nil {
					return fmt.Errorf("articles search: %w", err)
				}
				results.Articles = page
				return nil
			})
		case dto.TypeCategories:
			g.Go(func() error {
				page, err := s.searchTerms(gctx, categoriesTable, params, pattern)
				if err != nil {
					return fmt.Errorf("categories search: %w", err)
				}
				results.Categories = page
				return nil
			})
		case dto.TypeTags:
			g.Go(func() error {
				page, err := s.searchTerms(gctx, tagsTable, params, pattern)
				if err != nil {
					return fmt.Errorf("tags search: %w", err)
				}
				results.Tags = page
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &results, nil
}

// containsPattern builds the case-insensitive substring pattern matched
// against LOWER()ed columns.
func containsPattern(q string) string {
	return "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
}

// prefixPattern anchors the match at the start of a field.
func prefixPattern(q string) string {
	return strings.ToLower(strings.TrimSpace(q)) + "%"
}
