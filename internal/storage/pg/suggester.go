package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/khoborhub/khobor/internal/dto"
	"github.com/khoborhub/khobor/pkg/textutil"
	"golang.org/x/sync/errgroup"
)

// Suggester implements storage.Suggester. Per-type queries rank candidates
// by a four-tier precedence: prefix match on the primary field beats prefix
// on the secondary field, which beats infix matches on either. Per-type
// lists are concatenated in requested type order and cut at the overall
// limit; there is no cross-type relevance merge.
type Suggester struct {
	db DB
}

func NewSuggester(pool *ConnectionPool) *Suggester {
	return &Suggester{db: pool.GetConn()}
}

const articleSuggestSQL = `
	SELECT a.id, t.title, t.slug,
	       CASE
	         WHEN LOWER(t.title) LIKE $1 THEN 0
	         WHEN LOWER(t.slug) LIKE $1 THEN 1
	         WHEN LOWER(t.title) LIKE $2 THEN 2
	         WHEN LOWER(t.slug) LIKE $2 THEN 3
	         ELSE 4
	       END AS tier
	FROM articles a
	JOIN article_translations t ON t.article_id = a.id AND t.lang = $3
	WHERE a.status = 'published'
	  AND (LOWER(t.title) LIKE $2 OR LOWER(t.slug) LIKE $2)
	ORDER BY tier ASC, a.created_at DESC, a.id DESC
	LIMIT $4
`

const termSuggestSQL = `
	SELECT id, code, %[1]s,
	       CASE
	         WHEN LOWER(%[1]s) LIKE $1 THEN 0
	         WHEN LOWER(code) LIKE $1 THEN 1
	         WHEN LOWER(%[1]s) LIKE $2 THEN 2
	         WHEN LOWER(code) LIKE $2 THEN 3
	         ELSE 4
	       END AS tier
	FROM %[2]s
	WHERE LOWER(%[1]s) LIKE $2 OR LOWER(code) LIKE $2
	ORDER BY tier ASC, %[1]s ASC, id ASC
	LIMIT $3
`

// Suggest fetches up to PerTypeLimit candidates per requested type
// concurrently, waits for all of them, then truncates the concatenation to
// the overall limit. The returned counts are per-type candidate totals
// before truncation.
func (s *Suggester) Suggest(ctx context.Context, params *dto.SuggestParams) ([]dto.Suggestion, map[string]int, error) {
	slog.Info("Executing suggestions",
		"query", params.Query,
		"types", params.Types,
		"lang", params.Lang,
		"limit", params.Limit,
		"per_type_limit", params.PerTypeLimit)

	prefix := prefixPattern(params.Query)
	infix := containsPattern(params.Query)

	// One slot per requested type so goroutines never share an element and
	// the concatenation preserves request order.
	perType := make([][]dto.Suggestion, len(params.Types))
	g, gctx := errgroup.WithContext(ctx)

	for i, typ := range params.Types {
		g.Go(func() error {
			var (
				list []dto.Suggestion
				err  error
			)
			switch typ {
			case dto.TypeArticles:
				list, err = s.suggestArticles(gctx, params, prefix, infix)
			case dto.TypeCategories:
				list, err = s.suggestTerms(gctx, categoriesTable, params, prefix, infix)
			case dto.TypeTags:
				list, err = s.suggestTerms(gctx, tagsTable, params, prefix, infix)
			}
			if err != nil {
				return fmt.Errorf("%s suggestions: %w", typ, err)
			}
			perType[i] = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	counts := make(map[string]int, len(params.Types))
	merged := []dto.Suggestion{}
	for i, typ := range params.Types {
		counts[typ] = len(perType[i])
		merged = append(merged, perType[i]...)
	}
	if len(merged) > params.Limit {
		merged = merged[:params.Limit]
	}
	return merged, counts, nil
}

func (s *Suggester) suggestArticles(ctx context.Context, params *dto.SuggestParams, prefix, infix string) ([]dto.Suggestion, error) {
	rows, err := s.db.Query(ctx, articleSuggestSQL,
		prefix, infix, params.Lang.String(), params.PerTypeLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query article suggestions: %w", err)
	}
	defer rows.Close()

	list := []dto.Suggestion{}
	for rows.Next() {
		var (
			sg   dto.Suggestion
			tier int
		)
		if err := rows.Scan(&sg.ID, &sg.Title, &sg.Slug, &tier); err != nil {
			return nil, fmt.Errorf("failed to scan article suggestion: %w", err)
		}
		sg.Type = dto.TypeArticles
		sg.Highlight = map[string]string{
			"title": textutil.Highlight(sg.Title, params.Query),
			"slug":  textutil.Highlight(sg.Slug, params.Query),
		}
		list = append(list, sg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article suggestions: %w", err)
	}
	return list, nil
}

func (s *Suggester) suggestTerms(ctx context.Context, table string, params *dto.SuggestParams, prefix, infix string) ([]dto.Suggestion, error) {
	query := fmt.Sprintf(termSuggestSQL, params.Lang.NameColumn(), table)
	rows, err := s.db.Query(ctx, query, prefix, infix, params.PerTypeLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s suggestions: %w", table, err)
	}
	defer rows.Close()

	typ := dto.TypeCategories
	if table == tagsTable {
		typ = dto.TypeTags
	}

	list := []dto.Suggestion{}
	for rows.Next() {
		var (
			sg   dto.Suggestion
			tier int
		)
		if err := rows.Scan(&sg.ID, &sg.Code, &sg.Name, &tier); err != nil {
			return nil, fmt.Errorf("failed to scan %s suggestion: %w", table, err)
		}
		sg.Type = typ
		sg.Highlight = map[string]string{
			"name": textutil.Highlight(sg.Name, params.Query),
			"code": textutil.Highlight(sg.Code, params.Query),
		}
		list = append(list, sg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s suggestions: %w", table, err)
	}
	return list, nil
}
