package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/khoborhub/khobor/internal/dto"
	"github.com/khoborhub/khobor/pkg/textutil"
)

// Articles match on the localized title, excerpt and body, the localized
// category name, and any associated tag's localized name or code. The tag
// and category predicates sit in an EXISTS subquery so the tag aggregation
// below still sees every tag of a matched article, not just matching ones.
const articleSearchSQL = `
	SELECT a.id, t.title, t.slug, t.excerpt, t.body, a.created_at, a.updated_at,
	       c.%[1]s,
	       COALESCE(array_agg(tg.code ORDER BY tg.code) FILTER (WHERE tg.id IS NOT NULL), '{}'),
	       COALESCE(array_agg(tg.%[1]s ORDER BY tg.code) FILTER (WHERE tg.id IS NOT NULL), '{}')
	FROM articles a
	JOIN article_translations t ON t.article_id = a.id AND t.lang = $2
	LEFT JOIN categories c ON c.id = a.category_id
	LEFT JOIN article_tags atg ON atg.article_id = a.id
	LEFT JOIN tags tg ON tg.id = atg.tag_id
	WHERE a.status = 'published'
	  AND (
	    LOWER(t.title) LIKE $1 OR LOWER(t.excerpt) LIKE $1 OR LOWER(t.body) LIKE $1
	    OR LOWER(c.%[1]s) LIKE $1
	    OR EXISTS (
	      SELECT 1 FROM article_tags mt
	      JOIN tags mtg ON mtg.id = mt.tag_id
	      WHERE mt.article_id = a.id
	        AND (LOWER(mtg.%[1]s) LIKE $1 OR LOWER(mtg.code) LIKE $1)
	    )
	  )
	GROUP BY a.id, t.title, t.slug, t.excerpt, t.body, c.%[1]s
	ORDER BY a.created_at DESC, a.id DESC
	LIMIT $3 OFFSET $4
`

const articleCountSQL = `
	SELECT COUNT(DISTINCT a.id)
	FROM articles a
	JOIN article_translations t ON t.article_id = a.id AND t.lang = $2
	LEFT JOIN categories c ON c.id = a.category_id
	WHERE a.status = 'published'
	  AND (
	    LOWER(t.title) LIKE $1 OR LOWER(t.excerpt) LIKE $1 OR LOWER(t.body) LIKE $1
	    OR LOWER(c.%[1]s) LIKE $1
	    OR EXISTS (
	      SELECT 1 FROM article_tags mt
	      JOIN tags mtg ON mtg.id = mt.tag_id
	      WHERE mt.article_id = a.id
	        AND (LOWER(mtg.%[1]s) LIKE $1 OR LOWER(mtg.code) LIKE $1)
	    )
	  )
`

func (s *Searcher) searchArticles(ctx context.Context, params *dto.SearchParams, pattern string) (*dto.TypeResult[dto.ArticleHit], error) {
	nameCol := params.Lang.NameColumn()

	var total *int64
	fetchLimit := params.Limit + 1
	if params.IncludeCounts {
		fetchLimit = params.Limit
		var n int64
		countSQL := fmt.Sprintf(articleCountSQL, nameCol)
		if err := s.db.QueryRow(ctx, countSQL, pattern, params.Lang.String()).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count articles: %w", err)
		}
		total = &n
	}

	searchSQL := fmt.Sprintf(articleSearchSQL, nameCol)
	rows, err := s.db.Query(ctx, searchSQL, pattern, params.Lang.String(), fetchLimit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	items := []dto.ArticleHit{}
	for rows.Next() {
		var (
			hit          dto.ArticleHit
			excerpt      string
			body         string
			createdAt    time.Time
			updatedAt    time.Time
			categoryName *string
		)
		if err := rows.Scan(
			&hit.ID,
			&hit.Title,
			&hit.Slug,
			&excerpt,
			&body,
			&createdAt,
			&updatedAt,
			&categoryName,
			&hit.TagCodes,
			&hit.TagNames,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}

		hit.Excerpt = textutil.DeriveExcerpt(excerpt, body)
		hit.CreatedAt = textutil.ToISO(createdAt)
		hit.UpdatedAt = textutil.ToISO(updatedAt)
		hit.CategoryName = categoryName
		if hit.TagCodes == nil {
			hit.TagCodes = []string{}
		}
		if hit.TagNames == nil {
			hit.TagNames = []string{}
		}
		items = append(items, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return newTypeResult(items, params, total), nil
}

// newTypeResult trims the overfetched row back off and derives hasMore.
// With exact counts, hasMore comes from offset arithmetic instead.
func newTypeResult[T any](items []T, params *dto.SearchParams, total *int64) *dto.TypeResult[T] {
	var hasMore bool
	if total != nil {
		hasMore = int64(params.Offset+len(items)) < *total
	} else {
		hasMore = len(items) > params.Limit
		if hasMore {
			items = items[:params.Limit]
		}
	}

	return &dto.TypeResult[T]{
		Items:   items,
		Page:    params.Page,
		Limit:   params.Limit,
		HasMore: hasMore,
		Total:   total,
	}
}
