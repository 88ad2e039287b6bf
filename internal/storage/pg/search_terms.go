package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/khoborhub/khobor/internal/dto"
	"github.com/khoborhub/khobor/pkg/textutil"
)

// Fixed table identifiers for the two term-shaped entities. Only these
// constants are ever interpolated into term query text.
const (
	categoriesTable = "categories"
	tagsTable       = "tags"
)

const termSearchSQL = `
	SELECT id, code, %[1]s, created_at
	FROM %[2]s
	WHERE LOWER(%[1]s) LIKE $1 OR LOWER(code) LIKE $1
	ORDER BY %[1]s ASC, id ASC
	LIMIT $2 OFFSET $3
`

const termCountSQL = `
	SELECT COUNT(*)
	FROM %[2]s
	WHERE LOWER(%[1]s) LIKE $1 OR LOWER(code) LIKE $1
`

// searchTerms serves both categories and tags; the two relations share the
// code/name_en/name_bn shape and the alphabetical default ordering.
func (s *Searcher) searchTerms(ctx context.Context, table string, params *dto.SearchParams, pattern string) (*dto.TypeResult[dto.TermHit], error) {
	nameCol := params.Lang.NameColumn()

	var total *int64
	fetchLimit := params.Limit + 1
	if params.IncludeCounts {
		fetchLimit = params.Limit
		var n int64
		countSQL := fmt.Sprintf(termCountSQL, nameCol, table)
		if err := s.db.QueryRow(ctx, countSQL, pattern).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		total = &n
	}

	searchSQL := fmt.Sprintf(termSearchSQL, nameCol, table)
	rows, err := s.db.Query(ctx, searchSQL, pattern, fetchLimit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	items := []dto.TermHit{}
	for rows.Next() {
		var (
			hit       dto.TermHit
			createdAt time.Time
		)
		if err := rows.Scan(&hit.ID, &hit.Code, &hit.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		hit.CreatedAt = textutil.ToISO(createdAt)
		items = append(items, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", table, err)
	}

	return newTypeResult(items, params, total), nil
}
