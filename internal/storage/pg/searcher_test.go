package pg

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/khoborhub/khobor/internal/domain"
	"github.com/khoborhub/khobor/internal/dto"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleParams(limit, page int, includeCounts bool) *dto.SearchParams {
	return &dto.SearchParams{
		Query:         "search test",
		Types:         []string{dto.TypeArticles},
		Lang:          domain.LanguageEnglish,
		Limit:         limit,
		Page:          page,
		Offset:        (page - 1) * limit,
		IncludeCounts: includeCounts,
	}
}

func articleRowColumns() []string {
	return []string{"id", "title", "slug", "excerpt", "body", "created_at", "updated_at", "name_en", "tag_codes", "tag_names"}
}

func TestSearcher_Articles_OverfetchTrimsToLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	categoryName := "Technology"
	rows := pgxmock.NewRows(articleRowColumns())
	// Three rows returned for limit 2: the extra row signals more results.
	for i := int64(3); i >= 1; i-- {
		rows.AddRow(i, "Search Test Article", "search-test", "stored excerpt", "body", now, now,
			&categoryName, []string{"alpha", "searchdemo"}, []string{"Alpha", "Search Demo"})
	}

	mock.ExpectQuery(`SELECT a\.id, t\.title, t\.slug, t\.excerpt, t\.body`).
		WithArgs("%search test%", "en", 3, 0).
		WillReturnRows(rows)

	s := &Searcher{db: mock}
	results, err := s.Search(context.Background(), articleParams(2, 1, false))
	require.NoError(t, err)
	require.NotNil(t, results.Articles)

	page := results.Articles
	assert.Len(t, page.Items, 2, "never returns limit+1 items")
	assert.True(t, page.HasMore)
	assert.Nil(t, page.Total, "no exact total without includeCounts")
	assert.Equal(t, []string{"alpha", "searchdemo"}, page.Items[0].TagCodes)
	assert.Equal(t, []string{"Alpha", "Search Demo"}, page.Items[0].TagNames)
	assert.Equal(t, "Technology", *page.Items[0].CategoryName)
	assert.Equal(t, "stored excerpt", page.Items[0].Excerpt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearcher_Articles_NoMoreResults(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows(articleRowColumns()).
		AddRow(int64(1), "Only Hit", "only-hit", "", "<p>body text</p>", now, now,
			(*string)(nil), []string{}, []string{})

	mock.ExpectQuery(`SELECT a\.id, t\.title, t\.slug`).
		WithArgs("%search test%", "en", 11, 0).
		WillReturnRows(rows)

	s := &Searcher{db: mock}
	results, err := s.Search(context.Background(), articleParams(10, 1, false))
	require.NoError(t, err)

	page := results.Articles
	require.Len(t, page.Items, 1)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.Items[0].CategoryName)
	assert.Equal(t, "body text", page.Items[0].Excerpt, "excerpt derived from body when stored one is blank")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearcher_Articles_IncludeCounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT a\.id\)`).
		WithArgs("%search test%", "en").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	now := time.Now()
	rows := pgxmock.NewRows(articleRowColumns())
	for i := int64(2); i >= 1; i-- {
		rows.AddRow(i, "Hit", "hit", "x", "b", now, now, (*string)(nil), []string{}, []string{})
	}
	mock.ExpectQuery(`SELECT a\.id, t\.title`).
		WithArgs("%search test%", "en", 2, 2).
		WillReturnRows(rows)

	s := &Searcher{db: mock}
	results, err := s.Search(context.Background(), articleParams(2, 2, true))
	require.NoError(t, err)

	page := results.Articles
	require.NotNil(t, page.Total)
	assert.Equal(t, int64(7), *page.Total)
	// offset 2 + 2 returned < 7 total
	assert.True(t, page.HasMore)
	assert.Len(t, page.Items, 2, "exact limit fetched when counting")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearcher_Articles_IncludeCounts_LastPage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT a\.id\)`).
		WithArgs("%search test%", "en").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	now := time.Now()
	rows := pgxmock.NewRows(articleRowColumns()).
		AddRow(int64(1), "Hit", "hit", "x", "b", now, now, (*string)(nil), []string{}, []string{})
	mock.ExpectQuery(`SELECT a\.id, t\.title`).
		WithArgs("%search test%", "en", 2, 2).
		WillReturnRows(rows)

	s := &Searcher{db: mock}
	results, err := s.Search(context.Background(), articleParams(2, 2, true))
	require.NoError(t, err)

	page := results.Articles
	assert.Equal(t, int64(3), *page.Total)
	assert.False(t, page.HasMore, "offset 2 + 1 returned == 3 total")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearcher_Categories_BengaliColumnSelection(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "code", "name_bn", "created_at"}).
		AddRow(int64(4), "sports", "খেলা", now)

	mock.ExpectQuery(`SELECT id, code, name_bn, created_at\s+FROM categories`).
		WithArgs("%kh%", 11, 0).
		WillReturnRows(rows)

	s := &Searcher{db: mock}
	results, err := s.Search(context.Background(), &dto.SearchParams{
		Query: "kh",
		Types: []string{dto.TypeCategories},
		Lang:  domain.LanguageBengali,
		Limit: 10,
		Page:  1,
	})
	require.NoError(t, err)
	require.NotNil(t, results.Categories)
	require.Len(t, results.Categories.Items, 1)
	assert.Equal(t, "sports", results.Categories.Items[0].Code)
	assert.Equal(t, "খেলা", results.Categories.Items[0].Name)
	assert.Nil(t, results.Articles)
	assert.Nil(t, results.Tags)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearcher_Tags_WithCounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM tags`).
		WithArgs("%searchdemo%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "code", "name_en", "created_at"}).
		AddRow(int64(9), "searchdemo", "Search Demo", now)
	mock.ExpectQuery(`SELECT id, code, name_en, created_at\s+FROM tags`).
		WithArgs("%searchdemo%", 10, 0).
		WillReturnRows(rows)

	s := &Searcher{db: mock}
	results, err := s.Search(context.Background(), &dto.SearchParams{
		Query:         "searchdemo",
		Types:         []string{dto.TypeTags},
		Lang:          domain.LanguageEnglish,
		Limit:         10,
		Page:          1,
		IncludeCounts: true,
	})
	require.NoError(t, err)
	require.NotNil(t, results.Tags)
	require.NotNil(t, results.Tags.Total)
	assert.Equal(t, int64(1), *results.Tags.Total)
	assert.False(t, results.Tags.HasMore)
	assert.Equal(t, "searchdemo", results.Tags.Items[0].Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearcher_MultiType_ConcurrentFanOut(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.MatchExpectationsInOrder(false)

	now := time.Now()
	mock.ExpectQuery(`FROM articles a`).
		WithArgs("%x%", "en", 6, 0).
		WillReturnRows(pgxmock.NewRows(articleRowColumns()).
			AddRow(int64(1), "X", "x", "e", "b", now, now, (*string)(nil), []string{}, []string{}))
	mock.ExpectQuery(`FROM categories`).
		WithArgs("%x%", 6, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name_en", "created_at"}))
	mock.ExpectQuery(`FROM tags`).
		WithArgs("%x%", 6, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name_en", "created_at"}))

	s := &Searcher{db: mock}
	results, err := s.Search(context.Background(), &dto.SearchParams{
		Query: "x",
		Types: []string{dto.TypeArticles, dto.TypeCategories, dto.TypeTags},
		Lang:  domain.LanguageEnglish,
		Limit: 5,
		Page:  1,
	})
	require.NoError(t, err)
	require.NotNil(t, results.Articles)
	require.NotNil(t, results.Categories)
	require.NotNil(t, results.Tags)
	assert.Len(t, results.Articles.Items, 1)
	assert.Empty(t, results.Categories.Items)
	assert.Empty(t, results.Tags.Items)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearcher_AnyTypeFailureAbortsAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.MatchExpectationsInOrder(false)

	now := time.Now()
	mock.ExpectQuery(`FROM articles a`).
		WithArgs("%x%", "en", 6, 0).
		WillReturnRows(pgxmock.NewRows(articleRowColumns()).
			AddRow(int64(1), "X", "x", "e", "b", now, now, (*string)(nil), []string{}, []string{}))
	mock.ExpectQuery(`FROM categories`).
		WithArgs("%x%", 6, 0).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery(`FROM tags`).
		WithArgs("%x%", 6, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name_en", "created_at"}))

	s := &Searcher{db: mock}
	results, err := s.Search(context.Background(), &dto.SearchParams{
		Query: "x",
		Types: []string{dto.TypeArticles, dto.TypeCategories, dto.TypeTags},
		Lang:  domain.LanguageEnglish,
		Limit: 5,
		Page:  1,
	})
	require.Error(t, err)
	assert.Nil(t, results, "no partial results on any per-type failure")
	assert.True(t, strings.Contains(err.Error(), "categories search"))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%dhaka metro%", containsPattern("  Dhaka Metro "))
	assert.Equal(t, "dhaka%", prefixPattern(" Dhaka"))
}
