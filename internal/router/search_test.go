package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	gotParams *dto.SearchParams
	results   *dto.SearchResults
	err       error
}

func (s *stubSearcher) Search(_ context.Context, params *dto.SearchParams) (*dto.SearchResults, error) {
	s.gotParams = params
	return s.results, s.err
}

type stubSuggester struct {
	gotParams   *dto.SuggestParams
	suggestions []dto.Suggestion
	candidates  map[string]int
	err         error
}

func (s *stubSuggester) Suggest(_ context.Context, params *dto.SuggestParams) ([]dto.Suggestion, map[string]int, error) {
	s.gotParams = params
	return s.suggestions, s.candidates, s.err
}

func newTestRouter(searcher *stubSearcher, suggester *stubSuggester) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewSearchRouter(e, searcher, suggester).Bind()
	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSearchHandler_Envelope(t *testing.T) {
	searcher := &stubSearcher{
		results: &dto.SearchResults{
			Articles: &dto.TypeResult[dto.ArticleHit]{
				Items:   []dto.ArticleHit{{ID: 1, Title: "Flood warning", Slug: "flood-warning"}},
				Page:    1,
				Limit:   10,
				HasMore: false,
			},
		},
	}
	e := newTestRouter(searcher, &stubSuggester{})

	rec := doGet(e, "/search?q=flood&types=articles")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "flood", resp.Query)
	assert.Equal(t, []string{"articles"}, resp.Types)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, "default", resp.Sort)
	require.NotNil(t, resp.Results.Articles)
	assert.Len(t, resp.Results.Articles.Items, 1)
	assert.Nil(t, resp.Results.Categories)
	assert.Nil(t, resp.Results.Tags)
}

func TestSearchHandler_PassesNormalizedParams(t *testing.T) {
	searcher := &stubSearcher{results: &dto.SearchResults{}}
	e := newTestRouter(searcher, &stubSuggester{})

	rec := doGet(e, "/search?q=dhaka&types=tags,articles&lang=bn&limit=500&page=3&includeCounts=true")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, searcher.gotParams)
	assert.Equal(t, "dhaka", searcher.gotParams.Query)
	assert.Equal(t, []string{"tags", "articles"}, searcher.gotParams.Types)
	assert.Equal(t, "bn", searcher.gotParams.Lang.String())
	assert.Equal(t, 100, searcher.gotParams.Limit)
	assert.Equal(t, 3, searcher.gotParams.Page)
	assert.Equal(t, 200, searcher.gotParams.Offset)
	assert.True(t, searcher.gotParams.IncludeCounts)
}

func TestSearchHandler_MissingQueryIs400(t *testing.T) {
	e := newTestRouter(&stubSearcher{}, &stubSuggester{})

	rec := doGet(e, "/search")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestSearchHandler_OverlongQueryIs400(t *testing.T) {
	e := newTestRouter(&stubSearcher{}, &stubSuggester{})

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	rec := doGet(e, "/search?q="+string(long))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandler_UnknownTypeIs422(t *testing.T) {
	e := newTestRouter(&stubSearcher{}, &stubSuggester{})

	rec := doGet(e, "/search?q=x&types=articles,videos")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "videos")
}

func TestSearchHandler_StoreFailureIs500(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("pool exhausted")}
	e := newTestRouter(searcher, &stubSuggester{})

	rec := doGet(e, "/search?q=x")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pool exhausted")
}

func TestSuggestHandler_Envelope(t *testing.T) {
	suggester := &stubSuggester{
		suggestions: []dto.Suggestion{
			{Type: "articles", ID: 7, Title: "Cyclone season", Slug: "cyclone-season", Highlight: map[string]string{"title": "<c>Cyc</c>lone season"}},
		},
		candidates: map[string]int{"articles": 1, "categories": 0, "tags": 0},
	}
	e := newTestRouter(&stubSearcher{}, suggester)

	rec := doGet(e, "/search/suggestions?q=cyc")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SuggestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cyc", resp.Query)
	assert.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "<c>Cyc</c>lone season", resp.Suggestions[0].Highlight["title"])
	assert.Nil(t, resp.Meta)
}

func TestSuggestHandler_IncludeMeta(t *testing.T) {
	suggester := &stubSuggester{
		suggestions: []dto.Suggestion{},
		candidates:  map[string]int{"articles": 3, "categories": 1, "tags": 0},
	}
	e := newTestRouter(&stubSearcher{}, suggester)

	rec := doGet(e, "/search/suggestions?q=dh&includeMeta=1")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SuggestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.GreaterOrEqual(t, resp.Meta.TookMs, int64(0))
	assert.Equal(t, map[string]int{"articles": 3, "categories": 1, "tags": 0}, resp.Meta.TotalCandidates)
}

func TestSuggestHandler_EmptyQueryIs400(t *testing.T) {
	e := newTestRouter(&stubSearcher{}, &stubSuggester{})

	rec := doGet(e, "/search/suggestions?q=")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestHandler_ClampsLimits(t *testing.T) {
	suggester := &stubSuggester{suggestions: []dto.Suggestion{}, candidates: map[string]int{}}
	e := newTestRouter(&stubSearcher{}, suggester)

	rec := doGet(e, "/search/suggestions?q=dh&limit=99&perTypeLimit=99")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, suggester.gotParams)
	assert.Equal(t, 20, suggester.gotParams.Limit)
	assert.Equal(t, 10, suggester.gotParams.PerTypeLimit)
}
