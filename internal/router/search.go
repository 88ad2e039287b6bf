package router

import (
	"net/http"
	"time"

	"github.com/khoborhub/khobor/internal/dto"
	"github.com/khoborhub/khobor/internal/storage"
	"github.com/labstack/echo/v4"
)

type SearchRouter struct {
	e         *echo.Echo
	searcher  storage.GlobalSearcher
	suggester storage.Suggester
}

func NewSearchRouter(e *echo.Echo, searcher storage.GlobalSearcher, suggester storage.Suggester) *SearchRouter {
	return &SearchRouter{
		e:         e,
		searcher:  searcher,
		suggester: suggester,
	}
}

func (r *SearchRouter) Bind() {
	r.e.GET("/search", r.searchHandler)
	r.e.GET("/search/suggestions", r.suggestHandler)
}

// searchHandler godoc
// @Summary Search published content
// @Description Runs the query against every requested content type concurrently and returns one paginated block per type.
// @Tags search
// @Produce json
// @Param q query string true "Search term, at most 100 characters"
// @Param types query string false "Comma separated subset of articles,categories,tags"
// @Param lang query string false "Result language, en or bn"
// @Param limit query int false "Page size, clamped to 1..100"
// @Param page query int false "Page number, starting at 1"
// @Param includeCounts query bool false "Include exact per-type totals"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /search [get]
func (r *SearchRouter) searchHandler(c echo.Context) error {
	req := dto.SearchRequest{
		Q:             c.QueryParam("q"),
		Types:         c.QueryParam("types"),
		Lang:          c.QueryParam("lang"),
		Limit:         c.QueryParam("limit"),
		Page:          c.QueryParam("page"),
		IncludeCounts: c.QueryParam("includeCounts"),
	}

	params, err := req.Normalize()
	if err != nil {
		return err
	}

	results, err := r.searcher.Search(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.SearchResponse{
		Query:   params.Query,
		Types:   params.Types,
		Page:    params.Page,
		Limit:   params.Limit,
		Sort:    "default",
		Results: *results,
	})
}

// suggestHandler godoc
// @Summary Typeahead suggestions
// @Description Returns ranked prefix and substring matches with highlight markers around the matched fragment.
// @Tags search
// @Produce json
// @Param q query string true "Suggestion term, 1 to 64 characters"
// @Param types query string false "Comma separated subset of articles,categories,tags"
// @Param lang query string false "Result language, en or bn"
// @Param limit query int false "Overall suggestion cap, clamped to 1..20"
// @Param perTypeLimit query int false "Per type candidate cap, clamped to 1..10"
// @Param includeMeta query bool false "Include timing and candidate counts"
// @Success 200 {object} dto.SuggestResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /search/suggestions [get]
func (r *SearchRouter) suggestHandler(c echo.Context) error {
	req := dto.SuggestRequest{
		Q:            c.QueryParam("q"),
		Types:        c.QueryParam("types"),
		Lang:         c.QueryParam("lang"),
		Limit:        c.QueryParam("limit"),
		PerTypeLimit: c.QueryParam("perTypeLimit"),
		IncludeMeta:  c.QueryParam("includeMeta"),
	}

	params, err := req.Normalize()
	if err != nil {
		return err
	}

	start := time.Now()
	suggestions, candidates, err := r.suggester.Suggest(c.Request().Context(), params)
	if err != nil {
		return err
	}

	resp := dto.SuggestResponse{
		Query:       params.Query,
		Types:       params.Types,
		Suggestions: suggestions,
	}
	if params.IncludeMeta {
		resp.Meta = &dto.SuggestMeta{
			TookMs:          time.Since(start).Milliseconds(),
			TotalCandidates: candidates,
		}
	}

	return c.JSON(http.StatusOK, resp)
}
