package router

import (
	"net/http"

	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/auth"
	"github.com/khoborhub/khobor/internal/domain"
	"github.com/khoborhub/khobor/internal/dto"
	"github.com/khoborhub/khobor/internal/storage"
	"github.com/khoborhub/khobor/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type ArticleRouter struct {
	e        *echo.Echo
	articles storage.ArticleStore
	issuer   *auth.TokenIssuer
}

func NewArticleRouter(e *echo.Echo, articles storage.ArticleStore, issuer *auth.TokenIssuer) *ArticleRouter {
	return &ArticleRouter{
		e:        e,
		articles: articles,
		issuer:   issuer,
	}
}

func (r *ArticleRouter) Bind() {
	r.e.GET("/articles", r.listHandler)
	r.e.GET("/articles/:id", r.getHandler)
	r.e.GET("/articles/slug/:slug", r.getBySlugHandler)

	authed := r.e.Group("/articles", auth.Middleware(r.issuer), auth.RequireRole(domain.RoleAuthor))
	authed.POST("", r.createHandler)
	authed.PUT("/:id", r.updateHandler)
	authed.DELETE("/:id", r.deleteHandler)
}

// listHandler godoc
// @Summary List published articles
// @Tags articles
// @Produce json
// @Param lang query string false "Translation language, en or bn"
// @Param limit query int false "Page size, 1..100"
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} pagination.OffsetResult[domain.Article]
// @Router /articles [get]
func (r *ArticleRouter) listHandler(c echo.Context) error {
	lang := domain.ParseLanguage(c.QueryParam("lang"))

	var pageReq pagination.OffsetRequest
	if err := c.Bind(&pageReq); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	pageReq.Normalize()

	// One extra row tells us whether a next page exists.
	articles, err := r.articles.ListPublished(c.Request().Context(), lang, pageReq.Limit+1, pageReq.Offset())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewOffsetResult(articles, &pageReq))
}

// getHandler godoc
// @Summary Fetch one article by id
// @Tags articles
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} domain.Article
// @Failure 404 {object} map[string]string
// @Router /articles/{id} [get]
func (r *ArticleRouter) getHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	article, err := r.articles.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// getBySlugHandler godoc
// @Summary Fetch one published article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Translation slug"
// @Param lang query string false "Translation language, en or bn"
// @Success 200 {object} domain.Article
// @Failure 404 {object} map[string]string
// @Router /articles/slug/{slug} [get]
func (r *ArticleRouter) getBySlugHandler(c echo.Context) error {
	lang := domain.ParseLanguage(c.QueryParam("lang"))
	article, err := r.articles.GetBySlug(c.Request().Context(), c.Param("slug"), lang)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// createHandler godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param payload body dto.ArticleRequest true "Article payload"
// @Success 201 {object} domain.Article
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /articles [post]
func (r *ArticleRouter) createHandler(c echo.Context) error {
	var req dto.ArticleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	article := req.ToDomain()
	article.AuthorID = auth.CallerID(c)
	if err := r.articles.Create(c.Request().Context(), article, req.TagIDs); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

// updateHandler godoc
// @Summary Replace an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article id"
// @Param payload body dto.ArticleRequest true "Article payload"
// @Success 200 {object} domain.Article
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /articles/{id} [put]
func (r *ArticleRouter) updateHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	existing, err := r.articles.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(c, existing.AuthorID); err != nil {
		return err
	}

	var req dto.ArticleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	article := req.ToDomain()
	article.ID = id
	article.AuthorID = existing.AuthorID
	if err := r.articles.Update(c.Request().Context(), article, req.TagIDs); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// deleteHandler godoc
// @Summary Delete an article
// @Tags articles
// @Param id path int true "Article id"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /articles/{id} [delete]
func (r *ArticleRouter) deleteHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	existing, err := r.articles.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(c, existing.AuthorID); err != nil {
		return err
	}

	if err := r.articles.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
