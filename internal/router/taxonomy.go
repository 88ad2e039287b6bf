package router

import (
	"net/http"

	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/auth"
	"github.com/khoborhub/khobor/internal/domain"
	"github.com/khoborhub/khobor/internal/dto"
	"github.com/khoborhub/khobor/internal/storage"
	"github.com/labstack/echo/v4"
)

// TaxonomyRouter serves the category and tag vocabularies. Reads are
// public, mutations are admin only.
type TaxonomyRouter struct {
	e          *echo.Echo
	categories storage.CategoryStore
	tags       storage.TagStore
	issuer     *auth.TokenIssuer
}

func NewTaxonomyRouter(e *echo.Echo, categories storage.CategoryStore, tags storage.TagStore, issuer *auth.TokenIssuer) *TaxonomyRouter {
	return &TaxonomyRouter{
		e:          e,
		categories: categories,
		tags:       tags,
		issuer:     issuer,
	}
}

func (r *TaxonomyRouter) Bind() {
	r.e.GET("/categories", r.listCategoriesHandler)
	r.e.GET("/tags", r.listTagsHandler)

	admin := []echo.MiddlewareFunc{auth.Middleware(r.issuer), auth.RequireRole(domain.RoleAdmin)}

	r.e.POST("/categories", r.createCategoryHandler, admin...)
	r.e.PUT("/categories/:id", r.updateCategoryHandler, admin...)
	r.e.DELETE("/categories/:id", r.deleteCategoryHandler, admin...)

	r.e.POST("/tags", r.createTagHandler, admin...)
	r.e.PUT("/tags/:id", r.updateTagHandler, admin...)
	r.e.DELETE("/tags/:id", r.deleteTagHandler, admin...)
}

// listCategoriesHandler godoc
// @Summary List all categories
// @Tags taxonomy
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (r *TaxonomyRouter) listCategoriesHandler(c echo.Context) error {
	cats, err := r.categories.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cats)
}

// listTagsHandler godoc
// @Summary List all tags
// @Tags taxonomy
// @Produce json
// @Success 200 {array} domain.Tag
// @Router /tags [get]
func (r *TaxonomyRouter) listTagsHandler(c echo.Context) error {
	tags, err := r.tags.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

func (r *TaxonomyRouter) createCategoryHandler(c echo.Context) error {
	req, err := bindTerm(c)
	if err != nil {
		return err
	}
	cat := &domain.Category{Code: req.Code, NameEn: req.NameEn, NameBn: req.NameBn}
	if err := r.categories.Create(c.Request().Context(), cat); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}

func (r *TaxonomyRouter) updateCategoryHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	req, err := bindTerm(c)
	if err != nil {
		return err
	}
	cat := &domain.Category{ID: id, Code: req.Code, NameEn: req.NameEn, NameBn: req.NameBn}
	if err := r.categories.Update(c.Request().Context(), cat); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

func (r *TaxonomyRouter) deleteCategoryHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := r.categories.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *TaxonomyRouter) createTagHandler(c echo.Context) error {
	req, err := bindTerm(c)
	if err != nil {
		return err
	}
	tag := &domain.Tag{Code: req.Code, NameEn: req.NameEn, NameBn: req.NameBn}
	if err := r.tags.Create(c.Request().Context(), tag); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tag)
}

func (r *TaxonomyRouter) updateTagHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	req, err := bindTerm(c)
	if err != nil {
		return err
	}
	tag := &domain.Tag{ID: id, Code: req.Code, NameEn: req.NameEn, NameBn: req.NameBn}
	if err := r.tags.Update(c.Request().Context(), tag); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

func (r *TaxonomyRouter) deleteTagHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := r.tags.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindTerm(c echo.Context) (*dto.TermRequest, error) {
	var req dto.TermRequest
	if err := c.Bind(&req); err != nil {
		return nil, apperr.NewValidationWrap("invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}
