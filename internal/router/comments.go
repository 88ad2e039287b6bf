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

type CommentRouter struct {
	e        *echo.Echo
	comments storage.CommentStore
	issuer   *auth.TokenIssuer
}

func NewCommentRouter(e *echo.Echo, comments storage.CommentStore, issuer *auth.TokenIssuer) *CommentRouter {
	return &CommentRouter{
		e:        e,
		comments: comments,
		issuer:   issuer,
	}
}

func (r *CommentRouter) Bind() {
	r.e.GET("/articles/:id/comments", r.listHandler)
	r.e.POST("/articles/:id/comments", r.createHandler, auth.Middleware(r.issuer))
	r.e.DELETE("/comments/:id", r.deleteHandler, auth.Middleware(r.issuer))
}

// listHandler godoc
// @Summary List comments on an article
// @Tags comments
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {array} domain.Comment
// @Router /articles/{id}/comments [get]
func (r *CommentRouter) listHandler(c echo.Context) error {
	articleID, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	comments, err := r.comments.ListByArticle(c.Request().Context(), articleID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// createHandler godoc
// @Summary Comment on an article
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Article id"
// @Param payload body dto.CommentRequest true "Comment body"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /articles/{id}/comments [post]
func (r *CommentRouter) createHandler(c echo.Context) error {
	articleID, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req dto.CommentRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	comment := &domain.Comment{
		ArticleID: articleID,
		AuthorID:  auth.CallerID(c),
		Body:      req.Body,
	}
	if err := r.comments.Create(c.Request().Context(), comment); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// deleteHandler godoc
// @Summary Delete a comment
// @Tags comments
// @Param id path string true "Comment id"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (r *CommentRouter) deleteHandler(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	existing, err := r.comments.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(c, existing.AuthorID); err != nil {
		return err
	}

	if err := r.comments.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
