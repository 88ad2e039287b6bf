package dto

import (
	"strings"

	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/domain"
)

type TranslationPayload struct {
	Lang    string `json:"lang"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt,omitempty"`
	Body    string `json:"body"`
}

type ArticleRequest struct {
	CategoryID   *int64               `json:"categoryId,omitempty"`
	Status       string               `json:"status"`
	Translations []TranslationPayload `json:"translations"`
	TagIDs       []int64              `json:"tagIds,omitempty"`
}

func (r *ArticleRequest) Validate() error {
	if len(r.Translations) == 0 {
		return apperr.NewValidation("at least one translation is required")
	}
	seen := make(map[string]bool, len(r.Translations))
	for _, tr := range r.Translations {
		if !domain.SupportedLanguages[domain.Language(tr.Lang)] {
			return apperr.NewSemantic("invalid translation lang: " + tr.Lang)
		}
		if seen[tr.Lang] {
			return apperr.NewSemantic("duplicate translation lang: " + tr.Lang)
		}
		seen[tr.Lang] = true
		if strings.TrimSpace(tr.Title) == "" || strings.TrimSpace(tr.Slug) == "" {
			return apperr.NewValidation("translation title and slug are required")
		}
		if strings.TrimSpace(tr.Body) == "" {
			return apperr.NewValidation("translation body is required")
		}
	}
	if r.Status != "" && !domain.ValidStatuses[domain.ArticleStatus(r.Status)] {
		return apperr.NewSemantic("invalid status: " + r.Status)
	}
	return nil
}

// ToDomain builds the article entity. An empty status means draft.
func (r *ArticleRequest) ToDomain() *domain.Article {
	status := domain.ArticleStatus(r.Status)
	if r.Status == "" {
		status = domain.StatusDraft
	}
	a := &domain.Article{
		CategoryID: r.CategoryID,
		Status:     status,
	}
	for _, tr := range r.Translations {
		a.Trans = append(a.Trans, domain.Translation{
			Lang:    domain.Language(tr.Lang),
			Title:   tr.Title,
			Slug:    tr.Slug,
			Excerpt: tr.Excerpt,
			Body:    tr.Body,
		})
	}
	return a
}

type TermRequest struct {
	Code   string `json:"code"`
	NameEn string `json:"nameEn"`
	NameBn string `json:"nameBn"`
}

func (r *TermRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return apperr.NewValidation("code is required")
	}
	if strings.TrimSpace(r.NameEn) == "" || strings.TrimSpace(r.NameBn) == "" {
		return apperr.NewValidation("nameEn and nameBn are required")
	}
	return nil
}

type CommentRequest struct {
	Body string `json:"body"`
}

func (r *CommentRequest) Validate() error {
	if strings.TrimSpace(r.Body) == "" {
		return apperr.NewValidation("comment body is required")
	}
	return nil
}
