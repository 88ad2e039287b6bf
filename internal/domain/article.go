package domain

import (
	"time"

	"github.com/google/uuid"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

var ValidStatuses = map[ArticleStatus]bool{
	StatusDraft:     true,
	StatusPublished: true,
	StatusArchived:  true,
}

type Article struct {
	ID         int64         `json:"id"`
	AuthorID   uuid.UUID     `json:"authorId"`
	CategoryID *int64        `json:"categoryId,omitempty"`
	Status     ArticleStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	Trans      []Translation `json:"translations,omitempty"`
	Tags       []Tag         `json:"tags,omitempty"`
}

// Translation is the per-language rendition of an article.
type Translation struct {
	ArticleID int64    `json:"articleId"`
	Lang      Language `json:"lang"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Body      string   `json:"body"`
}
