package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/khoborhub/khobor/internal/domain"
)

type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, cat *domain.Category) error
	Update(ctx context.Context, cat *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

type TagStore interface {
	List(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, tag *domain.Tag) error
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id int64) error
}

type ArticleStore interface {
	Create(ctx context.Context, article *domain.Article, tagIDs []int64) error
	Update(ctx context.Context, article *domain.Article, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string, lang domain.Language) (*domain.Article, error)
	ListPublished(ctx context.Context, lang domain.Language, limit, offset int) ([]domain.Article, error)
}

type CommentStore interface {
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
