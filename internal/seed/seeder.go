package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/khoborhub/khobor/internal/auth"
	"github.com/khoborhub/khobor/internal/domain"
	"github.com/khoborhub/khobor/internal/storage"
)

// Seeder replays a fixture through the regular stores so seeded data
// passes the same constraints as API writes.
type Seeder struct {
	users      storage.UserStore
	categories storage.CategoryStore
	tags       storage.TagStore
	articles   storage.ArticleStore
}

func NewSeeder(users storage.UserStore, categories storage.CategoryStore, tags storage.TagStore, articles storage.ArticleStore) *Seeder {
	return &Seeder{
		users:      users,
		categories: categories,
		tags:       tags,
		articles:   articles,
	}
}

func (s *Seeder) Apply(ctx context.Context, f *Fixture) error {
	usersByEmail, err := s.applyUsers(ctx, f.Users)
	if err != nil {
		return err
	}

	categoriesByCode, err := s.applyCategories(ctx, f.Categories)
	if err != nil {
		return err
	}

	tagsByCode, err := s.applyTags(ctx, f.Tags)
	if err != nil {
		return err
	}

	for i, af := range f.Articles {
		if err := s.applyArticle(ctx, &af, usersByEmail, categoriesByCode, tagsByCode); err != nil {
			return fmt.Errorf("article at index %d: %w", i, err)
		}
	}

	slog.Info("Seed applied",
		"users", len(f.Users),
		"categories", len(f.Categories),
		"tags", len(f.Tags),
		"articles", len(f.Articles),
	)
	return nil
}

func (s *Seeder) applyUsers(ctx context.Context, fixtures []UserFixture) (map[string]uuid.UUID, error) {
	byEmail := make(map[string]uuid.UUID, len(fixtures))
	for _, uf := range fixtures {
		hash, err := auth.HashPassword(uf.Password)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", uf.Email, err)
		}

		role := domain.UserRole(uf.Role)
		if role == "" {
			role = domain.RoleReader
		}

		user := &domain.User{
			Email:        uf.Email,
			DisplayName:  uf.DisplayName,
			Role:         role,
			PasswordHash: hash,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("user %q: %w", uf.Email, err)
		}
		byEmail[uf.Email] = user.ID
	}
	return byEmail, nil
}

func (s *Seeder) applyCategories(ctx context.Context, fixtures []TermFixture) (map[string]int64, error) {
	byCode := make(map[string]int64, len(fixtures))
	for _, tf := range fixtures {
		cat := &domain.Category{Code: tf.Code, NameEn: tf.NameEn, NameBn: tf.NameBn}
		if err := s.categories.Create(ctx, cat); err != nil {
			return nil, fmt.Errorf("category %q: %w", tf.Code, err)
		}
		byCode[tf.Code] = cat.ID
	}
	return byCode, nil
}

func (s *Seeder) applyTags(ctx context.Context, fixtures []TermFixture) (map[string]int64, error) {
	byCode := make(map[string]int64, len(fixtures))
	for _, tf := range fixtures {
		tag := &domain.Tag{Code: tf.Code, NameEn: tf.NameEn, NameBn: tf.NameBn}
		if err := s.tags.Create(ctx, tag); err != nil {
			return nil, fmt.Errorf("tag %q: %w", tf.Code, err)
		}
		byCode[tf.Code] = tag.ID
	}
	return byCode, nil
}

func (s *Seeder) applyArticle(
	ctx context.Context,
	af *ArticleFixture,
	usersByEmail map[string]uuid.UUID,
	categoriesByCode map[string]int64,
	tagsByCode map[string]int64,
) error {
	authorID, ok := usersByEmail[af.AuthorEmail]
	if !ok {
		return fmt.Errorf("unknown authorEmail %q", af.AuthorEmail)
	}

	article := &domain.Article{
		AuthorID: authorID,
		Status:   domain.ArticleStatus(af.Status),
	}
	if article.Status == "" {
		article.Status = domain.StatusPublished
	}

	if af.CategoryCode != "" {
		catID, ok := categoriesByCode[af.CategoryCode]
		if !ok {
			return fmt.Errorf("unknown categoryCode %q", af.CategoryCode)
		}
		article.CategoryID = &catID
	}

	for _, tf := range af.Translations {
		article.Trans = append(article.Trans, domain.Translation{
			Lang:    domain.Language(tf.Lang),
			Title:   tf.Title,
			Slug:    tf.Slug,
			Excerpt: tf.Excerpt,
			Body:    tf.Body,
		})
	}

	tagIDs := make([]int64, 0, len(af.TagCodes))
	for _, code := range af.TagCodes {
		tagID, ok := tagsByCode[code]
		if !ok {
			return fmt.Errorf("unknown tagCode %q", code)
		}
		tagIDs = append(tagIDs, tagID)
	}

	return s.articles.Create(ctx, article, tagIDs)
}
