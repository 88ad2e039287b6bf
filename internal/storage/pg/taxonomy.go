package pg

import (
	"context"
	"fmt"

	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/domain"
)

// CategoryStore and TagStore are near-twins over the two term-shaped
// relations; the SQL differs only in the table identifier.

type CategoryStore struct {
	db DB
}

func NewCategoryStore(pool *ConnectionPool) *CategoryStore {
	return &CategoryStore{db: pool.GetConn()}
}

func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, code, name_en, name_bn, created_at
		FROM categories
		ORDER BY code ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	cats := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Code, &c.NameEn, &c.NameBn, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return cats, nil
}

func (s *CategoryStore) Create(ctx context.Context, cat *domain.Category) error {
	cmd := `
		INSERT INTO categories (code, name_en, name_bn)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := s.db.QueryRow(ctx, cmd, cat.Code, cat.NameEn, cat.NameBn).
		Scan(&cat.ID, &cat.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.NewConflict("category code already exists")
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (s *CategoryStore) Update(ctx context.Context, cat *domain.Category) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE categories SET code = $2, name_en = $3, name_bn = $4
		WHERE id = $1
	`, cat.ID, cat.Code, cat.NameEn, cat.NameBn)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.NewConflict("category code already exists")
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("category not found")
	}
	return nil
}

func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("category not found")
	}
	return nil
}

type TagStore struct {
	db DB
}

func NewTagStore(pool *ConnectionPool) *TagStore {
	return &TagStore{db: pool.GetConn()}
}

func (s *TagStore) List(ctx context.Context) ([]domain.Tag, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, code, name_en, name_bn, created_at
		FROM tags
		ORDER BY code ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Code, &t.NameEn, &t.NameBn, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}
	return tags, nil
}

func (s *TagStore) Create(ctx context.Context, t *domain.Tag) error {
	cmd := `
		INSERT INTO tags (code, name_en, name_bn)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := s.db.QueryRow(ctx, cmd, t.Code, t.NameEn, t.NameBn).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.NewConflict("tag code already exists")
		}
		return fmt.Errorf("failed to insert tag: %w", err)
	}
	return nil
}

func (s *TagStore) Update(ctx context.Context, t *domain.Tag) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE tags SET code = $2, name_en = $3, name_bn = $4
		WHERE id = $1
	`, t.ID, t.Code, t.NameEn, t.NameBn)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.NewConflict("tag code already exists")
		}
		return fmt.Errorf("failed to update tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("tag not found")
	}
	return nil
}

func (s *TagStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("tag not found")
	}
	return nil
}
