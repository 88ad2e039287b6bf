package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/domain"
)

type CommentStore struct {
	db DB
}

func NewCommentStore(pool *ConnectionPool) *CommentStore {
	return &CommentStore{db: pool.GetConn()}
}

func (s *CommentStore) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, article_id, author_id, body, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at ASC, id ASC
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}

func (s *CommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	err := s.db.QueryRow(ctx, `
		INSERT INTO comments (id, article_id, author_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, comment.ID, comment.ArticleID, comment.AuthorID, comment.Body).
		Scan(&comment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperr.NewNotFound("article not found")
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (s *CommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRow(ctx, `
		SELECT id, article_id, author_id, body, created_at
		FROM comments
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.Body, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("comment not found")
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return &c, nil
}

func (s *CommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("comment not found")
	}
	return nil
}
