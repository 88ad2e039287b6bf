package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/domain"
)

type ArticleStore struct {
	db DB
}

func NewArticleStore(pool *ConnectionPool) *ArticleStore {
	return &ArticleStore{db: pool.GetConn()}
}

// Create inserts the article, its translations and its tag links in one
// transaction so a half-written article is never visible.
func (s *ArticleStore) Create(ctx context.Context, article *domain.Article, tagIDs []int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO articles (author_id, category_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, article.AuthorID, article.CategoryID, article.Status).
		Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperr.NewSemantic("unknown category or author")
		}
		return fmt.Errorf("failed to insert article: %w", err)
	}

	if err := insertTranslations(ctx, tx, article); err != nil {
		return err
	}
	if err := insertTagLinks(ctx, tx, article.ID, tagIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *ArticleStore) Update(ctx context.Context, article *domain.Article, tagIDs []int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE articles
		SET category_id = $2, status = $3, updated_at = now()
		WHERE id = $1
	`, article.ID, article.CategoryID, article.Status)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperr.NewSemantic("unknown category")
		}
		return fmt.Errorf("failed to update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("article not found")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM article_translations WHERE article_id = $1`, article.ID); err != nil {
		return fmt.Errorf("failed to clear translations: %w", err)
	}
	if err := insertTranslations(ctx, tx, article); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, article.ID); err != nil {
		return fmt.Errorf("failed to clear tag links: %w", err)
	}
	if err := insertTagLinks(ctx, tx, article.ID, tagIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertTranslations(ctx context.Context, tx pgx.Tx, article *domain.Article) error {
	for _, tr := range article.Trans {
		_, err := tx.Exec(ctx, `
			INSERT INTO article_translations (article_id, lang, title, slug, excerpt, body)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, article.ID, tr.Lang, tr.Title, tr.Slug, tr.Excerpt, tr.Body)
		if err != nil {
			if isUniqueViolation(err) {
				return apperr.NewConflict("slug already in use")
			}
			return fmt.Errorf("failed to insert translation: %w", err)
		}
	}
	return nil
}

func insertTagLinks(ctx context.Context, tx pgx.Tx, articleID int64, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO article_tags (article_id, tag_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, articleID, tagID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return apperr.NewSemantic(fmt.Sprintf("unknown tag id: %d", tagID))
			}
			return fmt.Errorf("failed to link tag %d: %w", tagID, err)
		}
	}
	return nil
}

func (s *ArticleStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("article not found")
	}
	return nil
}

func (s *ArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	var article domain.Article
	err := s.db.QueryRow(ctx, `
		SELECT id, author_id, category_id, status, created_at, updated_at
		FROM articles
		WHERE id = $1
	`, id).Scan(
		&article.ID, &article.AuthorID, &article.CategoryID,
		&article.Status, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("article not found")
		}
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}

	if err := s.loadTranslations(ctx, &article); err != nil {
		return nil, err
	}
	if err := s.loadTags(ctx, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// GetBySlug resolves a published article through one of its localized slugs.
func (s *ArticleStore) GetBySlug(ctx context.Context, slug string, lang domain.Language) (*domain.Article, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		SELECT a.id
		FROM articles a
		JOIN article_translations t ON t.article_id = a.id
		WHERE a.status = 'published' AND t.slug = $1 AND t.lang = $2
	`, slug, lang.String()).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("article not found")
		}
		return nil, fmt.Errorf("failed to resolve slug: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *ArticleStore) ListPublished(ctx context.Context, lang domain.Language, limit, offset int) ([]domain.Article, error) {
	rows, err := s.db.Query(ctx, `
		SELECT a.id, a.author_id, a.category_id, a.status, a.created_at, a.updated_at,
		       t.lang, t.title, t.slug, t.excerpt, t.body
		FROM articles a
		JOIN article_translations t ON t.article_id = a.id AND t.lang = $1
		WHERE a.status = 'published'
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $2 OFFSET $3
	`, lang.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		var (
			a  domain.Article
			tr domain.Translation
		)
		if err := rows.Scan(
			&a.ID, &a.AuthorID, &a.CategoryID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&tr.Lang, &tr.Title, &tr.Slug, &tr.Excerpt, &tr.Body,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		tr.ArticleID = a.ID
		a.Trans = []domain.Translation{tr}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleStore) loadTranslations(ctx context.Context, article *domain.Article) error {
	rows, err := s.db.Query(ctx, `
		SELECT lang, title, slug, excerpt, body
		FROM article_translations
		WHERE article_id = $1
		ORDER BY lang ASC
	`, article.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		tr := domain.Translation{ArticleID: article.ID}
		if err := rows.Scan(&tr.Lang, &tr.Title, &tr.Slug, &tr.Excerpt, &tr.Body); err != nil {
			return fmt.Errorf("failed to scan translation: %w", err)
		}
		article.Trans = append(article.Trans, tr)
	}
	return rows.Err()
}

func (s *ArticleStore) loadTags(ctx context.Context, article *domain.Article) error {
	rows, err := s.db.Query(ctx, `
		SELECT tg.id, tg.code, tg.name_en, tg.name_bn, tg.created_at
		FROM tags tg
		JOIN article_tags atg ON atg.tag_id = tg.id
		WHERE atg.article_id = $1
		ORDER BY tg.code ASC
	`, article.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch article tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Code, &t.NameEn, &t.NameBn, &t.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan article tag: %w", err)
		}
		article.Tags = append(article.Tags, t)
	}
	return rows.Err()
}
