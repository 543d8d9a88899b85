package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
)

// CreateArticle вставляет статью. Конфликт по url_hash — ожидаемый исход
// гонки допуска: возвращаем storage.ErrAlreadyExists, вызывающий
// перечитывает существующую запись.
func (s *Storage) CreateArticle(ctx context.Context, article *models.Article) (uuid.UUID, error) {
	const op = "storage.postgres.CreateArticle"

	spamSignals := article.SpamSignals
	if spamSignals == nil {
		spamSignals = map[string]any{}
	}

	quality := article.QualityScore
	if quality == 0 {
		quality = 0.5
	}

	query := `
		INSERT INTO articles (source_id, url, url_hash, canonical_url,
			title, content, language, quality_score, spam_signals,
			fetched_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id uuid.UUID
	err := s.db.QueryRow(ctx, query,
		article.SourceID,
		article.URL,
		article.URLHash,
		article.CanonicalURL,
		article.Title,
		article.Content,
		article.Language,
		quality,
		spamSignals,
		article.FetchedAt.UTC(),
		article.PublishedAt,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	article.ID = id

	return id, nil
}

// ArticleIDByFingerprint возвращает id статьи по отпечатку URL.
func (s *Storage) ArticleIDByFingerprint(ctx context.Context, hash string) (uuid.UUID, error) {
	const op = "storage.postgres.ArticleIDByFingerprint"

	var id uuid.UUID
	err := s.db.QueryRow(ctx,
		`SELECT id FROM articles WHERE url_hash = $1`, hash,
	).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UpdateArticleEnrichment записывает результаты внешнего анализа
// (язык, тональность, качество, спам-сигналы).
func (s *Storage) UpdateArticleEnrichment(ctx context.Context, id uuid.UUID, e models.Enrichment) error {
	const op = "storage.postgres.UpdateArticleEnrichment"

	spamSignals := e.SpamSignals
	if spamSignals == nil {
		spamSignals = map[string]any{}
	}

	query := `
		UPDATE articles
		SET language = $2,
		    sentiment_label = $3,
		    sentiment_score = $4,
		    quality_score = $5,
		    is_spam = $6,
		    spam_signals = $7
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query,
		id,
		e.Language,
		e.SentimentLabel,
		e.SentimentScore,
		e.QualityScore,
		e.IsSpam,
		spamSignals,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SetArticleCluster привязывает статью к кластеру.
func (s *Storage) SetArticleCluster(ctx context.Context, articleID, clusterID uuid.UUID) error {
	const op = "storage.postgres.SetArticleCluster"

	cmdTag, err := s.db.Exec(ctx,
		`UPDATE articles SET cluster_id = $2 WHERE id = $1`, articleID, clusterID)
	if err != nil {
		if isFKViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// MarkArticleIndexed отмечает факт синхронизации с поисковым индексом.
func (s *Storage) MarkArticleIndexed(ctx context.Context, id uuid.UUID, ts time.Time) error {
	const op = "storage.postgres.MarkArticleIndexed"

	cmdTag, err := s.db.Exec(ctx,
		`UPDATE articles SET indexed_at = $2 WHERE id = $1`, id, ts.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
