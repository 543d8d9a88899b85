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

// sourceColumns — единый список колонок для всех выборок источника.
const sourceColumns = `id, name, source_type, feed_url, base_url,
	enabled, last_polled_at, last_success_at, consecutive_failures, last_error,
	trust_score, avg_quality_score,
	discovered_at, discovery_keyword, auto_discovered,
	poll_interval_minutes, parser_config, created_at, updated_at`

// scanSource читает строку источника в доменную модель.
func scanSource(row pgx.Row) (*models.Source, error) {
	var (
		src         models.Source
		intervalMin int32
	)

	err := row.Scan(
		&src.ID,
		&src.Name,
		&src.Type,
		&src.FeedURL,
		&src.BaseURL,
		&src.Enabled,
		&src.LastPolledAt,
		&src.LastSuccessAt,
		&src.ConsecutiveFailures,
		&src.LastError,
		&src.TrustScore,
		&src.AvgQualityScore,
		&src.DiscoveredAt,
		&src.DiscoveryKeyword,
		&src.AutoDiscovered,
		&intervalMin,
		&src.ParserConfig,
		&src.CreatedAt,
		&src.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	src.PollInterval = time.Duration(intervalMin) * time.Minute

	return &src, nil
}

// SaveSource регистрирует источник. Возвращает storage.ErrAlreadyExists
// при конфликте по feed_url.
func (s *Storage) SaveSource(ctx context.Context, src *models.Source) (uuid.UUID, error) {
	const op = "storage.postgres.SaveSource"

	intervalMin := int32(src.PollInterval / time.Minute)
	if intervalMin <= 0 {
		intervalMin = 30
	}

	parserCfg := src.ParserConfig
	if parserCfg == nil {
		parserCfg = map[string]any{}
	}

	query := `
		INSERT INTO sources (name, source_type, feed_url, base_url,
			trust_score, discovered_at, discovery_keyword, auto_discovered,
			poll_interval_minutes, parser_config)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id uuid.UUID
	err := s.db.QueryRow(ctx, query,
		src.Name,
		src.Type,
		src.FeedURL,
		src.BaseURL,
		src.TrustScore,
		src.DiscoveredAt,
		src.DiscoveryKeyword,
		src.AutoDiscovered,
		intervalMin,
		parserCfg,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// SourceByID возвращает источник по идентификатору.
func (s *Storage) SourceByID(ctx context.Context, id uuid.UUID) (*models.Source, error) {
	const op = "storage.postgres.SourceByID"

	src, err := scanSource(s.db.QueryRow(ctx,
		`SELECT `+sourceColumns+` FROM sources WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return src, nil
}

// DueSources возвращает включённые источники, которым пора на опрос.
// Сортировка: давно не опрошенные первыми, никогда не опрошенные — в начале.
func (s *Storage) DueSources(ctx context.Context, now time.Time) ([]models.Source, error) {
	const op = "storage.postgres.DueSources"

	query := `
		SELECT ` + sourceColumns + `
		FROM sources
		WHERE enabled = TRUE
		  AND (last_polled_at IS NULL
		       OR last_polled_at + make_interval(mins => poll_interval_minutes) <= $1)
		ORDER BY last_polled_at ASC NULLS FIRST
	`

	rows, err := s.db.Query(ctx, query, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Source
	for rows.Next() {
		src, scanErr := scanSource(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: %w", op, scanErr)
		}

		result = append(result, *src)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// MarkSourceSuccess фиксирует успешный опрос одной атомарной записью строки.
// Enabled намеренно не трогаем: успех не реактивирует suspended-источник.
func (s *Storage) MarkSourceSuccess(ctx context.Context, id uuid.UUID, now time.Time) (*models.Source, error) {
	const op = "storage.postgres.MarkSourceSuccess"

	query := `
		UPDATE sources
		SET last_polled_at = $2,
		    last_success_at = $2,
		    consecutive_failures = 0,
		    last_error = '',
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + sourceColumns

	src, err := scanSource(s.db.QueryRow(ctx, query, id, now.UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return src, nil
}

// MarkSourceFailure фиксирует неудачный опрос: инкремент серии и breaker.
// Инкремент и проверка порога выполняются в одном UPDATE — конкурентные
// завершения опросов сериализуются блокировкой строки без потери обновлений.
func (s *Storage) MarkSourceFailure(ctx context.Context, id uuid.UUID, errMsg string, now time.Time, threshold int32) (*models.Source, error) {
	const op = "storage.postgres.MarkSourceFailure"

	query := `
		UPDATE sources
		SET last_polled_at = $2,
		    consecutive_failures = consecutive_failures + 1,
		    last_error = $3,
		    enabled = CASE
		        WHEN consecutive_failures + 1 >= $4 THEN FALSE
		        ELSE enabled
		    END,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + sourceColumns

	src, err := scanSource(s.db.QueryRow(ctx, query, id, now.UTC(), errMsg, threshold))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return src, nil
}

// ReactivateSource — ручной сброс breaker'а.
func (s *Storage) ReactivateSource(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.ReactivateSource"

	query := `
		UPDATE sources
		SET enabled = TRUE,
		    consecutive_failures = 0,
		    last_error = '',
		    updated_at = now()
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteSource удаляет источник. FK RESTRICT со стороны статей превращается
// в storage.ErrConflict (protect-on-delete).
func (s *Storage) DeleteSource(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteSource"

	cmdTag, err := s.db.Exec(ctx, `DELETE FROM sources WHERE id = $1`, id)
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

// RefreshSourceQuality пересчитывает среднее качество по не-спам статьям.
func (s *Storage) RefreshSourceQuality(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.RefreshSourceQuality"

	query := `
		UPDATE sources
		SET avg_quality_score = (
		        SELECT avg(quality_score)
		        FROM articles
		        WHERE source_id = $1 AND is_spam = FALSE
		    ),
		    updated_at = now()
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
