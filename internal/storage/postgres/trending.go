package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
)

// dayBounds возвращает границы последнего дня и начала скользящего окна (UTC).
func dayBounds(date time.Time, windowDays int) (dayStart, dayEnd, windowStart time.Time) {
	d := date.UTC()
	dayStart = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd = dayStart.Add(24 * time.Hour)
	windowStart = dayEnd.Add(-time.Duration(windowDays) * 24 * time.Hour)
	return dayStart, dayEnd, windowStart
}

// TrendingStats — агрегаты по сущностям, упомянутым в скользящем окне:
// упоминания/статьи последнего дня и упоминания за всё окно.
// Оконные границы считаются по fetched_at (каноническая временная ось).
func (s *Storage) TrendingStats(ctx context.Context, date time.Time, windowDays int) ([]models.EntityDayStats, error) {
	const op = "storage.postgres.TrendingStats"

	if windowDays <= 0 {
		windowDays = 7
	}

	dayStart, dayEnd, windowStart := dayBounds(date, windowDays)

	query := `
		SELECT ae.entity_id,
		       count(*) FILTER (WHERE a.fetched_at >= $1)              AS day_mentions,
		       count(DISTINCT a.id) FILTER (WHERE a.fetched_at >= $1)  AS day_articles,
		       count(*)                                                AS window_mentions
		FROM article_entities ae
		JOIN articles a ON a.id = ae.article_id
		WHERE a.fetched_at >= $2 AND a.fetched_at < $3
		GROUP BY ae.entity_id
	`

	rows, err := s.db.Query(ctx, query, dayStart, windowStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.EntityDayStats
	for rows.Next() {
		var st models.EntityDayStats
		if err := rows.Scan(&st.EntityID, &st.MentionCount, &st.ArticleCount, &st.WindowMentions); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// RanksForDate возвращает entity -> rank для среза за дату.
func (s *Storage) RanksForDate(ctx context.Context, date time.Time) (map[uuid.UUID]int32, error) {
	const op = "storage.postgres.RanksForDate"

	rows, err := s.db.Query(ctx,
		`SELECT entity_id, rank FROM trending_topics WHERE topic_date = $1`,
		date.UTC().Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	ranks := make(map[uuid.UUID]int32)
	for rows.Next() {
		var (
			id   uuid.UUID
			rank int32
		)
		if err := rows.Scan(&id, &rank); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		ranks[id] = rank
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ranks, nil
}

// SaveTrendingSnapshot записывает срез за дату одной транзакцией:
// либо записываются все строки, либо ни одной. Повторный срез за дату
// без overwrite — storage.ErrAlreadyExists; с overwrite старые строки
// удаляются в той же транзакции.
func (s *Storage) SaveTrendingSnapshot(ctx context.Context, date time.Time, topics []models.TrendingTopic, overwrite bool) error {
	const op = "storage.postgres.SaveTrendingSnapshot"

	day := date.UTC().Format("2006-01-02")

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM trending_topics WHERE topic_date = $1)`, day,
	).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if exists {
		if !overwrite {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM trending_topics WHERE topic_date = $1`, day,
		); err != nil {
			return fmt.Errorf("%s: delete: %w", op, err)
		}
	}

	batch := &pgx.Batch{}
	for _, t := range topics {
		batch.Queue(`
			INSERT INTO trending_topics (entity_id, topic_date,
				mention_count, article_count, velocity, rank, previous_rank)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, t.EntityID, day, t.MentionCount, t.ArticleCount, t.Velocity, t.Rank, t.PreviousRank)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isUniqueViolation(err) {
				return fmt.Errorf("%s: batch item %d: %w", op, i, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("%s: batch item %d: %w", op, i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("%s: close batch: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// TrendingByDate возвращает срез за дату по возрастанию ранга.
func (s *Storage) TrendingByDate(ctx context.Context, date time.Time, limit int32) ([]models.TrendingTopic, error) {
	const op = "storage.postgres.TrendingByDate"

	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, entity_id, topic_date, mention_count, article_count,
		       velocity, rank, previous_rank, created_at
		FROM trending_topics
		WHERE topic_date = $1
		ORDER BY rank ASC
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, date.UTC().Format("2006-01-02"), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.TrendingTopic
	for rows.Next() {
		var t models.TrendingTopic
		if err := rows.Scan(
			&t.ID,
			&t.EntityID,
			&t.Date,
			&t.MentionCount,
			&t.ArticleCount,
			&t.Velocity,
			&t.Rank,
			&t.PreviousRank,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
