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

const clusterColumns = `id, cluster_label, summary, article_count,
	first_seen_at, last_seen_at, is_active, is_trending,
	dominant_entities, languages, created_at, updated_at`

func scanCluster(row pgx.Row) (*models.Cluster, error) {
	var c models.Cluster

	err := row.Scan(
		&c.ID,
		&c.Label,
		&c.Summary,
		&c.ArticleCount,
		&c.FirstSeenAt,
		&c.LastSeenAt,
		&c.IsActive,
		&c.IsTrending,
		&c.DominantEntities,
		&c.Languages,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// CreateCluster создаёт пустой активный кластер. Нарушение уникальности
// активной метки (uq_clusters_active_label) — проигранная гонка ленивого
// создания: возвращаем storage.ErrAlreadyExists, вызывающий перечитывает
// существующий кластер.
func (s *Storage) CreateCluster(ctx context.Context, label int64, summary string) (*models.Cluster, error) {
	const op = "storage.postgres.CreateCluster"

	query := `
		INSERT INTO clusters (cluster_label, summary)
		VALUES ($1, $2)
		RETURNING ` + clusterColumns

	c, err := scanCluster(s.db.QueryRow(ctx, query, label, summary))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// ActiveClusterByLabel возвращает активный кластер по метке.
// Уникальный индекс по активной метке гарантирует не больше одного кандидата.
func (s *Storage) ActiveClusterByLabel(ctx context.Context, label int64) (*models.Cluster, error) {
	const op = "storage.postgres.ActiveClusterByLabel"

	query := `
		SELECT ` + clusterColumns + `
		FROM clusters
		WHERE cluster_label = $1 AND is_active = TRUE
	`

	c, err := scanCluster(s.db.QueryRow(ctx, query, label))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// NextClusterLabel выдаёт следующую свободную метку.
func (s *Storage) NextClusterLabel(ctx context.Context) (int64, error) {
	const op = "storage.postgres.NextClusterLabel"

	var next int64
	err := s.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(cluster_label), 0) + 1 FROM clusters`,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return next, nil
}

// RecomputeClusterStats пересчитывает статистику кластера в одной транзакции.
//
// Строка кластера берётся под SELECT ... FOR UPDATE: пересчёты одного кластера
// сериализуются (единственный писатель статистики), пересчёты разных кластеров
// идут параллельно. is_trending здесь не трогаем — его пишет только ранкер.
func (s *Storage) RecomputeClusterStats(ctx context.Context, id uuid.UUID, topN int) (*models.Cluster, error) {
	const op = "storage.postgres.RecomputeClusterStats"

	if topN <= 0 {
		topN = 5
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback(ctx)

	var clusterID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id FROM clusters WHERE id = $1 FOR UPDATE`, id,
	).Scan(&clusterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: lock: %w", op, err)
	}

	var (
		articleCount           int32
		firstSeenAt, lastSeenAt *time.Time
	)
	err = tx.QueryRow(ctx, `
		SELECT count(*), min(fetched_at), max(fetched_at)
		FROM articles
		WHERE cluster_id = $1
	`, id).Scan(&articleCount, &firstSeenAt, &lastSeenAt)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}

	// Топ-N доминирующих сущностей; тай-брейк по id сущности — для детерминизма.
	rows, err := tx.Query(ctx, `
		SELECT e.text, e.entity_type, count(*) AS cnt
		FROM article_entities ae
		JOIN articles a ON a.id = ae.article_id
		JOIN entities e ON e.id = ae.entity_id
		WHERE a.cluster_id = $1
		GROUP BY e.id, e.text, e.entity_type
		ORDER BY cnt DESC, e.id ASC
		LIMIT $2
	`, id, topN)
	if err != nil {
		return nil, fmt.Errorf("%s: top entities: %w", op, err)
	}

	dominant := []models.DominantEntity{}
	for rows.Next() {
		var d models.DominantEntity
		if err := rows.Scan(&d.Text, &d.Type, &d.Count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: scan top entity: %w", op, err)
		}

		dominant = append(dominant, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: top entities rows: %w", op, err)
	}

	langRows, err := tx.Query(ctx, `
		SELECT DISTINCT language
		FROM articles
		WHERE cluster_id = $1 AND language <> ''
		ORDER BY language
	`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: languages: %w", op, err)
	}

	languages := []string{}
	for langRows.Next() {
		var lang string
		if err := langRows.Scan(&lang); err != nil {
			langRows.Close()
			return nil, fmt.Errorf("%s: scan language: %w", op, err)
		}

		languages = append(languages, lang)
	}
	langRows.Close()
	if err := langRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: language rows: %w", op, err)
	}

	updated, err := scanCluster(tx.QueryRow(ctx, `
		UPDATE clusters
		SET article_count = $2,
		    first_seen_at = $3,
		    last_seen_at = $4,
		    dominant_entities = $5,
		    languages = $6,
		    updated_at = now()
		WHERE id = $1
		RETURNING `+clusterColumns,
		id, articleCount, firstSeenAt, lastSeenAt, dominant, languages,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return updated, nil
}

// RefreshTrendingClusters пересчитывает is_trending по множеству топ-сущностей
// свежего среза трендов. Единственный путь записи is_trending.
func (s *Storage) RefreshTrendingClusters(ctx context.Context, entityIDs []uuid.UUID) error {
	const op = "storage.postgres.RefreshTrendingClusters"

	query := `
		UPDATE clusters
		SET is_trending = (id IN (
		        SELECT DISTINCT a.cluster_id
		        FROM articles a
		        JOIN article_entities ae ON ae.article_id = a.id
		        WHERE ae.entity_id = ANY($1) AND a.cluster_id IS NOT NULL
		    )),
		    updated_at = now()
		WHERE is_active = TRUE
	`

	if _, err := s.db.Exec(ctx, query, entityIDs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}