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

// CreateJob создаёт запись попытки скрейпа. Повторный task_id —
// storage.ErrAlreadyExists (идемпотентность ретраев планировщика).
func (s *Storage) CreateJob(ctx context.Context, job *models.ScrapeJob) error {
	const op = "storage.postgres.CreateJob"

	if job.StartedAt.IsZero() {
		job.StartedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO scrape_jobs (source_id, task_id, status, started_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query,
		job.SourceID,
		job.TaskID,
		job.Status,
		job.StartedAt.UTC(),
	).Scan(&job.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CompleteJob терминально завершает попытку ровно один раз.
// UPDATE ограничен completed_at IS NULL: повторное завершение не находит
// строку, после чего отличаем ErrAlreadyCompleted от ErrNotFound.
func (s *Storage) CompleteJob(ctx context.Context, id uuid.UUID, status models.JobStatus, counts models.JobCounts, errMsg string, completedAt time.Time) (*models.ScrapeJob, error) {
	const op = "storage.postgres.CompleteJob"

	query := `
		UPDATE scrape_jobs
		SET status = $2,
		    articles_found = $3,
		    articles_created = $4,
		    articles_duplicate = $5,
		    completed_at = $6,
		    duration_seconds = EXTRACT(EPOCH FROM ($6::timestamptz - started_at)),
		    error_message = $7
		WHERE id = $1 AND completed_at IS NULL
		RETURNING id, source_id, task_id, status,
		          articles_found, articles_created, articles_duplicate,
		          started_at, completed_at, duration_seconds, error_message
	`

	var job models.ScrapeJob
	err := s.db.QueryRow(ctx, query,
		id,
		status,
		counts.Found,
		counts.Created,
		counts.Duplicate,
		completedAt.UTC(),
		errMsg,
	).Scan(
		&job.ID,
		&job.SourceID,
		&job.TaskID,
		&job.Status,
		&job.ArticlesFound,
		&job.ArticlesCreated,
		&job.ArticlesDuplicate,
		&job.StartedAt,
		&job.CompletedAt,
		&job.DurationSeconds,
		&job.ErrorMessage,
	)

	if err == nil {
		return &job, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Строка не обновлена: либо уже завершена, либо её нет.
	var exists bool
	if selErr := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM scrape_jobs WHERE id = $1)`, id,
	).Scan(&exists); selErr != nil {
		return nil, fmt.Errorf("%s: %w", op, selErr)
	}

	if exists {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyCompleted)
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}
