package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
)

// Журнал попыток скрейпа. Компонент — чистый леджер: завершение попытки
// НЕ дёргает монитор здоровья, это обязанность вызывающего (поллера).

// BeginJob создаёт запись попытки со статусом running.
//
// Ошибки:
// - ErrInvalidArgument — пустой taskID;
// - ErrDuplicateJob — внешний task_id уже использован (ретрай с тем же id
//   должен быть обнаружен выше, а не порождать вторую запись).
func (s *Service) BeginJob(ctx context.Context, sourceID uuid.UUID, taskID string) (*models.ScrapeJob, error) {
	const op = "service.jobs.BeginJob"

	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, fmt.Errorf("%s: %w: task id is required", op, ErrInvalidArgument)
	}

	job := &models.ScrapeJob{
		SourceID:  sourceID,
		TaskID:    taskID,
		Status:    models.JobRunning,
		StartedAt: time.Now().UTC(),
	}

	if err := s.storage.CreateJob(ctx, job); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrDuplicateJob)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return job, nil
}

// CompleteJob терминально завершает попытку ровно один раз: статус,
// счётчики, completed_at и duration_seconds.
//
// Ошибки:
// - ErrInvalidArgument — нетерминальный статус;
// - ErrJobCompleted — повторное завершение (ошибка порядка вызовов);
// - ErrNotFound — попытки не существует.
func (s *Service) CompleteJob(ctx context.Context, jobID uuid.UUID, status models.JobStatus, counts models.JobCounts, errMsg string) (*models.ScrapeJob, error) {
	const op = "service.jobs.CompleteJob"

	if !status.Terminal() {
		return nil, fmt.Errorf("%s: %w: status %q is not terminal", op, ErrInvalidArgument, status)
	}

	job, err := s.storage.CompleteJob(ctx, jobID, status, counts,
		truncateError(errMsg, s.cfg.Health.ErrorMaxLen),
		time.Now().UTC(),
	)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyCompleted):
			return nil, fmt.Errorf("%s: %w", op, ErrJobCompleted)
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return job, nil
}
