package service

// Тесты журнала попыток скрейпа (internal/service/jobs.go).
//
// Проверяем:
// - валидацию taskID и терминальности статуса;
// - маппинг ошибок storage -> service (AlreadyExists -> DuplicateJob,
//   AlreadyCompleted -> JobCompleted, NotFound -> NotFound);
// - happy-path обоих методов.

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
)

// Валидация: пустой taskID -> ErrInvalidArgument.
func TestService_BeginJob_EmptyTaskID(t *testing.T) {
	s, _, ctrl := newTestService(t)
	defer ctrl.Finish()

	_, err := s.BeginJob(context.Background(), uuid.New(), "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Happy-path: запись создаётся в статусе running.
func TestService_BeginJob_OK(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	srcID := uuid.New()
	st.EXPECT().CreateJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job *models.ScrapeJob) error {
			require.Equal(t, srcID, job.SourceID)
			require.Equal(t, "task-1", job.TaskID)
			require.Equal(t, models.JobRunning, job.Status)
			require.False(t, job.StartedAt.IsZero())
			return nil
		})

	job, err := s.BeginJob(context.Background(), srcID, "task-1")
	require.NoError(t, err)
	require.Equal(t, models.JobRunning, job.Status)
}

// Повторный task_id -> ErrDuplicateJob.
func TestService_BeginJob_DuplicateTaskID(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	st.EXPECT().CreateJob(gomock.Any(), gomock.Any()).
		Return(storage.ErrAlreadyExists)

	_, err := s.BeginJob(context.Background(), uuid.New(), "task-1")
	require.ErrorIs(t, err, ErrDuplicateJob)
}

// Нетерминальный статус завершения -> ErrInvalidArgument, без похода в БД.
func TestService_CompleteJob_NonTerminalStatus(t *testing.T) {
	s, _, ctrl := newTestService(t)
	defer ctrl.Finish()

	_, err := s.CompleteJob(context.Background(), uuid.New(), models.JobRunning, models.JobCounts{}, "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CompleteJob(context.Background(), uuid.New(), models.JobPending, models.JobCounts{}, "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Повторное завершение -> ErrJobCompleted.
func TestService_CompleteJob_AlreadyCompleted(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().CompleteJob(gomock.Any(), id, models.JobSuccess, gomock.Any(), "", gomock.Any()).
		Return(nil, storage.ErrAlreadyCompleted)

	_, err := s.CompleteJob(context.Background(), id, models.JobSuccess, models.JobCounts{}, "")
	require.ErrorIs(t, err, ErrJobCompleted)
}

// Несуществующая попытка -> ErrNotFound.
func TestService_CompleteJob_NotFound(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().CompleteJob(gomock.Any(), id, models.JobFailed, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrNotFound)

	_, err := s.CompleteJob(context.Background(), id, models.JobFailed, models.JobCounts{}, "boom")
	require.ErrorIs(t, err, ErrNotFound)
}

// Happy-path: счётчики и статус уходят в хранилище, timeout — терминальный.
func TestService_CompleteJob_Timeout(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	id := uuid.New()
	counts := models.JobCounts{Found: 10, Created: 7, Duplicate: 3}
	want := &models.ScrapeJob{ID: id, Status: models.JobTimeout}

	st.EXPECT().CompleteJob(gomock.Any(), id, models.JobTimeout, counts, "deadline exceeded", gomock.Any()).
		Return(want, nil)

	job, err := s.CompleteJob(context.Background(), id, models.JobTimeout, counts, "deadline exceeded")
	require.NoError(t, err)
	require.Equal(t, want, job)
}
