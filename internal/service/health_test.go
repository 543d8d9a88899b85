package service

// Тесты монитора здоровья источников (internal/service/health.go).
//
// Проверяем:
// - передачу порога отключения в хранилище;
// - усечение текста ошибки до лимита в рунах;
// - успех не меняет Enabled (suspended остаётся suspended);
// - маппинг storage.ErrNotFound -> ErrNotFound.

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
)

// Порог из конфигурации передаётся в переход хранилища как есть.
func TestService_MarkPollFailure_PassesThreshold(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().MarkSourceFailure(gomock.Any(), id, "boom", gomock.Any(), int32(5)).
		Return(&models.Source{ID: id, Enabled: true, ConsecutiveFailures: 1}, nil)

	src, err := s.MarkPollFailure(context.Background(), id, "boom")
	require.NoError(t, err)
	require.True(t, src.Enabled)
	require.EqualValues(t, 1, src.ConsecutiveFailures)
}

// Текст ошибки усекается до 500 рун; многобайтовые символы не режутся.
func TestService_MarkPollFailure_TruncatesError(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	long := strings.Repeat("ё", 600)

	id := uuid.New()
	st.EXPECT().MarkSourceFailure(gomock.Any(), id, gomock.Any(), gomock.Any(), int32(5)).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, errMsg string, _ time.Time, _ int32) (*models.Source, error) {
			require.Equal(t, 500, len([]rune(errMsg)))
			require.Equal(t, strings.Repeat("ё", 500), errMsg)
			return &models.Source{ID: id, Enabled: true}, nil
		})

	_, err := s.MarkPollFailure(context.Background(), id, long)
	require.NoError(t, err)
}

// Достижение порога возвращает отключённый источник.
func TestService_MarkPollFailure_Suspended(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().MarkSourceFailure(gomock.Any(), id, gomock.Any(), gomock.Any(), int32(5)).
		Return(&models.Source{ID: id, Enabled: false, ConsecutiveFailures: 5}, nil)

	src, err := s.MarkPollFailure(context.Background(), id, "boom")
	require.NoError(t, err)
	require.False(t, src.Enabled)
	require.EqualValues(t, 5, src.ConsecutiveFailures)
}

// Успех сбрасывает серию, но не трогает Enabled: suspended остаётся suspended.
func TestService_MarkPollSuccess_DoesNotReactivate(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().MarkSourceSuccess(gomock.Any(), id, gomock.Any()).
		Return(&models.Source{ID: id, Enabled: false, ConsecutiveFailures: 0}, nil)

	src, err := s.MarkPollSuccess(context.Background(), id)
	require.NoError(t, err)
	require.False(t, src.Enabled)
	require.EqualValues(t, 0, src.ConsecutiveFailures)
}

// Маппинг: storage.ErrNotFound -> ErrNotFound.
func TestService_MarkPollSuccess_NotFound(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().MarkSourceSuccess(gomock.Any(), id, gomock.Any()).
		Return(nil, storage.ErrNotFound)

	_, err := s.MarkPollSuccess(context.Background(), id)
	require.ErrorIs(t, err, ErrNotFound)
}

// truncateError: граничные случаи.
func Test_truncateError(t *testing.T) {
	t.Parallel()

	require.Equal(t, "abc", truncateError("abc", 500))
	require.Equal(t, "ab", truncateError("abc", 2))
	require.Equal(t, "abc", truncateError("abc", 0))
	require.Equal(t, "", truncateError("", 10))
}
