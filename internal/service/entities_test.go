package service

// Тесты привязки сущностей (internal/service/entities.go).
//
// Проверяем:
// - нормализацию текста перед upsert'ом;
// - пропуск извлечений с пустым текстом/типом;
// - валидацию confidence;
// - идемпотентность: created=false не считается ошибкой.

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
)

// Нормализованный текст уходит в хранилище: lower-case, схлопнутые пробелы.
func TestService_LinkEntities_Normalization(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	articleID := uuid.New()

	st.EXPECT().LinkMention(gomock.Any(), articleID, gomock.Any(), "john smith", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, ex models.Extraction, _ string, _ time.Time) (bool, error) {
			// Оригинальное написание сохраняется (с trim).
			require.Equal(t, "John  Smith", ex.Text)
			return true, nil
		})

	err := s.LinkEntities(context.Background(), articleID, []models.Extraction{
		{Type: models.EntityPerson, Text: "  John  Smith ", Confidence: 0.9},
	})
	require.NoError(t, err)
}

// Извлечения с пустым текстом или типом пропускаются, остальные обрабатываются.
func TestService_LinkEntities_SkipsEmpty(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	articleID := uuid.New()
	st.EXPECT().LinkMention(gomock.Any(), articleID, gomock.Any(), "acme", gomock.Any()).
		Return(true, nil)

	err := s.LinkEntities(context.Background(), articleID, []models.Extraction{
		{Type: models.EntityPerson, Text: "   "},
		{Type: "", Text: "ghost"},
		{Type: models.EntityOrg, Text: "Acme", Confidence: 0.8},
	})
	require.NoError(t, err)
}

// Confidence вне [0,1] -> ErrInvalidArgument.
func TestService_LinkEntities_BadConfidence(t *testing.T) {
	s, _, ctrl := newTestService(t)
	defer ctrl.Finish()

	err := s.LinkEntities(context.Background(), uuid.New(), []models.Extraction{
		{Type: models.EntityPerson, Text: "John", Confidence: 1.2},
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Невалидное извлечение в хвосте партии отклоняет вызов целиком:
// ни одной привязки до валидации всей партии (мок без ожиданий упадёт
// на любом LinkMention).
func TestService_LinkEntities_InvalidBatchNoPartialWrites(t *testing.T) {
	s, _, ctrl := newTestService(t)
	defer ctrl.Finish()

	err := s.LinkEntities(context.Background(), uuid.New(), []models.Extraction{
		{Type: models.EntityOrg, Text: "Acme", Confidence: 0.8},
		{Type: models.EntityPerson, Text: "John", Confidence: 1.2},
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Повторная привязка того же ключа идемпотентна: created=false — не ошибка.
func TestService_LinkEntities_IdempotentRelink(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	articleID := uuid.New()
	st.EXPECT().LinkMention(gomock.Any(), articleID, gomock.Any(), "acme", gomock.Any()).
		Return(false, nil)

	err := s.LinkEntities(context.Background(), articleID, []models.Extraction{
		{Type: models.EntityOrg, Text: "Acme", Confidence: 0.8, StartOffset: 10, EndOffset: 14},
	})
	require.NoError(t, err)
}

// normalizeEntityText: case-fold и схлопывание пробелов.
func Test_normalizeEntityText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "john smith", normalizeEntityText("  John   SMITH "))
	require.Equal(t, "acme", normalizeEntityText("Acme"))
	require.Equal(t, "", normalizeEntityText("   "))
}
