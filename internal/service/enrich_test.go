package service

// Тесты границы обогащения (internal/service/enrich.go).

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
)

// Happy-path: запись обогащения и освежение качества источника.
func TestService_ApplyEnrichment_OK(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	articleID, sourceID := uuid.New(), uuid.New()
	e := models.Enrichment{
		Language:       "en",
		SentimentLabel: models.SentimentNeutral,
		QualityScore:   0.7,
	}

	st.EXPECT().UpdateArticleEnrichment(gomock.Any(), articleID, e).Return(nil)
	st.EXPECT().RefreshSourceQuality(gomock.Any(), sourceID).Return(nil)

	require.NoError(t, s.ApplyEnrichment(context.Background(), articleID, sourceID, e))
}

// Валидация: quality_score вне [0,1] и неизвестная тональность.
func TestService_ApplyEnrichment_Validation(t *testing.T) {
	s, _, ctrl := newTestService(t)
	defer ctrl.Finish()

	err := s.ApplyEnrichment(context.Background(), uuid.New(), uuid.New(), models.Enrichment{
		QualityScore: 1.5,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = s.ApplyEnrichment(context.Background(), uuid.New(), uuid.New(), models.Enrichment{
		SentimentLabel: "MEH",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Маппинг: storage.ErrNotFound -> ErrNotFound.
func TestService_ApplyEnrichment_NotFound(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	articleID := uuid.New()
	st.EXPECT().UpdateArticleEnrichment(gomock.Any(), articleID, gomock.Any()).
		Return(storage.ErrNotFound)

	err := s.ApplyEnrichment(context.Background(), articleID, uuid.New(), models.Enrichment{})
	require.ErrorIs(t, err, ErrNotFound)
}

// MarkIndexed: нулевая метка заменяется текущим временем.
func TestService_MarkIndexed(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	articleID := uuid.New()
	st.EXPECT().MarkArticleIndexed(gomock.Any(), articleID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, ts time.Time) error {
			require.False(t, ts.IsZero())
			return nil
		})

	require.NoError(t, s.MarkIndexed(context.Background(), articleID, time.Time{}))
}
