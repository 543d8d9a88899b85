package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
)

// ApplyEnrichment записывает на статью результаты внешнего анализа
// (язык, тональность, качество, спам) и освежает среднее качество
// источника. Сами модели — внешняя граница, ядро значения не считает.
func (s *Service) ApplyEnrichment(ctx context.Context, articleID uuid.UUID, sourceID uuid.UUID, e models.Enrichment) error {
	const op = "service.enrich.ApplyEnrichment"

	if e.QualityScore < 0 || e.QualityScore > 1 {
		return fmt.Errorf("%s: %w: quality_score must be in [0,1]", op, ErrInvalidArgument)
	}

	switch e.SentimentLabel {
	case "", models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		return fmt.Errorf("%s: %w: unknown sentiment label %q", op, ErrInvalidArgument, e.SentimentLabel)
	}

	if err := s.storage.UpdateArticleEnrichment(ctx, articleID, e); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.RefreshSourceQuality(ctx, sourceID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MarkIndexed — write-back внешнего поискового индекса: фиксирует момент
// синхронизации статьи.
func (s *Service) MarkIndexed(ctx context.Context, articleID uuid.UUID, ts time.Time) error {
	const op = "service.enrich.MarkIndexed"

	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	if err := s.storage.MarkArticleIndexed(ctx, articleID, ts); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
