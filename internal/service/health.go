package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
	"github.com/harisahmad000005/osint-news-platform/pkg/log"
)

// Монитор здоровья источников: два перехода поверх одной строки Source.
// Ретраев здесь нет — политика повторов принадлежит внешнему поллеру;
// исходы опроса записываются как данные, а не пробрасываются ошибками.

// MarkPollSuccess фиксирует успешный опрос: сброс серии неудач, очистка
// последней ошибки. Suspended-источник успех НЕ реактивирует.
func (s *Service) MarkPollSuccess(ctx context.Context, sourceID uuid.UUID) (*models.Source, error) {
	const op = "service.health.MarkPollSuccess"

	src, err := s.storage.MarkSourceSuccess(ctx, sourceID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return src, nil
}

// MarkPollFailure фиксирует неудачный опрос: инкремент серии неудач,
// усечённый текст ошибки и, при достижении порога, отключение источника
// (circuit breaker). Переход монотонный: обратно — только ручная
// реактивация.
func (s *Service) MarkPollFailure(ctx context.Context, sourceID uuid.UUID, errMsg string) (*models.Source, error) {
	const op = "service.health.MarkPollFailure"

	lg := log.From(ctx)

	src, err := s.storage.MarkSourceFailure(ctx, sourceID,
		truncateError(errMsg, s.cfg.Health.ErrorMaxLen),
		time.Now().UTC(),
		s.cfg.Health.FailureThreshold,
	)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !src.Enabled {
		lg.Warn("source_suspended",
			slog.String("op", op),
			slog.String("source_id", sourceID.String()),
			slog.Int("consecutive_failures", int(src.ConsecutiveFailures)),
		)
	}

	return src, nil
}

// truncateError усекает текст ошибки до лимита в рунах (не байтах),
// чтобы не разрезать многобайтовые символы.
func truncateError(msg string, maxLen int) string {
	if maxLen <= 0 {
		return msg
	}

	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}

	return string(runes[:maxLen])
}
