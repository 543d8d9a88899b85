package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
	"github.com/harisahmad000005/osint-news-platform/pkg/log"
)

// RegisterSource регистрирует источник.
//
// Ошибки:
// - ErrInvalidArgument — пустой feed_url или тип;
// - ErrSourceExists — feed_url уже зарегистрирован.
func (s *Service) RegisterSource(ctx context.Context, src models.Source) (uuid.UUID, error) {
	const op = "service.sources.RegisterSource"

	lg := log.From(ctx)

	src.FeedURL = strings.TrimSpace(src.FeedURL)
	if src.FeedURL == "" || src.Type == "" {
		return uuid.Nil, fmt.Errorf("%s: %w: feed_url and type are required", op, ErrInvalidArgument)
	}

	if src.TrustScore < 0 || src.TrustScore > 1 {
		return uuid.Nil, fmt.Errorf("%s: %w: trust_score must be in [0,1]", op, ErrInvalidArgument)
	}
	if src.TrustScore == 0 {
		src.TrustScore = 0.5
	}

	id, err := s.storage.SaveSource(ctx, &src)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("source_exists",
				slog.String("op", op),
				slog.String("feed_url", src.FeedURL),
			)

			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrSourceExists)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("source_registered",
		slog.String("op", op),
		slog.String("source_id", id.String()),
		slog.String("type", string(src.Type)),
	)

	return id, nil
}

// SourceByID возвращает источник по идентификатору.
func (s *Service) SourceByID(ctx context.Context, id uuid.UUID) (*models.Source, error) {
	const op = "service.sources.SourceByID"

	src, err := s.storage.SourceByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return src, nil
}

// ReactivateSource — ручной сброс breaker'а: единственный путь обратно
// из suspended. Успешный опрос сам по себе источник не включает.
func (s *Service) ReactivateSource(ctx context.Context, id uuid.UUID) error {
	const op = "service.sources.ReactivateSource"

	if err := s.storage.ReactivateSource(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("source_reactivated",
		slog.String("op", op),
		slog.String("source_id", id.String()),
	)

	return nil
}

// DeleteSource удаляет источник; protect-on-delete: пока существуют
// ссылающиеся статьи — ErrSourceInUse.
func (s *Service) DeleteSource(ctx context.Context, id uuid.UUID) error {
	const op = "service.sources.DeleteSource"

	if err := s.storage.DeleteSource(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			return fmt.Errorf("%s: %w", op, ErrSourceInUse)
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
