package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/fingerprint"
	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
	"github.com/harisahmad000005/osint-news-platform/pkg/log"
)

// AdmitRequest — входные данные допуска одного материала.
type AdmitRequest struct {
	SourceID uuid.UUID
	// URL — сырой адрес материала; отпечаток считается от его
	// нормализованной формы (см. пакет fingerprint).
	URL     string
	Title   string
	Content string
	// Language — необязательная языковая подсказка.
	Language    string
	FetchedAt   time.Time
	PublishedAt *time.Time
}

// Admit — контентно-адресуемая дедупликация на входе.
//
// Схема insert-first: сразу вставляем статью и интерпретируем нарушение
// уникальности url_hash как исход Duplicate, а не как сбой — ровно один
// Created на отпечаток при любой конкуренции гарантирует ограничение БД,
// а не блокировки приложения. Кэш отпечатков (если подключён) — только
// fast path: его ошибки логируются и не влияют на результат.
func (s *Service) Admit(ctx context.Context, req AdmitRequest) (models.AdmitResult, error) {
	const op = "service.dedup.Admit"

	lg := log.From(ctx)

	normalized, hash, err := fingerprint.Fingerprint(req.URL)
	if err != nil {
		return models.AdmitResult{}, fmt.Errorf("%s: %w: %v", op, ErrInvalidArgument, err)
	}

	fetchedAt := req.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	// Fast path: отпечаток уже видели.
	if s.fingerprints != nil {
		if id, ok, cacheErr := s.fingerprints.Lookup(ctx, hash); cacheErr != nil {
			lg.Warn("fingerprint_cache_error",
				slog.String("op", op),
				slog.String("err", cacheErr.Error()),
			)
		} else if ok {
			return models.AdmitResult{Outcome: models.AdmitDuplicate, ArticleID: id, URLHash: hash}, nil
		}
	}

	article := &models.Article{
		SourceID:     req.SourceID,
		URL:          req.URL,
		URLHash:      hash,
		CanonicalURL: normalized,
		Title:        req.Title,
		Content:      req.Content,
		Language:     req.Language,
		FetchedAt:    fetchedAt.UTC(),
		PublishedAt:  req.PublishedAt,
	}

	id, err := s.storage.CreateArticle(ctx, article)
	if err == nil {
		s.rememberFingerprint(ctx, hash, id)

		return models.AdmitResult{Outcome: models.AdmitCreated, ArticleID: id, URLHash: hash}, nil
	}

	if !errors.Is(err, storage.ErrAlreadyExists) {
		return models.AdmitResult{}, fmt.Errorf("%s: %w", op, err)
	}

	// Проигранная гонка или повторный материал: перечитываем существующую.
	existing, lookupErr := s.storage.ArticleIDByFingerprint(ctx, hash)
	if lookupErr != nil {
		return models.AdmitResult{}, fmt.Errorf("%s: lookup existing: %w", op, lookupErr)
	}

	s.rememberFingerprint(ctx, hash, existing)

	return models.AdmitResult{Outcome: models.AdmitDuplicate, ArticleID: existing, URLHash: hash}, nil
}

// rememberFingerprint — best-effort запись в кэш.
func (s *Service) rememberFingerprint(ctx context.Context, hash string, id uuid.UUID) {
	if s.fingerprints == nil {
		return
	}

	if err := s.fingerprints.Remember(ctx, hash, id); err != nil {
		log.From(ctx).Warn("fingerprint_cache_error",
			slog.String("op", "service.dedup.rememberFingerprint"),
			slog.String("err", err.Error()),
		)
	}
}
