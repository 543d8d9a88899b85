package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/pkg/log"
)

// LinkEntities привязывает извлечения внешней NLP-модели к статье.
//
// Для каждого извлечения: case-fold нормализация текста, ленивое создание
// Entity по (type, normalized_text) через upsert в хранилище, создание связи
// (article, entity, start_offset). Повторная привязка того же ключа —
// идемпотентный no-op: mention_count растёт на 1 на уникальную связь,
// а не на вызов.
//
// Извлечения с пустым текстом или типом пропускаются с предупреждением,
// не прерывая остальных. Вся партия валидируется до первой записи:
// невалидное извлечение отклоняет вызов целиком, без частичной привязки.
func (s *Service) LinkEntities(ctx context.Context, articleID uuid.UUID, extractions []models.Extraction) error {
	const op = "service.entities.LinkEntities"

	lg := log.From(ctx)
	now := time.Now().UTC()

	for _, ex := range extractions {
		if strings.TrimSpace(ex.Text) == "" || ex.Type == "" {
			continue
		}

		if ex.Confidence < 0 || ex.Confidence > 1 {
			return fmt.Errorf("%s: %w: confidence must be in [0,1]", op, ErrInvalidArgument)
		}
	}

	var linked, skipped int
	for _, ex := range extractions {
		text := strings.TrimSpace(ex.Text)
		if text == "" || ex.Type == "" {
			lg.Warn("extraction_skipped",
				slog.String("op", op),
				slog.String("article_id", articleID.String()),
				slog.String("reason", "empty text or type"),
			)
			continue
		}

		ex.Text = text
		normalized := normalizeEntityText(text)

		created, err := s.storage.LinkMention(ctx, articleID, ex, normalized, now)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if created {
			linked++
		} else {
			skipped++
		}
	}

	lg.Debug("entities_linked",
		slog.String("op", op),
		slog.String("article_id", articleID.String()),
		slog.Int("linked", linked),
		slog.Int("skipped", skipped),
	)

	return nil
}

// normalizeEntityText — case-fold нормализация для ключа сущности.
func normalizeEntityText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
