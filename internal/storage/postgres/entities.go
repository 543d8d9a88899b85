package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
)

// LinkMention — атомарная (одна транзакция) привязка упоминания:
//
//  1. upsert Entity по (entity_type, normalized_text) — гонка первых
//     упоминаний разрешается ограничением уникальности, строка ровно одна;
//  2. вставка связи (article, entity, start_offset) c ON CONFLICT DO NOTHING —
//     повторная привязка «молча» пропускается;
//  3. mention_count и last_seen_at инкрементируются ТОЛЬКО если связь
//     реально создана, поэтому счётчик растёт на 1 на уникальную связь,
//     а не на вызов.
func (s *Storage) LinkMention(ctx context.Context, articleID uuid.UUID, ex models.Extraction, normalizedText string, seenAt time.Time) (bool, error) {
	const op = "storage.postgres.LinkMention"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback(ctx)

	// DO UPDATE вместо DO NOTHING, чтобы RETURNING отдавал id в обоих случаях.
	const upsertEntity = `
		INSERT INTO entities (entity_type, text, normalized_text, first_seen_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (entity_type, normalized_text) DO UPDATE
		SET last_seen_at = GREATEST(entities.last_seen_at, EXCLUDED.last_seen_at)
		RETURNING id
	`

	var entityID uuid.UUID
	if err := tx.QueryRow(ctx, upsertEntity,
		ex.Type,
		ex.Text,
		normalizedText,
		seenAt.UTC(),
	).Scan(&entityID); err != nil {
		return false, fmt.Errorf("%s: upsert entity: %w", op, err)
	}

	extractor := ex.Extractor
	if extractor == "" {
		extractor = "spacy"
	}

	const insertLink = `
		INSERT INTO article_entities (article_id, entity_id, confidence,
			start_offset, end_offset, extractor_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (article_id, entity_id, start_offset) DO NOTHING
	`

	cmdTag, err := tx.Exec(ctx, insertLink,
		articleID,
		entityID,
		ex.Confidence,
		ex.StartOffset,
		ex.EndOffset,
		extractor,
	)
	if err != nil {
		return false, fmt.Errorf("%s: insert link: %w", op, err)
	}

	created := cmdTag.RowsAffected() > 0
	if created {
		if _, err := tx.Exec(ctx,
			`UPDATE entities SET mention_count = mention_count + 1 WHERE id = $1`,
			entityID,
		); err != nil {
			return false, fmt.Errorf("%s: bump mention_count: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("%s: commit: %w", op, err)
	}

	return created, nil
}
