package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
	"github.com/harisahmad000005/osint-news-platform/pkg/log"
)

// SnapshotTrending строит дневной срез трендов за календарную дату (UTC).
//
// Для каждой сущности, упомянутой в скользящем окне:
//
//	velocity = упоминания_последнего_дня / max(1, упоминания_окна)
//
// Ранжирование детерминировано: velocity по убыванию, затем mention_count
// по убыванию, затем id сущности по возрастанию. previous_rank берётся из
// среза предыдущего дня (nil, если его не было). Срез пишется атомарно;
// повторный запуск за ту же дату без overwrite — ErrSnapshotExists.
//
// После записи среза обновляются флаги is_trending активных кластеров по
// верхним TrendingRanks сущностям — единственный путь записи is_trending.
func (s *Service) SnapshotTrending(ctx context.Context, date time.Time, overwrite bool) error {
	const op = "service.trending.SnapshotTrending"

	lg := log.From(ctx)

	day := date.UTC().Truncate(24 * time.Hour)

	stats, err := s.storage.TrendingStats(ctx, day, s.cfg.Trending.WindowDays)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	prevRanks, err := s.storage.RanksForDate(ctx, day.AddDate(0, 0, -1))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	topics := rankTopics(day, stats, prevRanks)

	if err := s.storage.SaveTrendingSnapshot(ctx, day, topics, overwrite); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("snapshot_exists",
				slog.String("op", op),
				slog.Time("date", day),
			)

			return fmt.Errorf("%s: %w", op, ErrSnapshotExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	// Верхние ранги среза помечают содержащие их кластеры трендовыми.
	topCount := s.cfg.Trending.TrendingRanks
	if topCount > len(topics) {
		topCount = len(topics)
	}

	topEntities := make([]uuid.UUID, 0, topCount)
	for _, t := range topics[:topCount] {
		topEntities = append(topEntities, t.EntityID)
	}

	if err := s.storage.RefreshTrendingClusters(ctx, topEntities); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("snapshot_written",
		slog.String("op", op),
		slog.Time("date", day),
		slog.Int("entities", len(topics)),
	)

	return nil
}

// rankTopics превращает сырые агрегаты в отранжированный срез.
func rankTopics(day time.Time, stats []models.EntityDayStats, prevRanks map[uuid.UUID]int32) []models.TrendingTopic {
	topics := make([]models.TrendingTopic, 0, len(stats))
	for _, st := range stats {
		window := st.WindowMentions
		if window < 1 {
			window = 1
		}

		topics = append(topics, models.TrendingTopic{
			EntityID:     st.EntityID,
			Date:         day,
			MentionCount: st.MentionCount,
			ArticleCount: st.ArticleCount,
			Velocity:     float64(st.MentionCount) / float64(window),
		})
	}

	sort.Slice(topics, func(i, j int) bool {
		a, b := topics[i], topics[j]
		if a.Velocity != b.Velocity {
			return a.Velocity > b.Velocity
		}
		if a.MentionCount != b.MentionCount {
			return a.MentionCount > b.MentionCount
		}

		return bytes.Compare(a.EntityID[:], b.EntityID[:]) < 0
	})

	for i := range topics {
		topics[i].Rank = int32(i + 1)

		if prev, ok := prevRanks[topics[i].EntityID]; ok {
			prevCopy := prev
			topics[i].PreviousRank = &prevCopy
		}
	}

	return topics
}

// TrendingByDate возвращает срез трендов за дату по возрастанию ранга.
func (s *Service) TrendingByDate(ctx context.Context, date time.Time, limit int32) ([]models.TrendingTopic, error) {
	const op = "service.trending.TrendingByDate"

	topics, err := s.storage.TrendingByDate(ctx, date.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return topics, nil
}
