package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
	"github.com/harisahmad000005/osint-news-platform/pkg/log"
)

// labelRetries — предел повторов выдачи свободной метки при гонке создания.
const labelRetries = 3

// AssignCluster привязывает статью к сюжетному кластеру по внешнему
// сигналу похожести и пересчитывает статистику затронутого кластера.
//
// signal.ClusterLabel == nil — запрос нового кластера (метку выдаёт
// хранилище); иначе статья присоединяется к активному кластеру с меткой,
// а при его отсутствии кластер создаётся с этой меткой.
//
// Гонки ленивого создания разрешает уникальный индекс по активной метке:
// проигравший вставку с явной меткой перечитывает существующий кластер,
// проигравший с nil-меткой берёт следующую свободную метку и повторяет.
func (s *Service) AssignCluster(ctx context.Context, articleID uuid.UUID, signal models.SimilaritySignal) (uuid.UUID, error) {
	const op = "service.clusters.AssignCluster"

	lg := log.From(ctx)

	var (
		cluster *models.Cluster
		err     error
	)

	if signal.ClusterLabel == nil {
		for attempt := 0; ; attempt++ {
			label, labelErr := s.storage.NextClusterLabel(ctx)
			if labelErr != nil {
				return uuid.Nil, fmt.Errorf("%s: %w", op, labelErr)
			}

			cluster, err = s.storage.CreateCluster(ctx, label, signal.Summary)
			if err == nil {
				break
			}

			if !errors.Is(err, storage.ErrAlreadyExists) || attempt+1 >= labelRetries {
				return uuid.Nil, fmt.Errorf("%s: %w", op, err)
			}
		}

		lg.Info("cluster_created",
			slog.String("op", op),
			slog.String("cluster_id", cluster.ID.String()),
			slog.Int64("label", cluster.Label),
		)
	} else {
		cluster, err = s.storage.ActiveClusterByLabel(ctx, *signal.ClusterLabel)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				return uuid.Nil, fmt.Errorf("%s: %w", op, err)
			}

			cluster, err = s.storage.CreateCluster(ctx, *signal.ClusterLabel, signal.Summary)
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Проигранная гонка: кластер с этой меткой только что появился.
				cluster, err = s.storage.ActiveClusterByLabel(ctx, *signal.ClusterLabel)
			}
			if err != nil {
				return uuid.Nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if err := s.storage.SetArticleCluster(ctx, articleID, cluster.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.RecomputeCluster(ctx, cluster.ID); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return cluster.ID, nil
}

// RecomputeCluster — единственный путь записи статистических полей кластера:
// article_count, first/last_seen_at, топ-N доминирующих сущностей, языки.
// Пересчёты разных кластеров безопасно идут параллельно; один кластер
// пересчитывается строго последовательно (блокировка строки в хранилище).
// is_trending здесь не меняется — его пишет только ранкер трендов.
func (s *Service) RecomputeCluster(ctx context.Context, clusterID uuid.UUID) (*models.Cluster, error) {
	const op = "service.clusters.RecomputeCluster"

	cluster, err := s.storage.RecomputeClusterStats(ctx, clusterID, s.cfg.Trending.TopEntities)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cluster, nil
}
