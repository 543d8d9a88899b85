// storage определяет контракты доступа к БД для платформы ингеста.
//
// Реализация обязана обеспечивать уникальные ограничения на:
// sources.feed_url, articles.url_hash, entities.(type, normalized_text),
// article_entities.(article, entity, start_offset), scrape_jobs.task_id,
// trending_topics.(entity, date) — и атомарный check-and-insert поверх них.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (feed_url, url_hash, task_id,
	// срез трендов за дату и т.п.).
	ErrAlreadyExists = errors.New("already exists")
	// ErrAlreadyCompleted — повторное терминальное завершение ScrapeJob.
	ErrAlreadyCompleted = errors.New("already completed")
	// ErrConflict — ссылочный конфликт (например, удаление источника,
	// на который ссылаются статьи).
	ErrConflict = errors.New("conflict")
)

// SourceStorage — операции над models.Source.
//
// MarkSourceSuccess/MarkSourceFailure — единственный путь записи полей
// здоровья; оба перехода атомарны на уровне одной строки и сериализуются
// блокировкой строки, что защищает счётчик серии неудач от гонок.
type SourceStorage interface {
	// SaveSource регистрирует источник. ErrAlreadyExists при конфликте feed_url.
	SaveSource(ctx context.Context, src *models.Source) (uuid.UUID, error)
	// SourceByID возвращает источник. ErrNotFound, если записи нет.
	SourceByID(ctx context.Context, id uuid.UUID) (*models.Source, error)
	// DueSources возвращает включённые источники, которым пора на опрос
	// (last_polled_at + poll_interval <= now либо ещё не опрашивались).
	DueSources(ctx context.Context, now time.Time) ([]models.Source, error)
	// MarkSourceSuccess фиксирует успешный опрос: last_polled_at/last_success_at,
	// сброс серии неудач, очистка last_error. Enabled НЕ меняется.
	MarkSourceSuccess(ctx context.Context, id uuid.UUID, now time.Time) (*models.Source, error)
	// MarkSourceFailure фиксирует неудачный опрос: инкремент серии неудач и,
	// при достижении threshold, enabled=false. Возвращает обновлённую строку.
	MarkSourceFailure(ctx context.Context, id uuid.UUID, errMsg string, now time.Time, threshold int32) (*models.Source, error)
	// ReactivateSource — ручной сброс breaker'а: enabled=true, серия неудач = 0.
	ReactivateSource(ctx context.Context, id uuid.UUID) error
	// DeleteSource удаляет источник. ErrConflict, пока на него ссылаются статьи.
	DeleteSource(ctx context.Context, id uuid.UUID) error
	// RefreshSourceQuality пересчитывает avg_quality_score по не-спам статьям.
	RefreshSourceQuality(ctx context.Context, id uuid.UUID) error
}

// JobStorage — журнал попыток скрейпа.
type JobStorage interface {
	// CreateJob создаёт запись попытки. ErrAlreadyExists при повторном task_id.
	CreateJob(ctx context.Context, job *models.ScrapeJob) error
	// CompleteJob терминально завершает попытку ровно один раз:
	// статус, счётчики, completed_at и duration_seconds.
	// ErrAlreadyCompleted при повторном вызове, ErrNotFound — если записи нет.
	CompleteJob(ctx context.Context, id uuid.UUID, status models.JobStatus, counts models.JobCounts, errMsg string, completedAt time.Time) (*models.ScrapeJob, error)
}

// ArticleStorage — операции над models.Article.
type ArticleStorage interface {
	// CreateArticle вставляет статью. ErrAlreadyExists при конфликте url_hash —
	// вызывающий интерпретирует это как дубликат, а не как сбой.
	CreateArticle(ctx context.Context, article *models.Article) (uuid.UUID, error)
	// ArticleIDByFingerprint возвращает id статьи по отпечатку URL.
	ArticleIDByFingerprint(ctx context.Context, hash string) (uuid.UUID, error)
	// UpdateArticleEnrichment записывает результаты внешнего анализа.
	UpdateArticleEnrichment(ctx context.Context, id uuid.UUID, e models.Enrichment) error
	// SetArticleCluster привязывает статью к кластеру.
	SetArticleCluster(ctx context.Context, articleID, clusterID uuid.UUID) error
	// MarkArticleIndexed отмечает синхронизацию с внешним поисковым индексом.
	MarkArticleIndexed(ctx context.Context, id uuid.UUID, ts time.Time) error
}

// EntityStorage — сущности и их упоминания.
type EntityStorage interface {
	// LinkMention атомарно (в одной транзакции):
	//  - находит либо создаёт Entity по (type, normalizedText) через upsert;
	//  - вставляет связь (article, entity, start_offset), молча пропуская дубль;
	//  - инкрементирует mention_count ТОЛЬКО если связь реально создана.
	// Возвращает created=false для повторной связи (идемпотентность).
	LinkMention(ctx context.Context, articleID uuid.UUID, ex models.Extraction, normalizedText string, seenAt time.Time) (created bool, err error)
}

// ClusterStorage — сюжетные кластеры.
type ClusterStorage interface {
	// CreateCluster создаёт пустой активный кластер с данной меткой.
	CreateCluster(ctx context.Context, label int64, summary string) (*models.Cluster, error)
	// ActiveClusterByLabel возвращает активный кластер по метке. ErrNotFound,
	// если такого нет.
	ActiveClusterByLabel(ctx context.Context, label int64) (*models.Cluster, error)
	// NextClusterLabel выдаёт следующую свободную целочисленную метку.
	NextClusterLabel(ctx context.Context) (int64, error)
	// RecomputeClusterStats пересчитывает article_count, first/last_seen_at,
	// топ-N доминирующих сущностей и множество языков. Кластерная строка
	// блокируется на время пересчёта (единственный писатель статистики).
	RecomputeClusterStats(ctx context.Context, id uuid.UUID, topN int) (*models.Cluster, error)
	// RefreshTrendingClusters выставляет is_trending активным кластерам,
	// содержащим статьи с перечисленными сущностями, и снимает с остальных.
	RefreshTrendingClusters(ctx context.Context, entityIDs []uuid.UUID) error
}

// TrendingStorage — дневные срезы трендов.
type TrendingStorage interface {
	// TrendingStats возвращает агрегаты по сущностям, упомянутым в скользящем
	// окне [date+1d-windowDays, date+1d): счётчики последнего дня и окна.
	TrendingStats(ctx context.Context, date time.Time, windowDays int) ([]models.EntityDayStats, error)
	// RanksForDate возвращает ранги среза за дату (entity -> rank).
	RanksForDate(ctx context.Context, date time.Time) (map[uuid.UUID]int32, error)
	// SaveTrendingSnapshot записывает срез за дату атомарно (всё или ничего).
	// ErrAlreadyExists, если срез за дату уже есть и overwrite=false.
	SaveTrendingSnapshot(ctx context.Context, date time.Time, topics []models.TrendingTopic, overwrite bool) error
	// TrendingByDate возвращает срез за дату по возрастанию ранга.
	TrendingByDate(ctx context.Context, date time.Time, limit int32) ([]models.TrendingTopic, error)
}

// Storage задаёт полный контракт доступа к хранилищу.
type Storage interface {
	SourceStorage
	JobStorage
	ArticleStorage
	EntityStorage
	ClusterStorage
	TrendingStorage
	Close()
}
