// service содержит бизнес-логику платформы ингеста: реестр и монитор
// здоровья источников, журнал попыток скрейпа, дедупликацию контента,
// привязку сущностей, сюжетные кластеры и дневной ранкер трендов.
package service

import (
	"errors"

	"golang.org/x/time/rate"

	"github.com/harisahmad000005/osint-news-platform/internal/cache"
	"github.com/harisahmad000005/osint-news-platform/internal/config"
	"github.com/harisahmad000005/osint-news-platform/internal/events"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSourceExists — источник с таким feed_url уже зарегистрирован.
	ErrSourceExists = errors.New("source already exists")
	// ErrSourceInUse — источник нельзя удалить: на него ссылаются статьи.
	ErrSourceInUse = errors.New("source is referenced by articles")
	// ErrDuplicateJob — внешний task_id уже использован. Повторять попытку
	// с тем же идентификатором нельзя.
	ErrDuplicateJob = errors.New("duplicate task id")
	// ErrJobCompleted — повторное завершение попытки: ошибка порядка вызовов
	// на стороне вызывающего.
	ErrJobCompleted = errors.New("job already completed")
	// ErrSnapshotExists — срез трендов за дату уже записан; ряд append-only,
	// перезапись только явным overwrite.
	ErrSnapshotExists = errors.New("trending snapshot already exists")
)

// Service — бизнес-логика ingest-платформы.
type Service struct {
	storage storage.Storage
	cfg     config.Config

	// fingerprints — необязательный fast-path кэш дедупликации (nil — выключен).
	fingerprints cache.FingerprintCache
	// events — необязательный публикатор событий допуска (nil — выключен).
	events events.Publisher
	// limiter — глобальный лимит исходящих опросов.
	limiter *rate.Limiter
}

// Option — необязательные зависимости Service.
type Option func(*Service)

// WithFingerprintCache подключает fast-path кэш отпечатков.
func WithFingerprintCache(c cache.FingerprintCache) Option {
	return func(s *Service) { s.fingerprints = c }
}

// WithPublisher подключает публикатор событий допуска.
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.events = p }
}

// New создает новый экземпляр Service.
func New(st storage.Storage, cfg config.Config, opts ...Option) *Service {
	rps := cfg.Poller.RatePerSecond
	if rps <= 0 {
		rps = 5
	}

	s := &Service{
		storage: st,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
