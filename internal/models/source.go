// models содержит доменные сущности платформы ингеста.
// Эти типы используются слоями бизнес-логики и хранилища.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SourceType — тип источника контента.
type SourceType string

const (
	SourceRSS      SourceType = "rss"
	SourceAtom     SourceType = "atom"
	SourceHTML     SourceType = "html"
	SourceAPI      SourceType = "api"
	SourceTelegram SourceType = "telegram"
)

// Source — источник новостей/контента с состоянием здоровья.
//
// Особенности:
//   - FeedURL уникален на уровне БД;
//   - поля здоровья (LastPolledAt/LastSuccessAt/ConsecutiveFailures/LastError)
//     мутируются ТОЛЬКО через переходы монитора здоровья (MarkPollSuccess/
//     MarkPollFailure) и ручную реактивацию — пофайловая правка запрещена,
//     иначе ломается инвариант circuit breaker'а;
//   - Enabled == false, как только ConsecutiveFailures достигает порога;
//     обратный переход выполняется только вручную (ReactivateSource);
//   - временные метки — в UTC.
type Source struct {
	// ID — уникальный идентификатор источника.
	ID uuid.UUID
	// Name — человекочитаемое имя.
	Name string
	// Type — тип источника (rss/atom/html/api/telegram).
	Type SourceType
	// FeedURL — адрес ленты/эндпоинта. Уникален.
	FeedURL string
	// BaseURL — базовый адрес сайта-источника.
	BaseURL string

	// Enabled — false, если источник отключён breaker'ом или вручную.
	Enabled bool
	// LastPolledAt — время последней попытки опроса (успешной или нет).
	LastPolledAt *time.Time
	// LastSuccessAt — время последнего успешного опроса.
	LastSuccessAt *time.Time
	// ConsecutiveFailures — длина текущей серии неудач. Всегда >= 0.
	ConsecutiveFailures int32
	// LastError — последняя ошибка опроса, усечённая до лимита.
	LastError string

	// TrustScore — надёжность источника, 0..1.
	TrustScore float64
	// AvgQualityScore — средняя оценка качества статей источника.
	AvgQualityScore *float64

	// DiscoveredAt/DiscoveryKeyword/AutoDiscovered — трекинг автообнаружения.
	DiscoveredAt     *time.Time
	DiscoveryKeyword string
	AutoDiscovered   bool

	// PollInterval — минимальный интервал между опросами.
	PollInterval time.Duration
	// ParserConfig — непрозрачная конфигурация парсера (JSON).
	ParserConfig map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}
