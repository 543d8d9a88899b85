package models

import (
	"time"

	"github.com/google/uuid"
)

// TrendingTopic — иммутабельный дневной срез трендов, уникален по
// (EntityID, Date). Новая дата — новая строка; append-only ряд.
type TrendingTopic struct {
	ID       uuid.UUID
	EntityID uuid.UUID
	// Date — календарная дата среза (UTC, полночь).
	Date time.Time

	// MentionCount — упоминания за последний день.
	MentionCount int32
	// ArticleCount — уникальные статьи за последний день.
	ArticleCount int32
	// Velocity = MentionCount / max(1, упоминания за скользящее окно).
	Velocity float64

	// Rank — позиция (1-based) в срезе даты.
	Rank int32
	// PreviousRank — ранг в срезе предыдущего дня; nil, если его не было.
	PreviousRank *int32

	CreatedAt time.Time
}

// EntityDayStats — сырые агрегаты по сущности для расчёта трендов:
// счётчики последнего дня плюс упоминания за скользящее окно.
type EntityDayStats struct {
	EntityID       uuid.UUID
	MentionCount   int32
	ArticleCount   int32
	WindowMentions int32
}

// ScrapedItem — сырой материал, полученный реализацией scraper boundary.
// FetchedAt проставляет оркестратор, а не скрейпер.
type ScrapedItem struct {
	URL     string
	Title   string
	Content string
	// Language — необязательная языковая подсказка из ленты.
	Language    string
	PublishedAt *time.Time
}
