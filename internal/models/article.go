package models

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment — метка тональности статьи.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

// Article — единица ингеста.
//
// Особенности:
//   - URLHash — SHA-256 от нормализованного URL, уникален (дедупликация);
//   - после создания мутируются только: привязка к кластеру, поля обогащения
//     (язык/тональность/качество/спам), метка синхронизации с поисковым
//     индексом;
//   - FetchedAt — каноническая временная ось для всех оконных вычислений;
//   - ClusterID nullable: удаление кластера обнуляет ссылку, а не каскадирует.
type Article struct {
	ID       uuid.UUID
	SourceID uuid.UUID

	// URL — исходный адрес материала.
	URL string
	// URLHash — отпечаток нормализованного URL. Уникален.
	URLHash string
	// CanonicalURL — нормализованная форма URL (см. пакет fingerprint).
	CanonicalURL string

	Title   string
	Content string

	// Поля обогащения — пишутся извне (extraction boundary).
	Language       string
	SentimentLabel Sentiment
	SentimentScore *float64
	QualityScore   float64
	IsSpam         bool
	SpamSignals    map[string]any

	// ClusterID — необязательная ссылка на сюжетный кластер.
	ClusterID *uuid.UUID

	FetchedAt   time.Time
	PublishedAt *time.Time
	CreatedAt   time.Time

	// IndexedAt — момент последней синхронизации с внешним поисковым индексом.
	IndexedAt *time.Time
}

// Enrichment — результат внешнего анализа, записываемый на статью.
type Enrichment struct {
	Language       string
	SentimentLabel Sentiment
	SentimentScore *float64
	// QualityScore — оценка качества, 0..1.
	QualityScore float64
	IsSpam       bool
	SpamSignals  map[string]any
}

// AdmitOutcome — исход допуска контента.
type AdmitOutcome string

const (
	AdmitCreated   AdmitOutcome = "created"
	AdmitDuplicate AdmitOutcome = "duplicate"
)

// AdmitResult — результат IngestionDeduplicator.Admit.
// Duplicate — ожидаемый исход, а не ошибка.
type AdmitResult struct {
	Outcome AdmitOutcome
	// ArticleID — созданная либо уже существующая статья с тем же отпечатком.
	ArticleID uuid.UUID
	// URLHash — отпечаток нормализованного URL, по которому шла дедупликация.
	URLHash string
}
