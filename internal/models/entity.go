package models

import (
	"time"

	"github.com/google/uuid"
)

// EntityType — тип именованной сущности.
type EntityType string

const (
	EntityPerson  EntityType = "PERSON"
	EntityOrg     EntityType = "ORG"
	EntityGPE     EntityType = "GPE"
	EntityLoc     EntityType = "LOC"
	EntityProduct EntityType = "PRODUCT"
	EntityEvent   EntityType = "EVENT"
	EntityDate    EntityType = "DATE"
	EntityMoney   EntityType = "MONEY"
)

// Entity — именованная сущность, ключ (Type, NormalizedText) уникален.
//
// Создаётся лениво при первом упоминании; MentionCount растёт ровно на 1
// на каждую УНИКАЛЬНУЮ связь (article, entity, start_offset), а не на вызов.
type Entity struct {
	ID uuid.UUID
	// Type — тип сущности (PERSON/ORG/...).
	Type EntityType
	// Text — оригинальное написание.
	Text string
	// NormalizedText — case-fold нормализация для матчинга.
	NormalizedText string

	MentionCount int64
	FirstSeenAt  time.Time
	LastSeenAt   time.Time
}

// ArticleEntity — связь «упоминание сущности в статье».
// Уникальна по (ArticleID, EntityID, StartOffset); иммутабельна.
type ArticleEntity struct {
	ID        uuid.UUID
	ArticleID uuid.UUID
	EntityID  uuid.UUID

	// Confidence — уверенность экстрактора, 0..1.
	Confidence  float64
	StartOffset int32
	EndOffset   int32
	// ExtractorName — идентификатор модели-экстрактора.
	ExtractorName string

	CreatedAt time.Time
}

// Extraction — одно извлечение внешней NLP-модели (вход EntityLinker).
type Extraction struct {
	Type       EntityType
	Text       string
	Confidence float64
	// StartOffset/EndOffset — символьные смещения в тексте статьи.
	StartOffset int32
	EndOffset   int32
	// Extractor — имя модели-экстрактора (например, "spacy").
	Extractor string
}
