package models

import (
	"time"

	"github.com/google/uuid"
)

// DominantEntity — элемент кэшированного топ-N сущностей кластера.
type DominantEntity struct {
	Text  string     `json:"text"`
	Type  EntityType `json:"type"`
	Count int64      `json:"count"`
}

// Cluster — сюжетный кластер (группа связанных статей).
//
// Особенности:
//   - члены кластера не хранятся в нём самом — связь через Article.ClusterID;
//   - статистические поля (ArticleCount, FirstSeenAt/LastSeenAt,
//     DominantEntities, Languages) пишет ТОЛЬКО RecomputeCluster;
//   - IsTrending выставляет ТОЛЬКО TrendingRanker.
type Cluster struct {
	ID uuid.UUID
	// Label — целочисленная метка кластера от внешнего кластеризатора.
	Label int64
	// Summary — текстовая выжимка сюжета.
	Summary string

	// ArticleCount — текущее число статей-членов.
	ArticleCount int32
	// FirstSeenAt/LastSeenAt — min/max fetched_at по членам; nil у пустого кластера.
	FirstSeenAt *time.Time
	LastSeenAt  *time.Time

	IsActive   bool
	IsTrending bool

	// DominantEntities — топ-5 сущностей по числу упоминаний среди членов.
	DominantEntities []DominantEntity
	// Languages — множество языков статей-членов.
	Languages []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SimilaritySignal — внешний сигнал похожести для ClusterEngine.Assign.
//
// ClusterLabel == nil означает запрос на создание нового кластера;
// иначе статья присоединяется к активному кластеру с этой меткой.
type SimilaritySignal struct {
	ClusterLabel *int64
	// Summary — выжимка для вновь создаваемого кластера.
	Summary string
}
