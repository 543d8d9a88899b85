// events — публикация событий допуска статей для внешнего поискового индекса.
//
// Индексатор — внешний потребитель: ядро лишь сообщает «статья создана»
// и хранит indexed_at, который индексатор проставляет обратно.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// ArticleAdmitted — полезная нагрузка события допуска.
type ArticleAdmitted struct {
	ArticleID uuid.UUID `json:"article_id"`
	SourceID  uuid.UUID `json:"source_id"`
	URLHash   string    `json:"url_hash"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Publisher — контракт публикации событий допуска.
type Publisher interface {
	PublishAdmitted(ctx context.Context, ev ArticleAdmitted) error
	Close()
}

// NATSPublisher публикует события в один subject.
type NATSPublisher struct {
	nc      *nats.Conn
	subject string
}

// NewNATS подключается к NATS и возвращает публикатор.
func NewNATS(url, subject string) (*NATSPublisher, error) {
	const op = "events.NewNATS"

	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &NATSPublisher{nc: nc, subject: subject}, nil
}

// PublishAdmitted сериализует событие в JSON и публикует его.
func (p *NATSPublisher) PublishAdmitted(ctx context.Context, ev ArticleAdmitted) error {
	const op = "events.PublishAdmitted"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close дожидается отправки буфера и закрывает соединение.
func (p *NATSPublisher) Close() {
	_ = p.nc.Drain()
}

var _ Publisher = (*NATSPublisher)(nil)
