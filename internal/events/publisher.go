// Package events publishes catalog and inventory change events to NATS
// JetStream. Publishing is best-effort: the service runs fine without a
// broker, and a nil *Publisher is a no-op.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// Action describes what happened to a record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

const streamName = "GLASS_CATALOG"

// ChangeEvent is the wire payload for catalog/inventory mutations.
type ChangeEvent struct {
	Entity      string    `json:"entity"`
	Action      Action    `json:"action"`
	ID          string    `json:"id"`
	CatalogCode string    `json:"catalogCode,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Publisher wraps a JetStream connection.
type Publisher struct {
	conn   *nats.Conn
	js     nats.JetStreamContext
	logger *logrus.Entry
}

// NewPublisher connects to NATS and ensures the change stream exists.
func NewPublisher(natsURL string, logger *logrus.Logger) (*Publisher, error) {
	if natsURL == "" {
		return nil, fmt.Errorf("NATS URL is required")
	}

	log := logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	conn, err := nats.Connect(natsURL,
		nats.Name("glass-catalog-service-publisher"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to get JetStream context: %w", err)
	}

	if _, err := js.StreamInfo(streamName); err != nil {
		_, addErr := js.AddStream(&nats.StreamConfig{
			Name:     streamName,
			Subjects: []string{"catalog.>", "inventory.>"},
		})
		if addErr != nil {
			log.WithError(addErr).Warn("Failed to ensure change stream exists")
		}
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		logger: log.WithField("component", "events"),
	}, nil
}

// PublishCatalogChanged publishes a catalog.item.<action> event.
func (p *Publisher) PublishCatalogChanged(ctx context.Context, action Action, id, catalogCode string) {
	p.publish(ctx, fmt.Sprintf("catalog.item.%s", action), ChangeEvent{
		Entity:      "catalog_item",
		Action:      action,
		ID:          id,
		CatalogCode: catalogCode,
		OccurredAt:  time.Now().UTC(),
	})
}

// PublishInventoryChanged publishes an inventory.item.<action> event.
func (p *Publisher) PublishInventoryChanged(ctx context.Context, action Action, id, catalogCode string) {
	p.publish(ctx, fmt.Sprintf("inventory.item.%s", action), ChangeEvent{
		Entity:      "inventory_item",
		Action:      action,
		ID:          id,
		CatalogCode: catalogCode,
		OccurredAt:  time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, subject string, event ChangeEvent) {
	if p == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.WithError(err).Error("Failed to marshal change event")
		return
	}

	if _, err := p.js.Publish(subject, data, nats.Context(ctx)); err != nil {
		p.logger.WithFields(logrus.Fields{
			"subject": subject,
			"id":      event.ID,
		}).WithError(err).Warn("Failed to publish change event")
	}
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
