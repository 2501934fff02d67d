package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/plandesk/plandesk/internal/domain"
)

// RedisPublisher fans event changes out on a pub/sub channel so dashboards
// and other tabs can refresh without polling. Subscribers get the id and the
// new state, not the whole record; they re-fetch through the API.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  logger.Logger
}

type changeMessage struct {
	EventID    string        `json:"event_id"`
	OwnerID    string        `json:"owner_id"`
	Status     domain.Status `json:"status"`
	Action     domain.Action `json:"action"`
	Version    int64         `json:"version"`
	OccurredAt time.Time     `json:"occurred_at"`
}

func NewRedisPublisher(client *redis.Client, channel string, logger logger.Logger) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (p *RedisPublisher) NotifyChanged(ctx context.Context, e *domain.Event, action domain.Action) {
	payload, err := json.Marshal(changeMessage{
		EventID:    e.ID,
		OwnerID:    e.OwnerID,
		Status:     e.Status,
		Action:     action,
		Version:    e.Version,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		p.logger.Error("failed to marshal change message",
			logger.String("event_id", e.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.logger.Error("failed to publish change message",
			logger.String("event_id", e.ID),
			logger.String("channel", p.channel),
			logger.String("error", err.Error()),
		)
	}
}
