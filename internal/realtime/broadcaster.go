package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher - интерфейс для публикации событий отчетов
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisBroadcaster - реализация Publisher поверх Redis pub/sub
type RedisBroadcaster struct {
	redisClient *redis.Client
}

// NewRedisBroadcaster создает новый RedisBroadcaster
func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{
		redisClient: client,
	}
}

// Publish публикует событие в канал организации назначения
func (b *RedisBroadcaster) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	channel := ChannelName(event.OrganizationID)
	if err := b.redisClient.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish report event to Redis: %w", err)
	}
	return nil
}
