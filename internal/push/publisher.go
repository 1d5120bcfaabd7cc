// Package push fans out push notifications over Redis pub/sub. Each online
// user's gateway subscribes to that user's channel; deliveries to offline
// users are dropped by design.
package push

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Publisher delivers an opaque push payload to one user's channel.
type Publisher interface {
	PublishPush(ctx context.Context, siteUserID string, payload []byte) error
	Close() error
}

const channelPrefix = "push:"

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(addr, password string, db int) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	return &RedisPublisher{client: client}, nil
}

func (p *RedisPublisher) PublishPush(ctx context.Context, siteUserID string, payload []byte) error {
	if err := p.client.Publish(ctx, channelPrefix+siteUserID, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push for %s: %w", siteUserID, err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
