package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const publishTimeout = 3 * time.Second

// redisPublish is the part of *redis.Client the publisher uses.
type redisPublish interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher publishes events as JSON on a Redis pub/sub channel.
type RedisPublisher struct {
	rdb     redisPublish
	channel string
}

func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: channel}
}

// Notify publishes in call order. The publish outlives a cancelled request
// but not publishTimeout.
func (p *RedisPublisher) Notify(ctx context.Context, e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("notify: encoding %s event: %v", e.Kind, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.rdb.Publish(ctx, p.channel, data).Err(); err != nil {
		log.Printf("notify: redis publish on %s failed: %v", p.channel, err)
	}
}
