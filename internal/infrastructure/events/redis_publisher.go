package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher appends offer events to a Redis stream. Consumers (mailer,
// PDF renderer, commission follow-up) read the stream with their own groups.
type RedisPublisher struct {
	client *redis.Client
	stream string
}

var _ interfaces.IEventPublisher = (*RedisPublisher)(nil)

func NewRedisPublisher(addr, password string, db int, stream string) *RedisPublisher {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisPublisher{client: rdb, stream: stream}
}

func (p *RedisPublisher) Publish(ctx context.Context, e entities.OfferEvent) error {
	values, err := streamValues(e)
	if err != nil {
		return err
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Result()
	if err != nil {
		return fmt.Errorf("redis xadd %s: %w", p.stream, err)
	}
	log.Printf("[events][redis] published type=%s offer_id=%s stream_id=%s", e.Type, e.OfferID, id)
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// streamValues flattens the event into stream fields. The full event travels
// as JSON in "payload"; the other fields let consumers filter without decoding.
func streamValues(e entities.OfferEvent) (map[string]interface{}, error) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", e.Type, err)
	}
	values := map[string]interface{}{
		"type":        string(e.Type),
		"offer_id":    e.OfferID,
		"occurred_at": e.OccurredAt.UTC().Format(time.RFC3339Nano),
		"payload":     string(payload),
	}
	if e.To != "" {
		values["from"] = string(e.From)
		values["to"] = string(e.To)
	}
	return values, nil
}

// LogPublisher is used when no Redis address is configured.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, e entities.OfferEvent) error {
	log.Printf("[events][log] type=%s offer_id=%s from=%s to=%s", e.Type, e.OfferID, e.From, e.To)
	return nil
}
