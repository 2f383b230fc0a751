package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	StandCreated        = "stand.created"
	StandStatusChanged  = "stand.status_changed"
	ReservationCreated  = "reservation.created"
	ReservationPaid     = "reservation.paid"
	ReservationCleaning = "reservation.cleaning_inspected"
	ReservationsOverdue = "reservation.overdue_marked"
	IncidentReported    = "incident.reported"
	IncidentStatus      = "incident.status_changed"
)

// Event is a change notification for dashboards watching the market.
type Event struct {
	Type     string    `json:"type"`
	EntityID string    `json:"entityId,omitempty"`
	StandID  string    `json:"standId,omitempty"`
	Status   string    `json:"status,omitempty"`
	At       time.Time `json:"at"`
}

func New(typ, entityID, standID, status string) Event {
	return Event{
		Type:     typ,
		EntityID: entityID,
		StandID:  standID,
		Status:   status,
		At:       time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// RedisPublisher fans events out on a redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("p.client.Publish -> %w", err)
	}

	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Fanout publishes every event to all of its publishers, even when some of
// them fail.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
