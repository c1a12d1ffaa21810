package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const msgFlightChanged = "flight_changed"

// FlightsPubSub fans flight changes out to every running instance so each
// one can drop its own cached copies.
type FlightsPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewFlightsPubSub(rdb *redis.Client) *FlightsPubSub {
	return &FlightsPubSub{
		rdb:     rdb,
		channel: ChannelFlightsChanged(),
	}
}

type flightChangedMsg struct {
	Type     string `json:"type"`
	FlightID int64  `json:"flight_id"`
	TsUnix   int64  `json:"ts_unix"`
}

func (p *FlightsPubSub) PublishFlightChanged(ctx context.Context, flightID int64) error {
	b, _ := json.Marshal(flightChangedMsg{
		Type:     msgFlightChanged,
		FlightID: flightID,
		TsUnix:   time.Now().Unix(),
	})

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

// Subscribe blocks delivering changed flight IDs to handler until ctx is
// canceled. Callers run it in its own goroutine.
func (p *FlightsPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, flightID int64)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}

			var ev flightChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err != nil || ev.FlightID == 0 {
				// Malformed payloads are dropped.
				continue
			}
			handler(ctx, ev.FlightID)
		}
	}
}
