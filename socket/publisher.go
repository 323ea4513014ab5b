package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	socketio "github.com/googollee/go-socket.io"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"scorearena_server/log"
)

const mirrorTimeout = 2 * time.Second

// Publisher pushes events to Socket.IO rooms and, when a Redis client is
// configured, mirrors every event onto a per-channel Redis stream so
// out-of-process consumers can tail the feed. Both paths are best-effort:
// a delivery failure is logged and never reaches the caller.
type Publisher struct {
	server *socketio.Server
	redis  *redis.Client
}

// NewPublisher creates a Publisher. A nil Redis client disables the
// stream mirror.
func NewPublisher(server *socketio.Server, redisClient *redis.Client) *Publisher {
	return &Publisher{server: server, redis: redisClient}
}

// Publish emits one event to every subscriber of a channel.
func (p *Publisher) Publish(channel, event string, payload interface{}) {
	if ok := p.server.BroadcastToRoom("/", channel, event, payload); !ok {
		log.Debug("No subscribers on channel", zap.String("channel", channel))
	}

	if p.redis != nil {
		go p.mirror(channel, event, payload)
	}
}

// mirror appends the event to the channel's Redis stream.
func (p *Publisher) mirror(channel, event string, payload interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()

	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn("Failed to marshal event for stream mirror", zap.Error(err))
		return
	}

	streamKey := fmt.Sprintf("scores.updates.%s", channel)
	err = p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: streamKey,
		Values: map[string]interface{}{
			"event": event,
			"data":  string(data),
		},
	}).Err()
	if err != nil {
		log.Warn("Failed to mirror event to Redis stream",
			zap.String("stream", streamKey),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}
