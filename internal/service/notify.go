package service

import (
	"context"
	"time"

	"log/slog"

	"rescueHub/internal/domain"

	"github.com/google/uuid"
)

// wsEvent is the envelope pushed over the real-time channel.
type wsEvent struct {
	EventID string                     `json:"event_id"`
	Type    domain.NotificationKind    `json:"type"`
	Payload domain.NotificationPayload `json:"payload"`
}

// Router partitions recipients into online and offline and delivers on
// both legs independently. A failed delivery for one recipient never
// blocks the others, and no failure reaches the caller.
type Router struct {
	presence  PresenceRegistry
	transport Transport
	queue     PushEnqueuer
	logger    *slog.Logger
}

func NewRouter(presence PresenceRegistry, transport Transport, queue PushEnqueuer, logger *slog.Logger) *Router {
	return &Router{
		presence:  presence,
		transport: transport,
		queue:     queue,
		logger:    logger,
	}
}

func (r *Router) Notify(ctx context.Context, recipients []int64, payload domain.NotificationPayload) {
	recipients = dedupe(recipients)
	if len(recipients) == 0 {
		return
	}

	kind := payload.Kind()

	online, err := r.presence.OnlineSubset(ctx, recipients)
	if err != nil {
		// presence unavailable: everyone goes through the durable leg
		r.logger.Error("presence lookup failed, routing all recipients offline",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		online = nil
	}

	for _, actorID := range recipients {
		if online[actorID] {
			r.emitAll(ctx, actorID, kind, payload)
		} else {
			r.enqueue(ctx, actorID, kind, payload)
		}
	}
}

// emitAll pushes the event to every connection the actor holds,
// fire-and-forget.
func (r *Router) emitAll(ctx context.Context, actorID int64, kind domain.NotificationKind, payload domain.NotificationPayload) {
	conns, err := r.presence.Connections(ctx, actorID)
	if err != nil {
		r.logger.Error("connection lookup failed",
			slog.Int64("actor_id", actorID),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		return
	}

	ev := wsEvent{
		EventID: uuid.NewString(),
		Type:    kind,
		Payload: payload,
	}
	for _, connID := range conns {
		if err := r.transport.Emit(connID, string(kind), ev); err != nil {
			r.logger.Warn("realtime emit failed",
				slog.Int64("actor_id", actorID),
				slog.String("conn_id", connID),
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
	}
}

func (r *Router) enqueue(ctx context.Context, actorID int64, kind domain.NotificationKind, payload domain.NotificationPayload) {
	job := domain.PushJob{
		ID:         uuid.NewString(),
		ActorID:    actorID,
		Kind:       kind,
		Data:       payload.Data(),
		EnqueuedAt: time.Now().UTC(),
	}
	if err := r.queue.Enqueue(ctx, job); err != nil {
		r.logger.Error("push enqueue failed",
			slog.Int64("actor_id", actorID),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
