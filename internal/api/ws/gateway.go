package ws

import (
	"context"
	"net/http"

	"log/slog"

	"rescueHub/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Presence interface {
	Register(ctx context.Context, actorID int64, connID string) error
	Unregister(ctx context.Context, actorID int64, connID string) error
}

type LocationReporter interface {
	ReportLocation(ctx context.Context, userID int64, req domain.ReportLocationRequest) error
}

// Gateway upgrades HTTP requests to WebSocket connections and bridges
// them into the presence registry. A connection becomes addressable only
// after its first register message.
type Gateway struct {
	hub      *Hub
	presence Presence
	location LocationReporter
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewGateway(hub *Hub, presence Presence, location LocationReporter, logger *slog.Logger) *Gateway {
	return &Gateway{
		hub:      hub,
		presence: presence,
		location: location,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

type inbound struct {
	Event     string  `json:"event"`
	ActorID   int64   `json:"actor_id,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

func (g *Gateway) Handle(w http.ResponseWriter, r *http.Request) {
	wsConn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("ws upgrade failed", slog.Any("error", err))
		return
	}

	connID := uuid.NewString()
	g.hub.add(connID, wsConn)

	g.logger.Debug("ws connected", slog.String("conn_id", connID))

	// the request context dies when this handler returns; the connection
	// outlives it
	go g.readLoop(context.WithoutCancel(r.Context()), wsConn, connID)
}

func (g *Gateway) readLoop(ctx context.Context, wsConn *websocket.Conn, connID string) {
	var actorID int64

	defer func() {
		g.hub.remove(connID)
		if actorID != 0 {
			if err := g.presence.Unregister(ctx, actorID, connID); err != nil {
				g.logger.Error("presence unregister failed",
					slog.Int64("actor_id", actorID),
					slog.String("conn_id", connID),
					slog.Any("error", err),
				)
			}
		}
		_ = wsConn.Close()
		g.logger.Debug("ws disconnected", slog.String("conn_id", connID))
	}()

	for {
		var msg inbound
		if err := wsConn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Warn("ws read failed", slog.String("conn_id", connID), slog.Any("error", err))
			}
			return
		}

		switch msg.Event {
		case "register":
			if msg.ActorID <= 0 {
				g.logger.Warn("register without actor id", slog.String("conn_id", connID))
				continue
			}
			if err := g.presence.Register(ctx, msg.ActorID, connID); err != nil {
				g.logger.Error("presence register failed",
					slog.Int64("actor_id", msg.ActorID),
					slog.Any("error", err),
				)
				continue
			}
			actorID = msg.ActorID

		case "send_location":
			if actorID == 0 {
				g.logger.Warn("location from unregistered connection", slog.String("conn_id", connID))
				continue
			}
			req := domain.ReportLocationRequest{Latitude: msg.Latitude, Longitude: msg.Longitude}
			if err := g.location.ReportLocation(ctx, actorID, req); err != nil {
				g.logger.Warn("location report rejected",
					slog.Int64("actor_id", actorID),
					slog.Any("error", err),
				)
			}

		default:
			g.logger.Debug("unknown ws event",
				slog.String("conn_id", connID),
				slog.String("event", msg.Event),
			)
		}
	}
}
