package service

import (
	"context"
	"fmt"

	"log/slog"

	"rescueHub/internal/domain"
	"rescueHub/pkg/e"
)

// LocationService serves "where is this person" questions. A fresh cached
// position is answered immediately; otherwise the target is asked to
// report, online or through the push pipeline.
type LocationService struct {
	presence PresenceRegistry
	users    UserRepository
	notifier Notifier
	logger   *slog.Logger
}

func NewLocationService(presence PresenceRegistry, users UserRepository, notifier Notifier, logger *slog.Logger) *LocationService {
	return &LocationService{
		presence: presence,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// AskLocation answers from the cache when the entry is still fresh, and
// otherwise asks the target to report. Only the target's trackers and
// coordinators may ask. The cache TTL matches the freshness window, but
// the timestamp is re-checked here rather than trusting expiry alone.
func (s *LocationService) AskLocation(ctx context.Context, fromID int64, req domain.AskLocationRequest) (*domain.AskLocationResponse, error) {
	const op = "service.location.AskLocation"

	if err := s.authorizeAsk(ctx, fromID, req.ToID); err != nil {
		return nil, e.Wrap(op, err)
	}

	loc, err := s.presence.GetCachedLocation(ctx, req.ToID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if loc != nil && loc.Fresh(nowUTC()) {
		return &domain.AskLocationResponse{Location: loc, Requested: false}, nil
	}

	s.notifier.Notify(ctx, []int64{req.ToID}, domain.AskLocationPayload{FromID: fromID, ToID: req.ToID})

	return &domain.AskLocationResponse{Requested: true}, nil
}

// ReportLocation caches the reporter's position and relays it to their
// trackers.
func (s *LocationService) ReportLocation(ctx context.Context, userID int64, req domain.ReportLocationRequest) error {
	const op = "service.location.ReportLocation"

	if err := validateCoords(req.Latitude, req.Longitude); err != nil {
		return e.Wrap(op, err)
	}

	loc := domain.CachedLocation{
		ActorID:   userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: nowUTC(),
	}
	if err := s.presence.CacheLocation(ctx, loc); err != nil {
		return e.Wrap(op, err)
	}

	trackers, err := s.users.Trackers(ctx, userID)
	if err != nil {
		// position is cached, the relay just misses this round
		s.logger.Error("tracker lookup failed",
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil
	}
	if len(trackers) > 0 {
		s.notifier.Notify(ctx, trackers, domain.LocationReportPayload{
			UserID:    userID,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Timestamp: loc.Timestamp,
		})
	}
	return nil
}

func (s *LocationService) authorizeAsk(ctx context.Context, fromID, toID int64) error {
	trackers, err := s.users.Trackers(ctx, toID)
	if err != nil {
		return err
	}
	for _, id := range trackers {
		if id == fromID {
			return nil
		}
	}

	coordinators, err := s.users.CoordinatorIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range coordinators {
		if id == fromID {
			return nil
		}
	}

	return fmt.Errorf("actor %d does not track user %d: %w", fromID, toID, e.ErrForbidden)
}
