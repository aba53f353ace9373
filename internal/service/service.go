package service

import (
	"context"
	"time"

	"rescueHub/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// CaseRepository is the persistence contract for case transitions. Every
// guarded operation is a conditional write: the repository returns
// e.ErrConflict / e.ErrForbidden / e.ErrNotFound when the guard fails and
// commits nothing.
type CaseRepository interface {
	Get(ctx context.Context, id int64) (*domain.Case, error)
	CreateOrAppendSignal(ctx context.Context, userID int64, lat, lng float64, nearestTeamIDs []int64) (*domain.Case, *domain.Signal, error)
	AcceptCase(ctx context.Context, teamID, caseID int64) (*domain.Case, error)
	RejectCase(ctx context.Context, teamID, caseID int64) (*domain.Case, error)
	MarkReady(ctx context.Context, teamID, caseID int64) (*domain.Case, error)
	CancelCase(ctx context.Context, teamID, caseID int64, reason string) (*domain.Case, error)
	CompleteCase(ctx context.Context, teamID, caseID int64, description string) (*domain.Case, error)
	MarkSafe(ctx context.Context, caseID int64) (*domain.Case, error)
	AssignTeam(ctx context.Context, coordinatorID, teamID, caseID int64) (*domain.Case, error)
	CountByStatus(ctx context.Context) (*domain.CaseStats, error)
}

type SignalRepository interface {
	Get(ctx context.Context, id int64) (*domain.Signal, error)
	ListByCase(ctx context.Context, caseID int64) ([]*domain.Signal, error)
}

type TeamRepository interface {
	Get(ctx context.Context, id int64) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	ListAvailable(ctx context.Context) ([]*domain.Team, error)
}

type UserRepository interface {
	PushToken(ctx context.Context, userID int64) (string, error)
	Trackers(ctx context.Context, userID int64) ([]int64, error)
	CoordinatorIDs(ctx context.Context) ([]int64, error)
}

// PresenceRegistry is backed by a shared external store; it must stay
// correct when several service instances read and write it concurrently.
type PresenceRegistry interface {
	IsOnline(ctx context.Context, actorID int64) (bool, error)
	OnlineSubset(ctx context.Context, ids []int64) (map[int64]bool, error)
	Connections(ctx context.Context, actorID int64) ([]string, error)
	CacheLocation(ctx context.Context, loc domain.CachedLocation) error
	GetCachedLocation(ctx context.Context, actorID int64) (*domain.CachedLocation, error)
}

// Transport emits one event to one live connection, fire-and-forget.
type Transport interface {
	Emit(connID string, event string, payload any) error
}

// PushEnqueuer hands one durable delivery to the offline pipeline.
type PushEnqueuer interface {
	Enqueue(ctx context.Context, job domain.PushJob) error
}

// Notifier fans an event out to a recipient set. It never returns an
// error: delivery failures are logged and must not affect the state
// transition that triggered them.
type Notifier interface {
	Notify(ctx context.Context, recipients []int64, payload domain.NotificationPayload)
}

type Service struct {
	Dispatch *Dispatcher
	Geo      *GeoMatcher
	Notify   *Router
	Location *LocationService
}

func NewService(dispatch *Dispatcher, geo *GeoMatcher, notify *Router, location *LocationService) *Service {
	return &Service{
		Dispatch: dispatch,
		Geo:      geo,
		Notify:   notify,
		Location: location,
	}
}

func nowUTC() time.Time { return time.Now().UTC() }
