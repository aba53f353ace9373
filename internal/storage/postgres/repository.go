package postgres

import (
	"context"
	"time"

	"rescueHub/internal/domain"
)

type CaseRepository interface {
	Get(ctx context.Context, id int64) (*domain.Case, error)
	FindOpenByUser(ctx context.Context, userID int64) (*domain.Case, error)
	CreateOrAppendSignal(ctx context.Context, userID int64, lat, lng float64, nearestTeamIDs []int64) (*domain.Case, *domain.Signal, error)
	AcceptCase(ctx context.Context, teamID, caseID int64) (*domain.Case, error)
	RejectCase(ctx context.Context, teamID, caseID int64) (*domain.Case, error)
	MarkReady(ctx context.Context, teamID, caseID int64) (*domain.Case, error)
	CancelCase(ctx context.Context, teamID, caseID int64, reason string) (*domain.Case, error)
	CompleteCase(ctx context.Context, teamID, caseID int64, description string) (*domain.Case, error)
	MarkSafe(ctx context.Context, caseID int64) (*domain.Case, error)
	AssignTeam(ctx context.Context, coordinatorID, teamID, caseID int64) (*domain.Case, error)
	ExpireCase(ctx context.Context, caseID int64) (bool, error)
	ListPendingBetween(ctx context.Context, oldest, newest time.Time) ([]*domain.Case, error)
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
