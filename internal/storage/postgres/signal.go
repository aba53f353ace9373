package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rescueHub/internal/domain"
	"rescueHub/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SignalRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSignalRepo(pool *pgxpool.Pool, logger *slog.Logger) *SignalRepo {
	return &SignalRepo{pool: pool, logger: logger}
}

const signalColumns = `id, user_id, latitude, longitude, created_at, COALESCE(nearest_team_ids, '{}'), case_id`

func (r *SignalRepo) Get(ctx context.Context, id int64) (*domain.Signal, error) {
	const op = "postgres.Signal.Get"

	query := `SELECT ` + signalColumns + ` FROM sos_requests WHERE id = $1`

	var s domain.Signal
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.NearestTeamIDs, &s.CaseID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return &s, nil
}

func (r *SignalRepo) ListByCase(ctx context.Context, caseID int64) ([]*domain.Signal, error) {
	const op = "postgres.Signal.ListByCase"

	query := `SELECT ` + signalColumns + ` FROM sos_requests WHERE case_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, caseID)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var signals []*domain.Signal
	for rows.Next() {
		var s domain.Signal
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.NearestTeamIDs, &s.CaseID,
		); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		signals = append(signals, &s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return signals, nil
}
