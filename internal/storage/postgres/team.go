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

// TeamRepo is read-only: team status flips happen inside case transactions
// in CaseRepo, never here.
type TeamRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTeamRepo(pool *pgxpool.Pool, logger *slog.Logger) *TeamRepo {
	return &TeamRepo{pool: pool, logger: logger}
}

const teamColumns = `id, COALESCE(team_name, ''), status, default_latitude, default_longitude`

func (r *TeamRepo) Get(ctx context.Context, id int64) (*domain.Team, error) {
	const op = "postgres.Team.Get"

	query := `SELECT ` + teamColumns + ` FROM rescue_teams WHERE id = $1`

	var t domain.Team
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Status, &t.Latitude, &t.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return &t, nil
}

func (r *TeamRepo) List(ctx context.Context) ([]*domain.Team, error) {
	const op = "postgres.Team.List"
	return r.list(ctx, op, `SELECT `+teamColumns+` FROM rescue_teams ORDER BY id`)
}

func (r *TeamRepo) ListAvailable(ctx context.Context) ([]*domain.Team, error) {
	const op = "postgres.Team.ListAvailable"
	return r.list(ctx, op, `SELECT `+teamColumns+` FROM rescue_teams WHERE status = 'available' ORDER BY id`)
}

func (r *TeamRepo) list(ctx context.Context, op, query string) ([]*domain.Team, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Status, &t.Latitude, &t.Longitude); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		teams = append(teams, &t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return teams, nil
}
