package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rescueHub/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepo(pool *pgxpool.Pool, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, logger: logger}
}

func (r *UserRepo) PushToken(ctx context.Context, userID int64) (string, error) {
	const op = "postgres.User.PushToken"

	var token *string
	err := r.pool.QueryRow(ctx, `SELECT fcm_token FROM users WHERE id = $1`, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err), slog.Int64("user_id", userID))
		return "", e.WrapError(ctx, op, err)
	}
	if token == nil || *token == "" {
		return "", fmt.Errorf("%s: no push token: %w", op, e.ErrNotFound)
	}
	return *token, nil
}

func (r *UserRepo) Trackers(ctx context.Context, userID int64) ([]int64, error) {
	const op = "postgres.User.Trackers"
	return r.listIDs(ctx, op,
		`SELECT tracker_id FROM trackings WHERE target_id = $1 AND status = 'accepted'`, userID)
}

func (r *UserRepo) CoordinatorIDs(ctx context.Context) ([]int64, error) {
	const op = "postgres.User.CoordinatorIDs"
	return r.listIDs(ctx, op, `SELECT id FROM users WHERE role = 'coordinator'`)
}

func (r *UserRepo) listIDs(ctx context.Context, op, query string, args ...any) ([]int64, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return ids, nil
}
