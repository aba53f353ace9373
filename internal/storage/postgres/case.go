package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rescueHub/internal/domain"
	"rescueHub/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CaseRepo owns every case transition. Guards are enforced inside the
// UPDATE itself (conditional write), so two service instances racing on the
// same row cannot both commit.
type CaseRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCaseRepo(pool *pgxpool.Pool, logger *slog.Logger) *CaseRepo {
	return &CaseRepo{pool: pool, logger: logger}
}

const caseColumns = `
	id, status, created_at, accepted_at, ready_at, completed_at, cancelled_at,
	from_id, accepted_team_id, assigned_by,
	COALESCE(sos_list, '{}'), COALESCE(rejected_team_ids, '{}'),
	COALESCE(cancelled_reason, ''), COALESCE(completed_description, '')
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*domain.Case, error) {
	var c domain.Case
	err := row.Scan(
		&c.ID,
		&c.Status,
		&c.CreatedAt,
		&c.AcceptedAt,
		&c.ReadyAt,
		&c.CompletedAt,
		&c.CancelledAt,
		&c.FromID,
		&c.AcceptedTeamID,
		&c.AssignedBy,
		&c.SosList,
		&c.RejectedTeamIDs,
		&c.CancelledReason,
		&c.CompletedDescription,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CaseRepo) Get(ctx context.Context, id int64) (*domain.Case, error) {
	const op = "postgres.Case.Get"

	query := `SELECT ` + caseColumns + ` FROM cases_report WHERE id = $1`

	c, err := scanCase(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

func (r *CaseRepo) FindOpenByUser(ctx context.Context, userID int64) (*domain.Case, error) {
	const op = "postgres.Case.FindOpenByUser"

	query := `SELECT ` + caseColumns + `
		FROM cases_report
		WHERE from_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1`

	c, err := scanCase(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("user_id", userID))
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

// CreateOrAppendSignal stores the signal and binds it to the reporter's open
// case, creating the case when none is open. The row lock serializes appends
// to an existing open case; concurrent FIRST signals have no row to lock, so
// a partial unique index (one pending case per from_id) breaks that race and
// the loser retries down the append path.
func (r *CaseRepo) CreateOrAppendSignal(ctx context.Context, userID int64, lat, lng float64, nearestTeamIDs []int64) (*domain.Case, *domain.Signal, error) {
	c, s, err := r.createOrAppendSignal(ctx, userID, lat, lng, nearestTeamIDs)
	if err != nil && errors.Is(err, e.ErrUniqueViolation) {
		// lost the first-signal race; the winner's open case exists now
		return r.createOrAppendSignal(ctx, userID, lat, lng, nearestTeamIDs)
	}
	return c, s, err
}

func (r *CaseRepo) createOrAppendSignal(ctx context.Context, userID int64, lat, lng float64, nearestTeamIDs []int64) (*domain.Case, *domain.Signal, error) {
	const op = "postgres.Case.CreateOrAppendSignal"

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return nil, nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	findQuery := `SELECT ` + caseColumns + `
		FROM cases_report
		WHERE from_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE`

	c, err := scanCase(tx.QueryRow(ctx, findQuery, userID))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Error("find open case failed", slog.String("op", op), slog.Any("error", err))
			return nil, nil, e.WrapError(ctx, op, err)
		}

		const createQuery = `
			INSERT INTO cases_report (status, from_id, sos_list, rejected_team_ids, created_at)
			VALUES ('pending', $1, '{}', '{}', now())
			RETURNING ` + caseColumns

		c, err = scanCase(tx.QueryRow(ctx, createQuery, userID))
		if err != nil {
			r.logger.Error("create case failed", slog.String("op", op), slog.Any("error", err))
			return nil, nil, e.WrapError(ctx, op, err)
		}
	}

	const signalQuery = `
		INSERT INTO sos_requests (user_id, latitude, longitude, nearest_team_ids, case_id, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, user_id, latitude, longitude, created_at, COALESCE(nearest_team_ids, '{}'), case_id`

	var s domain.Signal
	err = tx.QueryRow(ctx, signalQuery, userID, lat, lng, nearestTeamIDs, c.ID).Scan(
		&s.ID, &s.UserID, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.NearestTeamIDs, &s.CaseID,
	)
	if err != nil {
		r.logger.Error("insert signal failed", slog.String("op", op), slog.Any("error", err))
		return nil, nil, e.WrapError(ctx, op, err)
	}

	const appendQuery = `UPDATE cases_report SET sos_list = array_append(COALESCE(sos_list, '{}'), $2) WHERE id = $1`
	if _, err := tx.Exec(ctx, appendQuery, c.ID, s.ID); err != nil {
		r.logger.Error("append signal failed", slog.String("op", op), slog.Any("error", err))
		return nil, nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return nil, nil, e.WrapError(ctx, op, err)
	}

	c.SosList = append(c.SosList, s.ID)
	return c, &s, nil
}

// AcceptCase commits exactly once: the WHERE clause is the compare-and-set,
// losers of the race fall through to diagnose and get ErrConflict.
func (r *CaseRepo) AcceptCase(ctx context.Context, teamID, caseID int64) (*domain.Case, error) {
	const op = "postgres.Case.Accept"

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	updateQuery := `
		UPDATE cases_report
		SET status = 'accepted', accepted_team_id = $2, accepted_at = now()
		WHERE id = $1 AND status = 'pending' AND accepted_team_id IS NULL
		RETURNING ` + caseColumns

	c, err := scanCase(tx.QueryRow(ctx, updateQuery, caseID, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.diagnoseAccept(ctx, op, caseID)
		}
		r.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.Int64("case_id", caseID))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := r.setTeamStatus(ctx, tx, op, teamID, domain.TeamBusy); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

func (r *CaseRepo) diagnoseAccept(ctx context.Context, op string, caseID int64) error {
	var status domain.CaseStatus
	err := r.pool.QueryRow(ctx, `SELECT status FROM cases_report WHERE id = $1`, caseID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return e.WrapError(ctx, op, err)
	}
	return fmt.Errorf("%s: case is %s: %w", op, status, e.ErrConflict)
}

func (r *CaseRepo) RejectCase(ctx context.Context, teamID, caseID int64) (*domain.Case, error) {
	const op = "postgres.Case.Reject"

	updateQuery := `
		UPDATE cases_report
		SET rejected_team_ids = array_append(COALESCE(rejected_team_ids, '{}'), $2)
		WHERE id = $1 AND status = 'pending'
		  AND NOT ($2 = ANY(COALESCE(rejected_team_ids, '{}')))
		RETURNING ` + caseColumns

	c, err := scanCase(r.pool.QueryRow(ctx, updateQuery, caseID, teamID))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.Int64("case_id", caseID))
		return nil, e.WrapError(ctx, op, err)
	}

	var status domain.CaseStatus
	var rejected []int64
	err = r.pool.QueryRow(ctx,
		`SELECT status, COALESCE(rejected_team_ids, '{}') FROM cases_report WHERE id = $1`, caseID,
	).Scan(&status, &rejected)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	for _, id := range rejected {
		if id == teamID {
			return nil, fmt.Errorf("%s: team already rejected this case: %w", op, e.ErrConflict)
		}
	}
	return nil, fmt.Errorf("%s: case is %s: %w", op, status, e.ErrConflict)
}

func (r *CaseRepo) MarkReady(ctx context.Context, teamID, caseID int64) (*domain.Case, error) {
	const op = "postgres.Case.MarkReady"

	updateQuery := `
		UPDATE cases_report
		SET status = 'ready', ready_at = now()
		WHERE id = $1 AND status = 'accepted' AND accepted_team_id = $2
		RETURNING ` + caseColumns

	c, err := scanCase(r.pool.QueryRow(ctx, updateQuery, caseID, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.diagnoseOwned(ctx, op, teamID, caseID)
		}
		r.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.Int64("case_id", caseID))
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

func (r *CaseRepo) CancelCase(ctx context.Context, teamID, caseID int64, reason string) (*domain.Case, error) {
	const op = "postgres.Case.Cancel"
	// a cancelled case carries no team; only completed keeps the binding
	return r.closeCase(ctx, op, teamID, caseID, `
		UPDATE cases_report
		SET status = 'cancelled', cancelled_at = now(), cancelled_reason = $3, accepted_team_id = NULL
		WHERE id = $1 AND accepted_team_id = $2 AND status IN ('accepted', 'ready')
		RETURNING `+caseColumns, reason)
}

func (r *CaseRepo) CompleteCase(ctx context.Context, teamID, caseID int64, description string) (*domain.Case, error) {
	const op = "postgres.Case.Complete"
	return r.closeCase(ctx, op, teamID, caseID, `
		UPDATE cases_report
		SET status = 'completed', completed_at = now(), completed_description = $3
		WHERE id = $1 AND accepted_team_id = $2 AND status = 'ready'
		RETURNING `+caseColumns, description)
}

// closeCase runs a terminal transition owned by the accepted team and frees
// the team in the same transaction.
func (r *CaseRepo) closeCase(ctx context.Context, op string, teamID, caseID int64, updateQuery, detail string) (*domain.Case, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	c, err := scanCase(tx.QueryRow(ctx, updateQuery, caseID, teamID, detail))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.diagnoseOwned(ctx, op, teamID, caseID)
		}
		r.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.Int64("case_id", caseID))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := r.setTeamStatus(ctx, tx, op, teamID, domain.TeamAvailable); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

func (r *CaseRepo) diagnoseOwned(ctx context.Context, op string, teamID, caseID int64) error {
	var status domain.CaseStatus
	var acceptedTeamID *int64
	err := r.pool.QueryRow(ctx,
		`SELECT status, accepted_team_id FROM cases_report WHERE id = $1`, caseID,
	).Scan(&status, &acceptedTeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return e.WrapError(ctx, op, err)
	}
	if acceptedTeamID == nil || *acceptedTeamID != teamID {
		return fmt.Errorf("%s: case not owned by team: %w", op, e.ErrForbidden)
	}
	return fmt.Errorf("%s: case is %s: %w", op, status, e.ErrConflict)
}

func (r *CaseRepo) MarkSafe(ctx context.Context, caseID int64) (*domain.Case, error) {
	const op = "postgres.Case.MarkSafe"

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	// the update nulls the team binding, so grab it first under the row lock
	var teamID *int64
	err = tx.QueryRow(ctx, `SELECT accepted_team_id FROM cases_report WHERE id = $1 FOR UPDATE`, caseID).Scan(&teamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err), slog.Int64("case_id", caseID))
		return nil, e.WrapError(ctx, op, err)
	}

	updateQuery := `
		UPDATE cases_report
		SET status = 'safe', cancelled_at = now(), accepted_team_id = NULL
		WHERE id = $1 AND status IN ('pending', 'accepted', 'ready')
		RETURNING ` + caseColumns

	c, err := scanCase(tx.QueryRow(ctx, updateQuery, caseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var status domain.CaseStatus
			err = r.pool.QueryRow(ctx, `SELECT status FROM cases_report WHERE id = $1`, caseID).Scan(&status)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
				}
				return nil, e.WrapError(ctx, op, err)
			}
			return nil, fmt.Errorf("%s: case is %s: %w", op, status, e.ErrConflict)
		}
		r.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.Int64("case_id", caseID))
		return nil, e.WrapError(ctx, op, err)
	}

	if teamID != nil {
		if err := r.setTeamStatus(ctx, tx, op, *teamID, domain.TeamAvailable); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

func (r *CaseRepo) AssignTeam(ctx context.Context, coordinatorID, teamID, caseID int64) (*domain.Case, error) {
	const op = "postgres.Case.AssignTeam"

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	// Team must still be available; the conditional update doubles as the
	// busy check.
	teamQuery := `UPDATE rescue_teams SET status = 'busy' WHERE id = $1 AND status = 'available'`
	cmd, err := tx.Exec(ctx, teamQuery, teamID)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("team_id", teamID))
		return nil, e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		var status domain.TeamStatus
		err = r.pool.QueryRow(ctx, `SELECT status FROM rescue_teams WHERE id = $1`, teamID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%s: team: %w", op, e.ErrNotFound)
			}
			return nil, e.WrapError(ctx, op, err)
		}
		return nil, fmt.Errorf("%s: team is %s: %w", op, status, e.ErrConflict)
	}

	updateQuery := `
		UPDATE cases_report
		SET status = 'accepted', accepted_team_id = $2, accepted_at = now(), assigned_by = $3
		WHERE id = $1 AND accepted_team_id IS NULL AND status = 'pending'
		RETURNING ` + caseColumns

	c, err := scanCase(tx.QueryRow(ctx, updateQuery, caseID, teamID, coordinatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.diagnoseAccept(ctx, op, caseID)
		}
		r.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.Int64("case_id", caseID))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

// ExpireCase is the sweeper path. The status guard makes redundant sweeps a
// no-op instead of an error.
func (r *CaseRepo) ExpireCase(ctx context.Context, caseID int64) (bool, error) {
	const op = "postgres.Case.Expire"

	const query = `
		UPDATE cases_report
		SET status = 'cancelled', cancelled_at = now()
		WHERE id = $1 AND status = 'pending'`

	cmd, err := r.pool.Exec(ctx, query, caseID)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("case_id", caseID))
		return false, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *CaseRepo) ListPendingBetween(ctx context.Context, oldest, newest time.Time) ([]*domain.Case, error) {
	const op = "postgres.Case.ListPendingBetween"

	query := `SELECT ` + caseColumns + `
		FROM cases_report
		WHERE status = 'pending' AND created_at > $1 AND created_at <= $2
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, oldest, newest)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var cases []*domain.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return cases, nil
}

func (r *CaseRepo) CountByStatus(ctx context.Context) (*domain.CaseStats, error) {
	const op = "postgres.Case.CountByStatus"

	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'accepted'),
			COUNT(*) FILTER (WHERE status = 'ready'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status IN ('cancelled', 'expired')),
			COUNT(*) FILTER (WHERE status = 'safe')
		FROM cases_report`

	var s domain.CaseStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.Total, &s.Pending, &s.Accepted, &s.Ready, &s.Completed, &s.Cancelled, &s.Safe,
	)
	if err != nil {
		r.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &s, nil
}

func (r *CaseRepo) setTeamStatus(ctx context.Context, tx pgx.Tx, op string, teamID int64, status domain.TeamStatus) error {
	cmd, err := tx.Exec(ctx, `UPDATE rescue_teams SET status = $2 WHERE id = $1`, teamID, status)
	if err != nil {
		r.logger.Error("team status update failed", slog.String("op", op), slog.Any("error", err), slog.Int64("team_id", teamID))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: team: %w", op, e.ErrNotFound)
	}
	return nil
}
