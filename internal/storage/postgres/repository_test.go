//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"rescueHub/internal/domain"
	"rescueHub/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS cases_report (
			id bigserial PRIMARY KEY,
			status text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			accepted_at timestamptz,
			ready_at timestamptz,
			completed_at timestamptz,
			cancelled_at timestamptz,
			from_id bigint NOT NULL,
			accepted_team_id bigint,
			assigned_by bigint,
			sos_list bigint[] NOT NULL DEFAULT '{}',
			rejected_team_ids bigint[] NOT NULL DEFAULT '{}',
			cancelled_reason text,
			completed_description text
		);

		CREATE UNIQUE INDEX IF NOT EXISTS cases_report_one_open_per_user
			ON cases_report (from_id) WHERE status = 'pending';

		CREATE TABLE IF NOT EXISTS sos_requests (
			id bigserial PRIMARY KEY,
			user_id bigint NOT NULL,
			latitude double precision NOT NULL,
			longitude double precision NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			nearest_team_ids bigint[] NOT NULL DEFAULT '{}',
			case_id bigint NOT NULL REFERENCES cases_report(id)
		);

		CREATE TABLE IF NOT EXISTS rescue_teams (
			id bigserial PRIMARY KEY,
			team_name text,
			status text NOT NULL DEFAULT 'available',
			default_latitude double precision NOT NULL DEFAULT 0,
			default_longitude double precision NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS users (
			id bigserial PRIMARY KEY,
			role text NOT NULL DEFAULT 'user',
			fcm_token text
		);

		CREATE TABLE IF NOT EXISTS trackings (
			id bigserial PRIMARY KEY,
			tracker_id bigint NOT NULL,
			target_id bigint NOT NULL,
			status text NOT NULL
		);
	`)
	return err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE sos_requests, cases_report, rescue_teams, users, trackings RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func seedTeam(t *testing.T, status domain.TeamStatus) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(context.Background(),
		`INSERT INTO rescue_teams (team_name, status) VALUES ('alpha', $1) RETURNING id`, status).Scan(&id)
	if err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return id
}

func teamStatus(t *testing.T, id int64) domain.TeamStatus {
	t.Helper()
	var s domain.TeamStatus
	if err := testPool.QueryRow(context.Background(),
		`SELECT status FROM rescue_teams WHERE id = $1`, id).Scan(&s); err != nil {
		t.Fatalf("team status: %v", err)
	}
	return s
}

func TestCaseRepo_CreateOrAppendSignal(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	c1, s1, err := repo.CreateOrAppendSignal(ctx, 1, 21.0, 105.8, []int64{5})
	if err != nil {
		t.Fatalf("first signal: %v", err)
	}
	if c1.Status != domain.CasePending {
		t.Fatalf("want pending, got %s", c1.Status)
	}
	if len(c1.SosList) != 1 || c1.SosList[0] != s1.ID {
		t.Fatalf("sos_list not updated: %v", c1.SosList)
	}

	// second signal from the same user joins the open case
	c2, s2, err := repo.CreateOrAppendSignal(ctx, 1, 21.1, 105.9, nil)
	if err != nil {
		t.Fatalf("second signal: %v", err)
	}
	if c2.ID != c1.ID {
		t.Fatalf("open case must absorb new signals: %d vs %d", c2.ID, c1.ID)
	}
	if len(c2.SosList) != 2 || c2.SosList[1] != s2.ID {
		t.Fatalf("sos_list not appended: %v", c2.SosList)
	}

	// another user gets their own case
	c3, _, err := repo.CreateOrAppendSignal(ctx, 2, 21.0, 105.8, nil)
	if err != nil {
		t.Fatalf("other user signal: %v", err)
	}
	if c3.ID == c1.ID {
		t.Fatal("different reporters must not share a case")
	}
}

func TestCaseRepo_ConcurrentFirstSignalsShareOneCase(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	// double-tap: both signals race to create the reporter's first case
	var wg sync.WaitGroup
	cases := make([]*domain.Case, 2)
	errs := make([]error, 2)
	for i := range cases {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cases[i], _, errs[i] = repo.CreateOrAppendSignal(ctx, 7, 21.0, 105.8, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("signal %d: %v", i, err)
		}
	}
	if cases[0].ID != cases[1].ID {
		t.Fatalf("concurrent first signals split into cases %d and %d", cases[0].ID, cases[1].ID)
	}

	var open int
	if err := testPool.QueryRow(ctx,
		`SELECT COUNT(*) FROM cases_report WHERE from_id = 7 AND status = 'pending'`).Scan(&open); err != nil {
		t.Fatalf("count: %v", err)
	}
	if open != 1 {
		t.Fatalf("want exactly one open case, got %d", open)
	}

	got, err := repo.Get(ctx, cases[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.SosList) != 2 {
		t.Fatalf("both signals must land on the case: %v", got.SosList)
	}
}

func TestCaseRepo_AcceptRace_ExactlyOneWins(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	teamA := seedTeam(t, domain.TeamAvailable)
	teamB := seedTeam(t, domain.TeamAvailable)

	c, _, err := repo.CreateOrAppendSignal(ctx, 1, 21.0, 105.8, nil)
	if err != nil {
		t.Fatalf("seed case: %v", err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, teamID := range []int64{teamA, teamB} {
		wg.Add(1)
		go func(i int, teamID int64) {
			defer wg.Done()
			_, errs[i] = repo.AcceptCase(ctx, teamID, c.ID)
		}(i, teamID)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, e.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || conflicts != 1 {
		t.Fatalf("want exactly one winner, got wins=%d conflicts=%d", wins, conflicts)
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.CaseAccepted || got.AcceptedTeamID == nil {
		t.Fatalf("invariant broken: %+v", got)
	}
	if teamStatus(t, *got.AcceptedTeamID) != domain.TeamBusy {
		t.Fatal("winning team must be busy")
	}
}

func TestCaseRepo_RejectTwice(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	teamID := seedTeam(t, domain.TeamAvailable)
	c, _, err := repo.CreateOrAppendSignal(ctx, 1, 21.0, 105.8, nil)
	if err != nil {
		t.Fatalf("seed case: %v", err)
	}

	got, err := repo.RejectCase(ctx, teamID, c.ID)
	if err != nil {
		t.Fatalf("first reject: %v", err)
	}
	if got.Status != domain.CasePending {
		t.Fatalf("reject must not change status: %s", got.Status)
	}
	if len(got.RejectedTeamIDs) != 1 || got.RejectedTeamIDs[0] != teamID {
		t.Fatalf("rejected_team_ids: %v", got.RejectedTeamIDs)
	}

	_, err = repo.RejectCase(ctx, teamID, c.ID)
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("second reject: want ErrConflict, got %v", err)
	}

	got, _ = repo.Get(ctx, c.ID)
	if len(got.RejectedTeamIDs) != 1 {
		t.Fatalf("team must appear exactly once: %v", got.RejectedTeamIDs)
	}
}

func TestCaseRepo_LifecycleToCompleted(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	teamID := seedTeam(t, domain.TeamAvailable)
	stranger := seedTeam(t, domain.TeamAvailable)

	c, _, _ := repo.CreateOrAppendSignal(ctx, 1, 21.0, 105.8, nil)

	if _, err := repo.AcceptCase(ctx, teamID, c.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// complete requires ready
	if _, err := repo.CompleteCase(ctx, teamID, c.ID, "done"); !errors.Is(err, e.ErrConflict) {
		t.Fatalf("complete from accepted: want ErrConflict, got %v", err)
	}

	// only the owner may advance
	if _, err := repo.MarkReady(ctx, stranger, c.ID); !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("mark ready by stranger: want ErrForbidden, got %v", err)
	}

	if _, err := repo.MarkReady(ctx, teamID, c.ID); err != nil {
		t.Fatalf("mark ready: %v", err)
	}

	got, err := repo.CompleteCase(ctx, teamID, c.ID, "rescued")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Status != domain.CaseCompleted || got.CompletedDescription != "rescued" {
		t.Fatalf("unexpected case: %+v", got)
	}
	if teamStatus(t, teamID) != domain.TeamAvailable {
		t.Fatal("completing must free the team")
	}
}

func TestCaseRepo_CancelFreesTeam(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	teamID := seedTeam(t, domain.TeamAvailable)
	c, _, _ := repo.CreateOrAppendSignal(ctx, 1, 21.0, 105.8, nil)

	// cancel requires accepted or ready
	if _, err := repo.CancelCase(ctx, teamID, c.ID, "nope"); !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("cancel pending: want ErrForbidden, got %v", err)
	}

	if _, err := repo.AcceptCase(ctx, teamID, c.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	got, err := repo.CancelCase(ctx, teamID, c.ID, "false alarm")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != domain.CaseCancelled || got.CancelledReason != "false alarm" {
		t.Fatalf("unexpected case: %+v", got)
	}
	if got.AcceptedTeamID != nil {
		t.Fatalf("cancelled case must not carry a team, got %d", *got.AcceptedTeamID)
	}
	if teamStatus(t, teamID) != domain.TeamAvailable {
		t.Fatal("cancelling must free the team")
	}

	stored, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.AcceptedTeamID != nil {
		t.Fatal("team binding must be cleared in the row, not just the return value")
	}
}

func TestCaseRepo_MarkSafeMatrix(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	teamID := seedTeam(t, domain.TeamAvailable)

	c, _, _ := repo.CreateOrAppendSignal(ctx, 1, 21.0, 105.8, nil)
	if _, err := repo.AcceptCase(ctx, teamID, c.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	got, err := repo.MarkSafe(ctx, c.ID)
	if err != nil {
		t.Fatalf("mark safe: %v", err)
	}
	if got.Status != domain.CaseSafe {
		t.Fatalf("want safe, got %s", got.Status)
	}
	if got.AcceptedTeamID != nil {
		t.Fatalf("safe case must not carry a team, got %d", *got.AcceptedTeamID)
	}
	if teamStatus(t, teamID) != domain.TeamAvailable {
		t.Fatal("mark safe must free the assigned team")
	}

	// terminal case refuses a second transition
	if _, err := repo.MarkSafe(ctx, c.ID); !errors.Is(err, e.ErrConflict) {
		t.Fatalf("mark safe twice: want ErrConflict, got %v", err)
	}
}

func TestCaseRepo_AssignTeam(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	available := seedTeam(t, domain.TeamAvailable)
	busy := seedTeam(t, domain.TeamBusy)

	c, _, _ := repo.CreateOrAppendSignal(ctx, 1, 21.0, 105.8, nil)

	if _, err := repo.AssignTeam(ctx, 90, busy, c.ID); !errors.Is(err, e.ErrConflict) {
		t.Fatalf("assign busy team: want ErrConflict, got %v", err)
	}

	got, err := repo.AssignTeam(ctx, 90, available, c.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if got.AssignedBy == nil || *got.AssignedBy != 90 {
		t.Fatalf("assigned_by not recorded: %+v", got)
	}
	if got.Status != domain.CaseAccepted || got.AcceptedTeamID == nil || *got.AcceptedTeamID != available {
		t.Fatalf("unexpected case: %+v", got)
	}
	if teamStatus(t, available) != domain.TeamBusy {
		t.Fatal("assigned team must be busy")
	}
}

func TestCaseRepo_ExpireIsIdempotent(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	c, _, _ := repo.CreateOrAppendSignal(ctx, 1, 21.0, 105.8, nil)

	done, err := repo.ExpireCase(ctx, c.ID)
	if err != nil || !done {
		t.Fatalf("first expire: done=%v err=%v", done, err)
	}

	done, err = repo.ExpireCase(ctx, c.ID)
	if err != nil {
		t.Fatalf("second expire: %v", err)
	}
	if done {
		t.Fatal("second expire must be a no-op")
	}

	got, _ := repo.Get(ctx, c.ID)
	if got.Status != domain.CaseCancelled {
		t.Fatalf("want cancelled, got %s", got.Status)
	}
}

func TestCaseRepo_ListPendingBetween(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	mkCase := func(userID int64, age string) int64 {
		var id int64
		err := testPool.QueryRow(ctx, `
			INSERT INTO cases_report (status, from_id, created_at)
			VALUES ('pending', $1, now() - $2::interval)
			RETURNING id`, userID, age).Scan(&id)
		if err != nil {
			t.Fatalf("seed case: %v", err)
		}
		return id
	}

	tooFresh := mkCase(1, "10 minutes")
	inWindow := mkCase(2, "2 hours")
	tooOld := mkCase(3, "25 hours")

	now := time.Now().UTC()
	got, err := repo.ListPendingBetween(ctx, now.Add(-24*time.Hour), now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != inWindow {
		t.Fatalf("want only the in-window case %d, got %+v (fresh=%d old=%d)", inWindow, got, tooFresh, tooOld)
	}
}

func TestUserRepo(t *testing.T) {
	truncateAll(t)
	repo := NewUserRepo(testPool, testLogger())
	ctx := context.Background()

	_, err := testPool.Exec(ctx, `
		INSERT INTO users (role, fcm_token) VALUES
			('user', 'tok-1'),
			('coordinator', NULL),
			('user', NULL);
		INSERT INTO trackings (tracker_id, target_id, status) VALUES
			(2, 1, 'accepted'),
			(3, 1, 'pending');
	`)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	token, err := repo.PushToken(ctx, 1)
	if err != nil || token != "tok-1" {
		t.Fatalf("push token: %q %v", token, err)
	}
	if _, err := repo.PushToken(ctx, 3); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("empty token: want ErrNotFound, got %v", err)
	}

	trackers, err := repo.Trackers(ctx, 1)
	if err != nil {
		t.Fatalf("trackers: %v", err)
	}
	if len(trackers) != 1 || trackers[0] != 2 {
		t.Fatalf("only accepted trackings count: %v", trackers)
	}

	coords, err := repo.CoordinatorIDs(ctx)
	if err != nil {
		t.Fatalf("coordinators: %v", err)
	}
	if len(coords) != 1 || coords[0] != 2 {
		t.Fatalf("coordinators: %v", coords)
	}
}

func TestCaseRepo_Stats(t *testing.T) {
	truncateAll(t)
	repo := NewCaseRepo(testPool, testLogger())
	ctx := context.Background()

	teamID := seedTeam(t, domain.TeamAvailable)

	c1, _, _ := repo.CreateOrAppendSignal(ctx, 1, 21.0, 105.8, nil)
	if _, err := repo.AcceptCase(ctx, teamID, c1.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, _, err := repo.CreateOrAppendSignal(ctx, 2, 21.0, 105.8, nil); err != nil {
		t.Fatalf("second case: %v", err)
	}

	stats, err := repo.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 2 || stats.Pending != 1 || stats.Accepted != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
