package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"rescueHub/internal/domain"
	"rescueHub/internal/service"
	"rescueHub/pkg/e"

	mock_service "rescueHub/internal/service/mocks"
)

type dispatchFixture struct {
	cases    *mock_service.MockCaseRepository
	signals  *mock_service.MockSignalRepository
	users    *mock_service.MockUserRepository
	teams    *mock_service.MockTeamRepository
	notifier *mock_service.MockNotifier
	d        *service.Dispatcher
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &dispatchFixture{
		cases:    mock_service.NewMockCaseRepository(ctrl),
		signals:  mock_service.NewMockSignalRepository(ctrl),
		users:    mock_service.NewMockUserRepository(ctrl),
		teams:    mock_service.NewMockTeamRepository(ctrl),
		notifier: mock_service.NewMockNotifier(ctrl),
	}
	geo := service.NewGeoMatcher(f.teams, discardLogger())
	f.d = service.NewDispatcher(f.cases, f.signals, f.users, geo, f.notifier, discardLogger())
	return f
}

func TestDispatcher_SendSignal_MatchedTeamsNotified(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)
	ctx := context.Background()

	f.teams.EXPECT().ListAvailable(gomock.Any()).Return([]*domain.Team{
		{ID: 5, Status: domain.TeamAvailable, Latitude: baseLat, Longitude: baseLng},
	}, nil)

	f.cases.EXPECT().
		CreateOrAppendSignal(gomock.Any(), int64(1), baseLat, baseLng, []int64{5}).
		Return(&domain.Case{ID: 10, Status: domain.CasePending, FromID: 1, SosList: []int64{100}},
			&domain.Signal{ID: 100, UserID: 1, CaseID: 10}, nil)

	f.users.EXPECT().CoordinatorIDs(gomock.Any()).Return([]int64{90}, nil)
	f.users.EXPECT().Trackers(gomock.Any(), int64(1)).Return([]int64{40}, nil)

	// one fan-out to teams, one to coordinators+trackers
	f.notifier.EXPECT().Notify(gomock.Any(), []int64{5}, gomock.Any())
	f.notifier.EXPECT().Notify(gomock.Any(), []int64{90, 40}, gomock.Any())

	resp, err := f.d.SendSignal(ctx, 1, domain.SendSignalRequest{Latitude: baseLat, Longitude: baseLng})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.CaseID != 10 || resp.SignalID != 100 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.NotifiedTeamIDs) != 1 || resp.NotifiedTeamIDs[0] != 5 {
		t.Fatalf("unexpected teams: %v", resp.NotifiedTeamIDs)
	}
}

func TestDispatcher_SendSignal_NoTeamsStillCreatesCase(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	f.teams.EXPECT().ListAvailable(gomock.Any()).Return(nil, nil)

	f.cases.EXPECT().
		CreateOrAppendSignal(gomock.Any(), int64(1), baseLat, baseLng, nil).
		Return(&domain.Case{ID: 11, Status: domain.CasePending, FromID: 1, SosList: []int64{101}},
			&domain.Signal{ID: 101, UserID: 1, CaseID: 11}, nil)

	f.users.EXPECT().CoordinatorIDs(gomock.Any()).Return([]int64{90}, nil)
	f.users.EXPECT().Trackers(gomock.Any(), int64(1)).Return(nil, nil)
	f.notifier.EXPECT().Notify(gomock.Any(), []int64{90}, gomock.Any())

	resp, err := f.d.SendSignal(context.Background(), 1, domain.SendSignalRequest{Latitude: baseLat, Longitude: baseLng})
	if err != nil {
		t.Fatalf("zero matched teams must not be an error: %v", err)
	}
	if resp.CaseID != 11 {
		t.Fatalf("case must still be created: %+v", resp)
	}
	if len(resp.NotifiedTeamIDs) != 0 {
		t.Fatalf("no teams should be notified: %v", resp.NotifiedTeamIDs)
	}
}

func TestDispatcher_SendSignal_BadCoordinates(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	_, err := f.d.SendSignal(context.Background(), 1, domain.SendSignalRequest{Latitude: 91, Longitude: 0})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("want ErrInvalidCoordinates, got %v", err)
	}
}

func TestDispatcher_Accept_ConflictPassesThrough(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	f.cases.EXPECT().
		AcceptCase(gomock.Any(), int64(5), int64(10)).
		Return(nil, e.Wrap("storage.pg.case.AcceptCase", e.ErrConflict))

	_, err := f.d.Accept(context.Background(), 5, 10)
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestDispatcher_Accept_NotifiesReporterAndWatchers(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	teamID := int64(5)
	f.cases.EXPECT().
		AcceptCase(gomock.Any(), teamID, int64(10)).
		Return(&domain.Case{ID: 10, Status: domain.CaseAccepted, FromID: 1, AcceptedTeamID: &teamID}, nil)

	f.users.EXPECT().CoordinatorIDs(gomock.Any()).Return([]int64{90}, nil)
	f.users.EXPECT().Trackers(gomock.Any(), int64(1)).Return([]int64{40}, nil)
	f.notifier.EXPECT().Notify(gomock.Any(), []int64{1, 90, 40}, gomock.Any())

	cs, err := f.d.Accept(context.Background(), teamID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cs.Status != domain.CaseAccepted {
		t.Fatalf("unexpected status: %s", cs.Status)
	}
}

func TestDispatcher_ChangeStatus_DedicatedOpsAlwaysRejected(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.CaseStatus{domain.CaseCompleted, domain.CaseCancelled} {
		f := newDispatchFixture(t)

		// no repo call may happen
		_, err := f.d.ChangeStatus(context.Background(), 5, domain.ChangeStatusRequest{CaseID: 10, NewStatus: status})
		if !errors.Is(err, e.ErrConflict) {
			t.Fatalf("status %s: want ErrConflict, got %v", status, err)
		}
	}
}

func TestDispatcher_ChangeStatus_OnlyReadyAllowed(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	_, err := f.d.ChangeStatus(context.Background(), 5, domain.ChangeStatusRequest{CaseID: 10, NewStatus: domain.CasePending})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}

	_, err = f.d.ChangeStatus(context.Background(), 5, domain.ChangeStatusRequest{CaseID: 10, NewStatus: "bogus"})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestDispatcher_ChangeStatus_ReadyGoesThrough(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	teamID := int64(5)
	f.cases.EXPECT().
		MarkReady(gomock.Any(), teamID, int64(10)).
		Return(&domain.Case{ID: 10, Status: domain.CaseReady, FromID: 1, AcceptedTeamID: &teamID}, nil)

	f.users.EXPECT().CoordinatorIDs(gomock.Any()).Return(nil, nil)
	f.users.EXPECT().Trackers(gomock.Any(), int64(1)).Return(nil, nil)
	f.notifier.EXPECT().Notify(gomock.Any(), []int64{1}, gomock.Any())

	cs, err := f.d.ChangeStatus(context.Background(), teamID, domain.ChangeStatusRequest{CaseID: 10, NewStatus: domain.CaseReady})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cs.Status != domain.CaseReady {
		t.Fatalf("unexpected status: %s", cs.Status)
	}
}

func TestDispatcher_MarkSafe_OnlyReporter(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	f.cases.EXPECT().
		Get(gomock.Any(), int64(10)).
		Return(&domain.Case{ID: 10, Status: domain.CasePending, FromID: 1}, nil)

	_, err := f.d.MarkSafe(context.Background(), 2, 10)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestDispatcher_MarkSafe_FreedTeamNotified(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	teamID := int64(5)
	f.cases.EXPECT().
		Get(gomock.Any(), int64(10)).
		Return(&domain.Case{ID: 10, Status: domain.CaseAccepted, FromID: 1, AcceptedTeamID: &teamID}, nil)
	f.cases.EXPECT().
		MarkSafe(gomock.Any(), int64(10)).
		Return(&domain.Case{ID: 10, Status: domain.CaseSafe, FromID: 1}, nil)

	f.users.EXPECT().CoordinatorIDs(gomock.Any()).Return([]int64{90}, nil)
	f.users.EXPECT().Trackers(gomock.Any(), int64(1)).Return(nil, nil)
	f.notifier.EXPECT().Notify(gomock.Any(), []int64{90, 5}, gomock.Any())

	cs, err := f.d.MarkSafe(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cs.Status != domain.CaseSafe {
		t.Fatalf("unexpected status: %s", cs.Status)
	}
}

func TestDispatcher_AssignTeam(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	teamID := int64(5)
	coordinatorID := int64(90)
	f.cases.EXPECT().
		AssignTeam(gomock.Any(), coordinatorID, teamID, int64(10)).
		Return(&domain.Case{ID: 10, Status: domain.CaseAccepted, FromID: 1, AcceptedTeamID: &teamID, AssignedBy: &coordinatorID}, nil)

	f.notifier.EXPECT().Notify(gomock.Any(), []int64{5, 1}, gomock.Any())

	cs, err := f.d.AssignTeam(context.Background(), coordinatorID, domain.AssignTeamRequest{CaseID: 10, TeamID: teamID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cs.AssignedBy == nil || *cs.AssignedBy != coordinatorID {
		t.Fatalf("assigned_by not recorded: %+v", cs)
	}
}
