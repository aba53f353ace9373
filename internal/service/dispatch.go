package service

import (
	"context"
	"fmt"

	"log/slog"

	"rescueHub/internal/domain"
	"rescueHub/pkg/e"
)

// Dispatcher drives the case lifecycle. Every transition is a conditional
// write in the repository; the dispatcher adds the service-level guards
// and fans notifications out after the transition has committed. A
// notification failure never undoes a committed transition.
type Dispatcher struct {
	cases    CaseRepository
	signals  SignalRepository
	users    UserRepository
	geo      *GeoMatcher
	notifier Notifier
	logger   *slog.Logger
}

func NewDispatcher(cases CaseRepository, signals SignalRepository, users UserRepository, geo *GeoMatcher, notifier Notifier, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		cases:    cases,
		signals:  signals,
		users:    users,
		geo:      geo,
		notifier: notifier,
		logger:   logger,
	}
}

// SendSignal records a distress signal. If the reporter already has an
// open case the signal joins it, otherwise a new case is created. Matched
// teams, coordinators and the reporter's trackers are notified; a zero
// match still creates the case.
func (d *Dispatcher) SendSignal(ctx context.Context, userID int64, req domain.SendSignalRequest) (*domain.SendSignalResponse, error) {
	const op = "service.dispatch.SendSignal"

	if err := validateCoords(req.Latitude, req.Longitude); err != nil {
		return nil, e.Wrap(op, err)
	}

	teamIDs, err := d.geo.FindTeams(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(teamIDs) == 0 {
		d.logger.Warn("signal matched no teams",
			slog.Int64("user_id", userID),
		)
	}

	cs, sig, err := d.cases.CreateOrAppendSignal(ctx, userID, req.Latitude, req.Longitude, teamIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload := domain.SOSRequestPayload{
		CaseID:    cs.ID,
		SignalID:  sig.ID,
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if len(teamIDs) > 0 {
		d.notifier.Notify(ctx, teamIDs, payload)
	}
	d.notifier.Notify(ctx, d.watchers(ctx, userID), payload)

	return &domain.SendSignalResponse{
		CaseID:          cs.ID,
		SignalID:        sig.ID,
		NotifiedTeamIDs: teamIDs,
	}, nil
}

// Accept claims a pending case for a team. At most one team wins; the
// losers get e.ErrConflict.
func (d *Dispatcher) Accept(ctx context.Context, teamID, caseID int64) (*domain.Case, error) {
	const op = "service.dispatch.Accept"

	cs, err := d.cases.AcceptCase(ctx, teamID, caseID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload := domain.CaseAcceptedPayload{CaseID: cs.ID, TeamID: teamID}
	d.notifier.Notify(ctx, append([]int64{cs.FromID}, d.watchers(ctx, cs.FromID)...), payload)

	return cs, nil
}

// Reject records that a team declined a case. The case stays pending; a
// rejection is final for that team and is never re-matched to it.
func (d *Dispatcher) Reject(ctx context.Context, teamID, caseID int64) (*domain.Case, error) {
	const op = "service.dispatch.Reject"

	cs, err := d.cases.RejectCase(ctx, teamID, caseID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	d.notifier.Notify(ctx, d.coordinators(ctx), domain.CaseRejectedPayload{CaseID: cs.ID, TeamID: teamID})

	return cs, nil
}

// ChangeStatus moves an accepted case to ready. Completion and
// cancellation have dedicated operations and are rejected here before any
// write; so is a transition to the status the case already has.
func (d *Dispatcher) ChangeStatus(ctx context.Context, teamID int64, req domain.ChangeStatusRequest) (*domain.Case, error) {
	const op = "service.dispatch.ChangeStatus"

	if !req.NewStatus.Valid() {
		return nil, e.Wrap(op, fmt.Errorf("unknown status %q: %w", req.NewStatus, e.ErrInvalidInput))
	}
	switch req.NewStatus {
	case domain.CaseCompleted, domain.CaseCancelled:
		return nil, e.Wrap(op, fmt.Errorf("status %q requires its dedicated operation: %w", req.NewStatus, e.ErrConflict))
	case domain.CaseReady:
	default:
		return nil, e.Wrap(op, fmt.Errorf("cannot move a case to %q: %w", req.NewStatus, e.ErrConflict))
	}

	cs, err := d.cases.MarkReady(ctx, teamID, req.CaseID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload := domain.CaseStatusUpdatedPayload{CaseID: cs.ID, Status: cs.Status}
	d.notifier.Notify(ctx, append([]int64{cs.FromID}, d.watchers(ctx, cs.FromID)...), payload)

	return cs, nil
}

// Cancel closes an accepted or ready case with a reason and frees the
// owning team.
func (d *Dispatcher) Cancel(ctx context.Context, teamID int64, req domain.CancelCaseRequest) (*domain.Case, error) {
	const op = "service.dispatch.Cancel"

	cs, err := d.cases.CancelCase(ctx, teamID, req.CaseID, req.Reason)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload := domain.CaseCancelledPayload{CaseID: cs.ID, TeamID: teamID, Reason: req.Reason}
	d.notifier.Notify(ctx, append([]int64{cs.FromID}, d.watchers(ctx, cs.FromID)...), payload)

	return cs, nil
}

// Complete closes a ready case with an outcome description and frees the
// owning team.
func (d *Dispatcher) Complete(ctx context.Context, teamID int64, req domain.CompleteCaseRequest) (*domain.Case, error) {
	const op = "service.dispatch.Complete"

	cs, err := d.cases.CompleteCase(ctx, teamID, req.CaseID, req.Description)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload := domain.CaseCompletedPayload{CaseID: cs.ID, TeamID: teamID, Description: req.Description}
	d.notifier.Notify(ctx, append([]int64{cs.FromID}, d.watchers(ctx, cs.FromID)...), payload)

	return cs, nil
}

// MarkSafe lets the reporter declare themselves safe while the case is
// still in flight. Only the reporter may do it; the owning team, if any,
// is freed and told.
func (d *Dispatcher) MarkSafe(ctx context.Context, userID, caseID int64) (*domain.Case, error) {
	const op = "service.dispatch.MarkSafe"

	current, err := d.cases.Get(ctx, caseID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if current.FromID != userID {
		return nil, e.Wrap(op, fmt.Errorf("case %d belongs to another reporter: %w", caseID, e.ErrForbidden))
	}

	cs, err := d.cases.MarkSafe(ctx, caseID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload := domain.CaseSafePayload{CaseID: cs.ID, UserID: userID}
	recipients := d.watchers(ctx, userID)
	if current.AcceptedTeamID != nil {
		recipients = append(recipients, *current.AcceptedTeamID)
	}
	d.notifier.Notify(ctx, recipients, payload)

	return cs, nil
}

// AssignTeam lets a coordinator hand a pending case to a specific
// available team, bypassing the accept race.
func (d *Dispatcher) AssignTeam(ctx context.Context, coordinatorID int64, req domain.AssignTeamRequest) (*domain.Case, error) {
	const op = "service.dispatch.AssignTeam"

	cs, err := d.cases.AssignTeam(ctx, coordinatorID, req.TeamID, req.CaseID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload := domain.CaseAssignedPayload{CaseID: cs.ID, TeamID: req.TeamID, AssignedBy: coordinatorID}
	d.notifier.Notify(ctx, []int64{req.TeamID, cs.FromID}, payload)

	return cs, nil
}

func (d *Dispatcher) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	const op = "service.dispatch.GetCase"

	cs, err := d.cases.Get(ctx, caseID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return cs, nil
}

func (d *Dispatcher) ListSignals(ctx context.Context, caseID int64) ([]*domain.Signal, error) {
	const op = "service.dispatch.ListSignals"

	sigs, err := d.signals.ListByCase(ctx, caseID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return sigs, nil
}

func (d *Dispatcher) Stats(ctx context.Context) (*domain.CaseStats, error) {
	const op = "service.dispatch.Stats"

	stats, err := d.cases.CountByStatus(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return stats, nil
}

// watchers returns everyone following the reporter: coordinators plus the
// reporter's accepted trackers. Lookup failures shrink the audience, they
// never fail the transition.
func (d *Dispatcher) watchers(ctx context.Context, reporterID int64) []int64 {
	out := d.coordinators(ctx)

	trackers, err := d.users.Trackers(ctx, reporterID)
	if err != nil {
		d.logger.Error("tracker lookup failed",
			slog.Int64("user_id", reporterID),
			slog.Any("error", err),
		)
		return out
	}
	return append(out, trackers...)
}

func (d *Dispatcher) coordinators(ctx context.Context) []int64 {
	ids, err := d.users.CoordinatorIDs(ctx)
	if err != nil {
		d.logger.Error("coordinator lookup failed", slog.Any("error", err))
		return nil
	}
	return ids
}

func validateCoords(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("lat=%f lng=%f: %w", lat, lng, e.ErrInvalidCoordinates)
	}
	return nil
}
