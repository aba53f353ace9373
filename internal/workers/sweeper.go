package workers

import (
	"context"
	"time"

	"log/slog"

	"rescueHub/internal/domain"
)

// clockOffset matches the UTC+7 clock the historical case data was
// written with. Both sides of every age comparison are shifted by it.
const clockOffset = 7 * time.Hour

const (
	staleAfter   = time.Hour
	sweepHorizon = 24 * time.Hour

	remindAfter  = 10 * time.Minute
	remindBefore = time.Hour
)

type CaseSweepStore interface {
	ListPendingBetween(ctx context.Context, from, to time.Time) ([]*domain.Case, error)
	ExpireCase(ctx context.Context, caseID int64) (bool, error)
}

type SignalReader interface {
	Get(ctx context.Context, id int64) (*domain.Signal, error)
}

type CoordinatorSource interface {
	CoordinatorIDs(ctx context.Context) ([]int64, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipients []int64, payload domain.NotificationPayload)
}

// Sweeper force-cancels pending cases nobody answered. It only looks at
// cases created between 24 hours and 1 hour ago; anything older falls off
// the scan window and is left alone. The cancel is a conditional write on
// status, so several instances can run the sweep concurrently.
type Sweeper struct {
	cases        CaseSweepStore
	signals      SignalReader
	coordinators CoordinatorSource
	notifier     Notifier
	interval     time.Duration
	logger       *slog.Logger
}

func NewSweeper(cases CaseSweepStore, signals SignalReader, coordinators CoordinatorSource, notifier Notifier, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		cases:        cases,
		signals:      signals,
		coordinators: coordinators,
		notifier:     notifier,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("sweeper started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := time.Now().UTC()

	pending, err := s.cases.ListPendingBetween(ctx, now.Add(-sweepHorizon), now.Add(-staleAfter))
	if err != nil {
		s.logger.Error("pending scan failed", slog.Any("error", err))
		return
	}

	for _, cs := range pending {
		s.inspect(ctx, cs, now)
	}
}

func (s *Sweeper) inspect(ctx context.Context, cs *domain.Case, now time.Time) {
	lastID, ok := cs.LastSignalID()
	if !ok {
		// a case without signals should not exist; skip rather than guess
		s.logger.Warn("pending case has no signals", slog.Int64("case_id", cs.ID))
		return
	}

	sig, err := s.signals.Get(ctx, lastID)
	if err != nil {
		s.logger.Error("last signal lookup failed",
			slog.Int64("case_id", cs.ID),
			slog.Int64("signal_id", lastID),
			slog.Any("error", err),
		)
		return
	}

	age := now.Add(clockOffset).Sub(sig.CreatedAt.Add(clockOffset))
	switch {
	case age > staleAfter:
		s.expire(ctx, cs)
	case age > remindAfter && age < remindBefore:
		s.remind(ctx, cs)
	}
}

func (s *Sweeper) expire(ctx context.Context, cs *domain.Case) {
	done, err := s.cases.ExpireCase(ctx, cs.ID)
	if err != nil {
		s.logger.Error("expire failed", slog.Int64("case_id", cs.ID), slog.Any("error", err))
		return
	}
	if !done {
		// another instance got there first
		return
	}

	s.logger.Info("stale case cancelled", slog.Int64("case_id", cs.ID))

	recipients := []int64{cs.FromID}
	if ids, err := s.coordinators.CoordinatorIDs(ctx); err == nil {
		recipients = append(recipients, ids...)
	} else {
		s.logger.Error("coordinator lookup failed", slog.Any("error", err))
	}
	s.notifier.Notify(ctx, recipients, domain.CaseCancelledPayload{
		CaseID: cs.ID,
		Reason: "no rescue team responded in time",
	})
}

func (s *Sweeper) remind(ctx context.Context, cs *domain.Case) {
	ids, err := s.coordinators.CoordinatorIDs(ctx)
	if err != nil {
		s.logger.Error("coordinator lookup failed", slog.Any("error", err))
		return
	}
	if len(ids) == 0 {
		return
	}
	s.notifier.Notify(ctx, ids, domain.CaseReminderPayload{CaseID: cs.ID})
}
