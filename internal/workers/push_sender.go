package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"rescueHub/internal/config"
	"rescueHub/internal/domain"
	"rescueHub/pkg/e"
)

type PushQueueConsumer interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.PushJob, error)
}

type TokenSource interface {
	PushToken(ctx context.Context, userID int64) (string, error)
}

// PushSender drains the durable notification queue and delivers each job
// to the push provider. Jobs for recipients without a registered token
// are dropped, not retried.
type PushSender struct {
	logger *slog.Logger
	cfg    config.PushConfig
	queue  PushQueueConsumer
	tokens TokenSource
	http   *http.Client
}

func NewPushSender(logger *slog.Logger, cfg config.PushConfig, queue PushQueueConsumer, tokens TokenSource) *PushSender {
	return &PushSender{
		logger: logger,
		cfg:    cfg,
		queue:  queue,
		tokens: tokens,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *PushSender) Run(ctx context.Context) {
	s.logger.Info("pushSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("pushSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		job, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.deliver(ctx, job)
	}
}

type pushMessage struct {
	To       string            `json:"to"`
	Priority string            `json:"priority"`
	Data     map[string]string `json:"data"`
}

func (s *PushSender) deliver(ctx context.Context, job domain.PushJob) {
	if s.cfg.Disabled {
		s.logger.Debug("push disabled, dropping job", slog.String("job_id", job.ID))
		return
	}

	token, err := s.tokens.PushToken(ctx, job.ActorID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			s.logger.Warn("no push token for recipient",
				slog.Int64("actor_id", job.ActorID),
				slog.String("kind", string(job.Kind)),
			)
			return
		}
		s.logger.Error("push token lookup failed",
			slog.Int64("actor_id", job.ActorID),
			slog.Any("error", err),
		)
		return
	}

	data := make(map[string]string, len(job.Data)+1)
	for k, v := range job.Data {
		data[k] = v
	}
	data["type"] = string(job.Kind)

	s.sendWithRetry(ctx, pushMessage{To: token, Priority: "high", Data: data}, job.ID)
}

func (s *PushSender) sendWithRetry(ctx context.Context, msg pushMessage, jobID string) {
	const maxRetries = 3

	body, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("marshal push message failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create push request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")
		if s.cfg.APIKey != "" {
			req.Header.Set("Authorization", "key="+s.cfg.APIKey)
		}

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("push delivery failed",
			slog.String("job_id", jobID),
			slog.Int("attempt", attempt),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
