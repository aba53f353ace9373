package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rescueHub/internal/domain"
	"rescueHub/pkg/e"

	"github.com/redis/go-redis/v9"
)

// PushQueue is the durable leg of the notification fan-out: one job per
// offline recipient, drained by the push sender worker.
type PushQueue struct {
	client *redis.Client
	key    string
}

func NewPushQueue(client *redis.Client, key string) *PushQueue {
	return &PushQueue{client: client, key: key}
}

func (q *PushQueue) Enqueue(ctx context.Context, job domain.PushJob) error {
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *PushQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.PushJob, error) {
	var job domain.PushJob

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return job, e.ErrQueueEmpty
		}
		return job, err
	}
	if len(res) < 2 {
		return job, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return job, err
	}
	return job, nil
}
