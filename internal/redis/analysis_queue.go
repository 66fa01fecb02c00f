package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

// AnalysisQueue hands anomaly-analysis jobs from the request path to the
// background worker. LPush on produce, BRPop on consume, so jobs survive the
// HTTP request that triggered them.
type AnalysisQueue struct {
	client *redis.Client
	key    string
}

func NewAnalysisQueue(client *redis.Client, key string) *AnalysisQueue {
	return &AnalysisQueue{client: client, key: key}
}

func (q *AnalysisQueue) Enqueue(ctx context.Context, job domain.AnalysisJob) error {
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AnalysisQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.AnalysisJob, error) {
	var job domain.AnalysisJob

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
