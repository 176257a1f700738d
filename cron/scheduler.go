package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqReleaseScheduler enqueues delayed batch releases.
type AsynqReleaseScheduler struct {
	Client Enqueuer
}

// NewReleaseScheduler connects to the queue database.
func NewReleaseScheduler() (*AsynqReleaseScheduler, *asynq.Client) {
	client := asynq.NewClient(redisOpts())
	return &AsynqReleaseScheduler{Client: client}, client
}

// ScheduleRelease enqueues a release of batchID at at. The task id is derived
// from the batch so a batch is never queued twice.
func (s *AsynqReleaseScheduler) ScheduleRelease(ctx context.Context, resourceID, batchID string, at time.Time) error {
	task, err := NewReleaseTask(resourceID, batchID)
	if err != nil {
		return err
	}
	_, err = s.Client.EnqueueContext(ctx, task,
		asynq.ProcessAt(at),
		asynq.TaskID("release:"+batchID),
		asynq.MaxRetry(5),
	)
	if err != nil {
		return fmt.Errorf("enqueue release of %s: %w", batchID, err)
	}
	return nil
}

func NewReleaseTask(resourceID, batchID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ReleasePayload{ResourceID: resourceID, BatchID: batchID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBlockadeRelease, payload), nil
}
