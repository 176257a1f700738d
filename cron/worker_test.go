package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"resourcecal/services/availability"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ── Mocks ──

type mockService struct {
	availability.AvailabilityService
	err      error
	released []string
}

func (m *mockService) ReleaseBlockedTime(_ context.Context, resourceID availability.ResourceID, batchID availability.BatchID) error {
	m.released = append(m.released, resourceID.String()+"/"+batchID.String())
	return m.err
}

type mockEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
}

func (m *mockEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.tasks = append(m.tasks, task)
	m.opts = append(m.opts, opts)
	return &asynq.TaskInfo{}, nil
}

// ── Tests ──

func TestHandleReleaseTask(t *testing.T) {
	task, err := NewReleaseTask("r1", "b1")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		svcErr  error
		wantErr bool
	}{
		{"released", nil, false},
		{"already released", availability.ErrBlockadeNotFound, false},
		{"store failure", errors.New("mongo down"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{err: tc.svcErr}
			err := HandleReleaseTask(svc, zap.NewNop())(context.Background(), task)
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if len(svc.released) != 1 || svc.released[0] != "r1/b1" {
				t.Errorf("released = %v", svc.released)
			}
		})
	}
}

func TestHandleReleaseTask_BadPayload(t *testing.T) {
	svc := &mockService{}
	err := HandleReleaseTask(svc, zap.NewNop())(context.Background(), asynq.NewTask(TypeBlockadeRelease, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("err = %v, want SkipRetry", err)
	}
	if len(svc.released) != 0 {
		t.Error("released despite bad payload")
	}
}

func TestAsynqReleaseScheduler_ScheduleRelease(t *testing.T) {
	q := &mockEnqueuer{}
	s := &AsynqReleaseScheduler{Client: q}
	if err := s.ScheduleRelease(context.Background(), "r1", "b1", time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("ScheduleRelease: %v", err)
	}
	if len(q.tasks) != 1 || q.tasks[0].Type() != TypeBlockadeRelease {
		t.Fatalf("tasks = %v", q.tasks)
	}
	if string(q.tasks[0].Payload()) != `{"resourceId":"r1","batchId":"b1"}` {
		t.Errorf("payload = %s", q.tasks[0].Payload())
	}
	if len(q.opts[0]) != 3 {
		t.Errorf("options = %d, want 3", len(q.opts[0]))
	}
}
