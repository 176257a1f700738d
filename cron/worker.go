package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resourcecal/config"
	"resourcecal/services/availability"
	"resourcecal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBlockadeRelease = "blockade:release"

// ReleasePayload identifies the batch to release.
type ReleasePayload struct {
	ResourceID string `json:"resourceId"`
	BatchID    string `json:"batchId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReleaseWorker runs the release worker in the background and returns the
// server so the caller can shut it down.
func InitReleaseWorker(svc availability.AvailabilityService) *asynq.Server {
	logger := utils.GetLogger()
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBlockadeRelease, HandleReleaseTask(svc, logger))

	go func() {
		logger.Info("starting release worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil || errors.Is(err, asynq.ErrServerClosed) {
				return
			}
			logger.Error("release worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("release worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleReleaseTask releases the batch of a task. A batch that is already gone
// was released by hand, so the task succeeds.
func HandleReleaseTask(svc availability.AvailabilityService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReleasePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid release payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		err := svc.ReleaseBlockedTime(ctx, availability.ResourceID(p.ResourceID), availability.BatchID(p.BatchID))
		if errors.Is(err, availability.ErrBlockadeNotFound) {
			logger.Debug("hold already released", zap.String("resourceId", p.ResourceID), zap.String("batchId", p.BatchID))
			return nil
		}
		if err != nil {
			logger.Warn("hold release failed", zap.String("resourceId", p.ResourceID), zap.String("batchId", p.BatchID), zap.Error(err))
			return err
		}
		logger.Info("hold released", zap.String("resourceId", p.ResourceID), zap.String("batchId", p.BatchID))
		return nil
	}
}
