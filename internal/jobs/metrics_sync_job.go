package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"github.com/socialpulse/insights-api/internal/models"
	"github.com/socialpulse/insights-api/internal/queue"
	"github.com/socialpulse/insights-api/internal/repository"
	"github.com/socialpulse/insights-api/internal/service"
)

type MetricsSyncJob struct {
	sr          repository.SocialAccountRepository
	ig          service.InstagramService
	asynqClient *asynq.Client
}

func NewMetricsSyncJob(
	sr repository.SocialAccountRepository,
	ig service.InstagramService,
	asynqClient *asynq.Client) *MetricsSyncJob {
	return &MetricsSyncJob{
		sr:          sr,
		ig:          ig,
		asynqClient: asynqClient,
	}
}

// SyncMetrics enqueues one sync task per active account. The asynq
// worker does the actual Graph API pull.
func (c *MetricsSyncJob) SyncMetrics() {
	ctx := context.Background()

	accounts, err := c.sr.ListActive(ctx)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, acc := range accounts {
		err = queue.EnqueueSync(c.asynqClient, queue.MetricsSyncPayload{AccountID: acc.ID})
		if err != nil {
			slog.Info("Unable to enqueue metrics sync")
		}
	}
}

func (c *MetricsSyncJob) RefreshTokens() {
	ctx := context.Background()

	currentTime := time.Now()
	timeInOneHour := currentTime.Add(time.Hour)

	accounts, err := c.sr.ListByTokenExpiry(ctx, currentTime, timeInOneHour)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, acc := range accounts {

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *models.SocialAccount) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if acc.Platform != "instagram" {
				return
			}

			err := c.ig.RefreshInstagramToken(ctx, acc.UserID, acc.RefreshToken)
			if err != nil {
				slog.Info("Unable to refresh tokens for Instagram")
			}
		}(acc)
	}

	wg.Wait()
}
