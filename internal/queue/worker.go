package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/hibiken/asynq"
)

func (j *Queue) HandleMetricsSyncTask(ctx context.Context, task *asynq.Task) error {
	var payload MetricsSyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return j.SyncAccount(ctx, payload.AccountID)
}

func (j *Queue) SyncAccount(ctx context.Context, accountID int64) error {
	account, err := j.ac.GetByID(ctx, accountID)
	if err != nil {
		log.Printf("Error retrieving social account for AccountID %d: %v", accountID, err)
		return err
	}
	if account == nil {
		log.Printf("Social account for AccountID %d is nil", accountID)
		return errors.New("social account not found")
	}

	if err := j.ig.SyncAccountMetrics(ctx, account); err != nil {
		log.Printf("Error syncing metrics for AccountID %d: %v", accountID, err)
		return err
	}

	return nil
}
