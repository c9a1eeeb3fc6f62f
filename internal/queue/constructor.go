package queue

import (
	"github.com/socialpulse/insights-api/internal/repository"
	"github.com/socialpulse/insights-api/internal/service"
)

type Queue struct {
	ac repository.SocialAccountRepository
	ig service.InstagramService
}

func NewQueue(
	ac repository.SocialAccountRepository,
	ig service.InstagramService) *Queue {
	return &Queue{
		ac: ac,
		ig: ig,
	}
}

const TaskTypeMetricsSync = "metrics:sync"

type MetricsSyncPayload struct {
	AccountID int64 `json:"account_id"`
}
