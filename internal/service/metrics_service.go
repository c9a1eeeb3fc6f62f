package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/socialpulse/insights-api/internal/models"
	"github.com/socialpulse/insights-api/internal/repository"
	"github.com/socialpulse/insights-api/internal/transfer"
)

type MetricsService interface {
	CreateRecord(ctx context.Context, userID int64, mc *transfer.MetricCreation) (int64, error)
	List(ctx context.Context, userID int64) ([]*models.MetricRecord, error)
	Remove(ctx context.Context, userID, recordID int64) error
}

type metricsService struct {
	mr repository.MetricRecordRepository
	pr repository.PostRepository
}

func NewMetricsService(mr repository.MetricRecordRepository, pr repository.PostRepository) MetricsService {
	return &metricsService{
		mr: mr,
		pr: pr,
	}
}

// CreateRecord validates and stores one manually entered data point.
func (s *metricsService) CreateRecord(ctx context.Context, userID int64, mc *transfer.MetricCreation) (int64, error) {
	if mc == nil {
		err := errors.New("metric data is nil")
		slog.Error(err.Error())
		return 0, err
	}

	if mc.Likes < 0 || mc.Comments < 0 || mc.Shares < 0 || mc.Reach < 0 {
		err := errors.New("engagement counts cannot be negative")
		slog.Info(err.Error())
		return 0, err
	}

	if mc.Category != nil && !isValidCategory(*mc.Category) {
		err := fmt.Errorf("category %s is not allowed", *mc.Category)
		slog.Info(err.Error())
		return 0, err
	}

	publishedAt, err := time.Parse("2006-01-02T15:04", mc.PublishedAt)
	if err != nil {
		err = fmt.Errorf("invalid published time format: %w", err)
		slog.Error(err.Error())
		return 0, err
	}

	if mc.PublishedTime != nil {
		if _, err := time.Parse("15:04", *mc.PublishedTime); err != nil {
			err = fmt.Errorf("invalid time of day format: %w", err)
			slog.Info(err.Error())
			return 0, err
		}
	}

	if mc.PostID != nil {
		exists, err := s.pr.CheckByUserID(ctx, *mc.PostID, userID)
		if err != nil {
			return 0, fmt.Errorf("error checking post %d: %w", *mc.PostID, err)
		}
		if !exists {
			return 0, fmt.Errorf("post %d does not exist", *mc.PostID)
		}
	}

	record := models.MetricRecord{
		UserID:         userID,
		PostID:         mc.PostID,
		Likes:          mc.Likes,
		Comments:       mc.Comments,
		Shares:         mc.Shares,
		Reach:          mc.Reach,
		FollowerChange: mc.FollowerChange,
		PublishedAt:    publishedAt,
		PublishedTime:  mc.PublishedTime,
		Hashtags:       mc.Hashtags,
		Category:       mc.Category,
		Audience:       mc.Audience,
		ReachSource:    mc.ReachSource,
		Source:         models.RecordSourceManual,
	}

	recordID, err := s.mr.Create(ctx, &record)
	if err != nil {
		return 0, fmt.Errorf("error creating metric record: %w", err)
	}

	return recordID, nil
}

func (s *metricsService) List(ctx context.Context, userID int64) ([]*models.MetricRecord, error) {
	records, err := s.mr.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Error getting metric records")
	}
	return records, nil
}

func (s *metricsService) Remove(ctx context.Context, userID, recordID int64) error {
	var err error

	if userID == 0 {
		err = errors.New("User is not valid")
		slog.Info(err.Error())
		return err
	}

	if recordID == 0 {
		err = errors.New("record_id is not valid")
		slog.Info(err.Error())
		return err
	}

	isValid, err := s.mr.CheckByUserID(ctx, recordID, userID)
	if err != nil {
		return err
	}

	if !isValid {
		err = errors.New("Record doesn't exist")
		slog.Info(err.Error())
		return err
	}

	err = s.mr.Remove(ctx, recordID)
	if err != nil {
		return fmt.Errorf("Error removing metric record")
	}

	return nil
}

func isValidCategory(category string) bool {
	switch category {
	case models.CategoryFeed, models.CategoryReel, models.CategoryStory:
		return true
	}
	return false
}
