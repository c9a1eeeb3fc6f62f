package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/socialpulse/insights-api/internal/insights"
)

type ExportService interface {
	ExportReport(ctx context.Context, userID int64, kind insights.PeriodKind, anchor, category string) (string, error)
}

type exportService struct {
	as AnalyticsService
	r2 R2Service
}

func NewExportService(as AnalyticsService, r2 R2Service) ExportService {
	return &exportService{
		as: as,
		r2: r2,
	}
}

// ExportReport renders the period report to CSV, uploads it to R2 and
// returns the public URL.
func (s *exportService) ExportReport(ctx context.Context, userID int64, kind insights.PeriodKind, anchor, category string) (string, error) {
	report, err := s.as.PeriodReport(ctx, userID, kind, anchor, category)
	if err != nil {
		return "", err
	}

	content, err := renderReportCSV(report)
	if err != nil {
		return "", fmt.Errorf("error rendering report: %w", err)
	}

	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("exports/%s.csv", id)

	if err := s.r2.UploadToR2(ctx, key, content, "text/csv"); err != nil {
		return "", fmt.Errorf("error uploading report: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.r2.config.R2.PublicURL, key), nil
}

func renderReportCSV(report *insights.PeriodReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "current", "previous", "change_pct"},
		reportRow("likes", report.Aggregate.TotalLikes, report.PreviousAggregate.TotalLikes, report.Deltas.Likes),
		reportRow("comments", report.Aggregate.TotalComments, report.PreviousAggregate.TotalComments, report.Deltas.Comments),
		reportRow("shares", report.Aggregate.TotalShares, report.PreviousAggregate.TotalShares, report.Deltas.Shares),
		reportRow("reach", report.Aggregate.TotalReach, report.PreviousAggregate.TotalReach, report.Deltas.Reach),
		reportRow("follower_change", report.Aggregate.TotalFollowerChange, report.PreviousAggregate.TotalFollowerChange, report.Deltas.FollowerChange),
		reportRow("posts", report.Aggregate.TotalPosts, report.PreviousAggregate.TotalPosts, report.Deltas.Posts),
		{"score", formatFloat(report.Score.Score), report.Score.Rating, ""},
	}

	for _, tag := range report.Breakdowns.TopHashtags {
		rows = append(rows, []string{"hashtag:" + tag.Tag, strconv.Itoa(tag.Count), "", ""})
	}
	for _, slot := range report.Breakdowns.TimeSlots {
		rows = append(rows, []string{"slot:" + slot.Slot, strconv.Itoa(slot.Posts), formatFloat(slot.MeanEngagement), ""})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func reportRow(name string, current, previous int, delta float64) []string {
	return []string{name, strconv.Itoa(current), strconv.Itoa(previous), formatFloat(delta)}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
