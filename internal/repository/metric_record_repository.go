package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/socialpulse/insights-api/internal/models"
)

type MetricRecordRepository interface {
	Create(ctx context.Context, record *models.MetricRecord) (int64, error)
	Upsert(ctx context.Context, record *models.MetricRecord) error
	GetByID(ctx context.Context, id int64) (*models.MetricRecord, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.MetricRecord, error)
	ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*models.MetricRecord, error)
	CheckByUserID(ctx context.Context, recordID, userID int64) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type metricRecordRepository struct {
	db *sql.DB
}

func NewMetricRecordRepository(db *sql.DB) MetricRecordRepository {
	return &metricRecordRepository{db: db}
}

const metricRecordColumns = `id, user_id, post_id, platform_media_id, likes, comments, shares, reach,
	follower_change, published_at, published_time, hashtags, category, audience, reach_source,
	source, created_at, updated_at`

func (r *metricRecordRepository) Create(ctx context.Context, record *models.MetricRecord) (int64, error) {
	query := `
		INSERT INTO metric_records (user_id, post_id, platform_media_id, likes, comments, shares,
			reach, follower_change, published_at, published_time, hashtags, category, audience,
			reach_source, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	audienceJSON, reachSourceJSON, err := marshalDistributions(record)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		record.UserID, record.PostID, record.PlatformMediaID,
		record.Likes, record.Comments, record.Shares, record.Reach, record.FollowerChange,
		record.PublishedAt, record.PublishedTime, pq.Array(record.Hashtags),
		record.Category, audienceJSON, reachSourceJSON, record.Source,
	).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

// Upsert inserts a synced record or refreshes its metrics when the
// platform media id was already imported, keeping sync idempotent.
func (r *metricRecordRepository) Upsert(ctx context.Context, record *models.MetricRecord) error {
	query := `
		INSERT INTO metric_records (user_id, post_id, platform_media_id, likes, comments, shares,
			reach, follower_change, published_at, published_time, hashtags, category, audience,
			reach_source, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id, platform_media_id) DO UPDATE
		SET likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			shares = EXCLUDED.shares,
			reach = EXCLUDED.reach,
			follower_change = EXCLUDED.follower_change,
			audience = EXCLUDED.audience,
			reach_source = EXCLUDED.reach_source,
			updated_at = CURRENT_TIMESTAMP
	`

	audienceJSON, reachSourceJSON, err := marshalDistributions(record)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		record.UserID, record.PostID, record.PlatformMediaID,
		record.Likes, record.Comments, record.Shares, record.Reach, record.FollowerChange,
		record.PublishedAt, record.PublishedTime, pq.Array(record.Hashtags),
		record.Category, audienceJSON, reachSourceJSON, record.Source,
	)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *metricRecordRepository) GetByID(ctx context.Context, id int64) (*models.MetricRecord, error) {
	query := `SELECT ` + metricRecordColumns + ` FROM metric_records WHERE id = $1`
	record, err := scanMetricRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return record, nil
}

func (r *metricRecordRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.MetricRecord, error) {
	query := `SELECT ` + metricRecordColumns + ` FROM metric_records WHERE user_id = $1 ORDER BY published_at DESC`
	return r.list(ctx, query, userID)
}

func (r *metricRecordRepository) ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*models.MetricRecord, error) {
	query := `SELECT ` + metricRecordColumns + ` FROM metric_records
		WHERE user_id = $1 AND published_at >= $2 AND published_at <= $3
		ORDER BY published_at`
	return r.list(ctx, query, userID, from, to)
}

func (r *metricRecordRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.MetricRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var records []*models.MetricRecord
	for rows.Next() {
		record, err := scanMetricRecord(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return records, nil
}

func (r *metricRecordRepository) CheckByUserID(ctx context.Context, recordID, userID int64) (bool, error) {
	query := "SELECT 1 FROM metric_records WHERE id = $1 AND user_id = $2"

	var result int
	err := r.db.QueryRowContext(ctx, query, recordID, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return result == 1, nil
}

func (r *metricRecordRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM metric_records WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMetricRecord(row rowScanner) (*models.MetricRecord, error) {
	var record models.MetricRecord
	var audienceJSON, reachSourceJSON []byte

	err := row.Scan(&record.ID, &record.UserID, &record.PostID, &record.PlatformMediaID,
		&record.Likes, &record.Comments, &record.Shares, &record.Reach, &record.FollowerChange,
		&record.PublishedAt, &record.PublishedTime, pq.Array(&record.Hashtags),
		&record.Category, &audienceJSON, &reachSourceJSON,
		&record.Source, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(audienceJSON) > 0 {
		record.Audience = &models.AudienceDistribution{}
		if err := json.Unmarshal(audienceJSON, record.Audience); err != nil {
			return nil, err
		}
	}
	if len(reachSourceJSON) > 0 {
		record.ReachSource = &models.ReachSourceDistribution{}
		if err := json.Unmarshal(reachSourceJSON, record.ReachSource); err != nil {
			return nil, err
		}
	}
	return &record, nil
}

func marshalDistributions(record *models.MetricRecord) ([]byte, []byte, error) {
	var audienceJSON, reachSourceJSON []byte
	var err error

	if record.Audience != nil {
		audienceJSON, err = json.Marshal(record.Audience)
		if err != nil {
			return nil, nil, err
		}
	}
	if record.ReachSource != nil {
		reachSourceJSON, err = json.Marshal(record.ReachSource)
		if err != nil {
			return nil, nil, err
		}
	}
	return audienceJSON, reachSourceJSON, nil
}
