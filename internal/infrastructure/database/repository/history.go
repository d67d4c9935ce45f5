package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fraudshield/internal/domain/models"
)

// HistoryRepository handles analysis history persistence
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// Record inserts one analysis outcome
func (r *HistoryRepository) Record(ctx context.Context, rec *models.AnalysisRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO analysis_history (id, device_id, analysis_type, score, is_threat, risk_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.DeviceID, rec.Type, rec.Score, rec.IsThreat, rec.RiskLevel, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record analysis: %w", err)
	}
	return nil
}

// ListByDevice returns a device's most recent analyses, newest first
func (r *HistoryRepository) ListByDevice(ctx context.Context, deviceID string, limit int) ([]models.AnalysisRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `
		SELECT id, device_id, analysis_type, score, is_threat, risk_level, created_at
		FROM analysis_history
		WHERE device_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Summary aggregates a device's scan counters, the last seven days of
// activity, and its ten most recent analyses
func (r *HistoryRepository) Summary(ctx context.Context, deviceID string) (*models.AnalysisSummary, error) {
	summary := &models.AnalysisSummary{DeviceID: deviceID}

	totalsQuery := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_threat),
		       COUNT(*) FILTER (WHERE analysis_type = $2)
		FROM analysis_history
		WHERE device_id = $1`

	err := r.pool.QueryRow(ctx, totalsQuery, deviceID, models.AnalysisTypeLink).
		Scan(&summary.TotalScans, &summary.ThreatsBlocked, &summary.LinksChecked)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate history: %w", err)
	}

	weeklyQuery := `
		SELECT date_trunc('day', created_at) AS day,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE is_threat)
		FROM analysis_history
		WHERE device_id = $1 AND created_at >= now() - INTERVAL '7 days'
		GROUP BY day
		ORDER BY day`

	rows, err := r.pool.Query(ctx, weeklyQuery, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekly activity: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day models.DailyActivity
		if err := rows.Scan(&day.Day, &day.Scans, &day.Threats); err != nil {
			return nil, fmt.Errorf("failed to scan weekly activity: %w", err)
		}
		summary.WeeklyActivity = append(summary.WeeklyActivity, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := r.ListByDevice(ctx, deviceID, 10)
	if err != nil {
		return nil, err
	}
	summary.Recent = recent

	return summary, nil
}

func scanRecords(rows pgx.Rows) ([]models.AnalysisRecord, error) {
	records := []models.AnalysisRecord{}
	for rows.Next() {
		var rec models.AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.DeviceID, &rec.Type, &rec.Score, &rec.IsThreat, &rec.RiskLevel, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
