package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/absensi-backend/internal/model"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts retrieves the global counters for the admin dashboard.
// today is a YYYY-MM-DD date.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context, today string) (*model.AdminStats, error) {
	s := &model.AdminStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM classes),
			(SELECT COUNT(*) FROM attendance),
			(SELECT COUNT(*) FROM attendance WHERE date = $1::date)`,
		today,
	).Scan(&s.TotalUsers, &s.TotalClasses, &s.TotalAttendance, &s.TodayAttendance)
	if err != nil {
		return nil, err
	}
	return s, nil
}
