package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stemsi/absensi-backend/internal/model"
)

// SummaryStore reads the global counters.
type SummaryStore interface {
	GetSummaryCounts(ctx context.Context, today string) (*model.AdminStats, error)
}

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	repo SummaryStore
	now  func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo SummaryStore) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// AdminStats returns user, class and attendance totals plus today's
// attendance count.
func (s *DashboardService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	stats, err := s.repo.GetSummaryCounts(ctx, Today(s.now()))
	if err != nil {
		return nil, fmt.Errorf("admin summary: %w", err)
	}
	return stats, nil
}
