package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stemsi/absensi-backend/internal/model"
	"golang.org/x/sync/errgroup"
)

// RecentAttendanceLimit is the length of the student's history list.
const RecentAttendanceLimit = 10

// StudentClassStore reads a student's enrollments.
type StudentClassStore interface {
	CountByStudent(ctx context.Context, studentID int) (int, error)
}

// StudentAttendanceStore reads a student's attendance.
type StudentAttendanceStore interface {
	CountByStudent(ctx context.Context, studentID int) (int, error)
	CountByStudentStatus(ctx context.Context, studentID int, status model.AttendanceStatus, since string) (int, error)
	RecentByStudent(ctx context.Context, studentID, limit int) ([]model.StudentAttendance, error)
}

// StudentService builds the student dashboard.
type StudentService struct {
	classes    StudentClassStore
	attendance StudentAttendanceStore
	now        func() time.Time
}

// NewStudentService creates a new StudentService.
func NewStudentService(classes StudentClassStore, attendance StudentAttendanceStore) *StudentService {
	return &StudentService{classes: classes, attendance: attendance, now: time.Now}
}

// RecentAttendance returns the student's latest records, newest first.
func (s *StudentService) RecentAttendance(ctx context.Context, studentID int) ([]model.StudentAttendance, error) {
	records, err := s.attendance.RecentByStudent(ctx, studentID, RecentAttendanceLimit)
	if err != nil {
		return nil, fmt.Errorf("recent attendance: %w", err)
	}
	if records == nil {
		records = []model.StudentAttendance{}
	}
	return records, nil
}

// Stats returns enrollment count, overall attendance rate and the number
// of present days since the first of the current month.
func (s *StudentService) Stats(ctx context.Context, studentID int) (*model.StudentStats, error) {
	monthStart := MonthStart(s.now())

	var classes, total, present, thisMonth int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if classes, err = s.classes.CountByStudent(gctx, studentID); err != nil {
			return fmt.Errorf("count enrollments: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if total, err = s.attendance.CountByStudent(gctx, studentID); err != nil {
			return fmt.Errorf("count attendance: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if present, err = s.attendance.CountByStudentStatus(gctx, studentID, model.StatusPresent, ""); err != nil {
			return fmt.Errorf("count present: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if thisMonth, err = s.attendance.CountByStudentStatus(gctx, studentID, model.StatusPresent, monthStart); err != nil {
			return fmt.Errorf("count present this month: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.StudentStats{
		TotalClasses:        classes,
		AttendanceRate:      AttendanceRate(present, total),
		ThisMonthAttendance: thisMonth,
	}, nil
}
