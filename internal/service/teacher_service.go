package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stemsi/absensi-backend/internal/model"
	"golang.org/x/sync/errgroup"
)

// maxParallelQueries bounds the per-class count queries of one request.
const maxParallelQueries = 8

// TeacherClassStore reads the classes a teacher owns.
type TeacherClassStore interface {
	ListByTeacher(ctx context.Context, teacherID int) ([]model.Class, error)
	CountByTeacher(ctx context.Context, teacherID int) (int, error)
	CountStudents(ctx context.Context, classID int) (int, error)
}

// TeacherAttendanceStore reads attendance across a teacher's classes.
type TeacherAttendanceStore interface {
	CountPresentByTeacherOnDate(ctx context.Context, teacherID int, date string) (int, error)
}

// TeacherService builds the teacher dashboard.
type TeacherService struct {
	classes    TeacherClassStore
	attendance TeacherAttendanceStore
	now        func() time.Time
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(classes TeacherClassStore, attendance TeacherAttendanceStore) *TeacherService {
	return &TeacherService{classes: classes, attendance: attendance, now: time.Now}
}

// Classes lists the teacher's classes with their enrolled student counts.
// The per-class counts run concurrently; any failure fails the whole call.
func (s *TeacherService) Classes(ctx context.Context, teacherID int) ([]model.TeacherClass, error) {
	classes, err := s.classes.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	result := make([]model.TeacherClass, len(classes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelQueries)
	for i, c := range classes {
		result[i] = model.TeacherClass{ID: c.ID, Name: c.Name, Description: c.Description}
		g.Go(func() error {
			n, err := s.classes.CountStudents(gctx, c.ID)
			if err != nil {
				return fmt.Errorf("count students of class %d: %w", c.ID, err)
			}
			result[i].StudentCount = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// Stats returns the class count, the enrolled students summed over the
// teacher's classes and today's present count over those classes.
func (s *TeacherService) Stats(ctx context.Context, teacherID int) (*model.TeacherStats, error) {
	today := Today(s.now())
	stats := &model.TeacherStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.classes.CountByTeacher(gctx, teacherID)
		if err != nil {
			return fmt.Errorf("count classes: %w", err)
		}
		stats.TotalClasses = n
		return nil
	})
	g.Go(func() error {
		classes, err := s.Classes(gctx, teacherID)
		if err != nil {
			return err
		}
		for _, c := range classes {
			stats.TotalStudents += c.StudentCount
		}
		return nil
	})
	g.Go(func() error {
		n, err := s.attendance.CountPresentByTeacherOnDate(gctx, teacherID, today)
		if err != nil {
			return fmt.Errorf("count today's attendance: %w", err)
		}
		stats.TodayAttendance = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
