package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stemsi/absensi-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTeacherClasses struct {
	classes  map[int][]model.Class
	students map[int]int
	countErr error
}

func (f *fakeTeacherClasses) ListByTeacher(_ context.Context, teacherID int) ([]model.Class, error) {
	return f.classes[teacherID], nil
}

func (f *fakeTeacherClasses) CountByTeacher(_ context.Context, teacherID int) (int, error) {
	return len(f.classes[teacherID]), nil
}

func (f *fakeTeacherClasses) CountStudents(_ context.Context, classID int) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.students[classID], nil
}

type fakeTeacherAttendance struct {
	present map[string]int
}

func (f *fakeTeacherAttendance) CountPresentByTeacherOnDate(_ context.Context, _ int, date string) (int, error) {
	return f.present[date], nil
}

func strPtr(s string) *string { return &s }

func newTestTeacherService() (*TeacherService, *fakeTeacherClasses) {
	classes := &fakeTeacherClasses{
		classes: map[int][]model.Class{
			7: {
				{ID: 10, Name: "Matematika", Description: strPtr("Kelas XII")},
				{ID: 11, Name: "Fisika"},
			},
		},
		students: map[int]int{10: 3, 11: 5},
	}
	attendance := &fakeTeacherAttendance{present: map[string]int{"2024-06-10": 6}}
	svc := NewTeacherService(classes, attendance)
	svc.now = func() time.Time { return time.Date(2024, 6, 10, 7, 30, 0, 0, time.Local) }
	return svc, classes
}

func TestTeacherClasses(t *testing.T) {
	svc, _ := newTestTeacherService()

	classes, err := svc.Classes(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, model.TeacherClass{ID: 10, Name: "Matematika", Description: strPtr("Kelas XII"), StudentCount: 3}, classes[0])
	assert.Equal(t, model.TeacherClass{ID: 11, Name: "Fisika", StudentCount: 5}, classes[1])
}

func TestTeacherClassesEmpty(t *testing.T) {
	svc, _ := newTestTeacherService()

	classes, err := svc.Classes(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, classes)
	assert.Empty(t, classes)
}

func TestTeacherStats(t *testing.T) {
	svc, _ := newTestTeacherService()

	stats, err := svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &model.TeacherStats{TotalClasses: 2, TotalStudents: 8, TodayAttendance: 6}, stats)
}

func TestTeacherStatsFailsAsWhole(t *testing.T) {
	svc, classes := newTestTeacherService()
	classes.countErr = errors.New("query canceled")

	stats, err := svc.Stats(context.Background(), 7)
	assert.Error(t, err)
	assert.Nil(t, stats)
}
