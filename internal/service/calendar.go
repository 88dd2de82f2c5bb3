package service

import (
	"math"
	"time"

	"github.com/stemsi/absensi-backend/internal/model"
)

// Today formats t's calendar day in its own location.
func Today(t time.Time) string {
	return t.Format(model.DateLayout)
}

// MonthStart formats the first calendar day of t's month.
func MonthStart(t time.Time) string {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Format(model.DateLayout)
}

// AttendanceRate is present/total as a whole percentage, rounded half away
// from zero. It is 0 when total is 0.
func AttendanceRate(present, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}
