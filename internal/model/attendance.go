package model

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date format used for attendance dates.
// Date range filters compare these strings lexicographically.
const DateLayout = "2006-01-02"

// AttendanceStatus is the closed set of attendance outcomes.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "hadir"
	StatusAbsent  AttendanceStatus = "tidak_hadir"
	StatusExcused AttendanceStatus = "izin"
	StatusSick    AttendanceStatus = "sakit"
)

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusExcused, StatusSick:
		return true
	}
	return false
}

// ParseAttendanceStatus converts a stored status string.
func ParseAttendanceStatus(v string) (AttendanceStatus, error) {
	s := AttendanceStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown attendance status %q", v)
	}
	return s, nil
}

// Label returns the Indonesian display name.
func (s AttendanceStatus) Label() string {
	switch s {
	case StatusPresent:
		return "Hadir"
	case StatusAbsent:
		return "Tidak Hadir"
	case StatusExcused:
		return "Izin"
	case StatusSick:
		return "Sakit"
	default:
		return string(s)
	}
}

// AttendanceRecord is one student's attendance for one class on one day.
// (ClassID, StudentID, Date) is unique.
type AttendanceRecord struct {
	ID        int              `json:"id"`
	ClassID   int              `json:"class_id"`
	StudentID int              `json:"student_id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Notes     *string          `json:"notes"`
	CreatedAt time.Time        `json:"created_at"`
}

// StudentAttendance is an attendance row joined with its class name.
type StudentAttendance struct {
	ID        int              `json:"id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Notes     *string          `json:"notes"`
	ClassName string           `json:"className"`
}
