package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/absensi-backend/internal/model"
)

// AttendanceRepository handles attendance reads and the seeding upsert.
// Date arguments are YYYY-MM-DD strings.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// CountPresentByTeacherOnDate counts present records on date across the
// classes owned by teacherID.
func (r *AttendanceRepository) CountPresentByTeacherOnDate(ctx context.Context, teacherID int, date string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM attendance a
		 JOIN classes c ON c.id = a.class_id
		 WHERE c.teacher_id = $1 AND a.date = $2::date AND a.status = $3`,
		teacherID, date, string(model.StatusPresent),
	).Scan(&n)
	return n, err
}

// CountByStudent counts every attendance record of a student.
func (r *AttendanceRepository) CountByStudent(ctx context.Context, studentID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE student_id = $1`, studentID,
	).Scan(&n)
	return n, err
}

// CountByStudentStatus counts a student's records with the given status
// dated on or after since. An empty since means no lower bound.
func (r *AttendanceRepository) CountByStudentStatus(ctx context.Context, studentID int, status model.AttendanceStatus, since string) (int, error) {
	var n int
	var err error
	if since == "" {
		err = r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM attendance WHERE student_id = $1 AND status = $2`,
			studentID, string(status),
		).Scan(&n)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM attendance
			 WHERE student_id = $1 AND status = $2 AND date >= $3::date`,
			studentID, string(status), since,
		).Scan(&n)
	}
	return n, err
}

// RecentByStudent returns a student's latest records, newest date first.
func (r *AttendanceRepository) RecentByStudent(ctx context.Context, studentID, limit int) ([]model.StudentAttendance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, to_char(a.date, 'YYYY-MM-DD'), a.status, a.notes, c.name
		 FROM attendance a
		 JOIN classes c ON c.id = a.class_id
		 WHERE a.student_id = $1
		 ORDER BY a.date DESC, a.id DESC
		 LIMIT $2`,
		studentID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.StudentAttendance{}
	for rows.Next() {
		var rec model.StudentAttendance
		var status string
		if err := rows.Scan(&rec.ID, &rec.Date, &status, &rec.Notes, &rec.ClassName); err != nil {
			return nil, err
		}
		if rec.Status, err = model.ParseAttendanceStatus(status); err != nil {
			return nil, fmt.Errorf("attendance %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert records attendance, replacing status and notes of an existing
// entry for the same class, student and date.
func (r *AttendanceRepository) Upsert(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO attendance (class_id, student_id, date, status, notes)
		 VALUES ($1, $2, $3::date, $4, $5)
		 ON CONFLICT (class_id, student_id, date) DO UPDATE
		 SET status = EXCLUDED.status, notes = EXCLUDED.notes
		 RETURNING id, created_at`,
		rec.ClassID, rec.StudentID, rec.Date, string(rec.Status), rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt)
}
