package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/absensi-backend/internal/model"
)

// ClassRepository handles class and enrollment data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// ListByTeacher retrieves the classes owned by a teacher.
func (r *ClassRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, teacher_id, created_at
		 FROM classes WHERE teacher_id = $1 ORDER BY id`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []model.Class{}
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.TeacherID, &c.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// CountByTeacher counts the classes owned by a teacher.
func (r *ClassRepository) CountByTeacher(ctx context.Context, teacherID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM classes WHERE teacher_id = $1`, teacherID,
	).Scan(&n)
	return n, err
}

// CountStudents counts the students enrolled in a class.
func (r *ClassRepository) CountStudents(ctx context.Context, classID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM class_students WHERE class_id = $1`, classID,
	).Scan(&n)
	return n, err
}

// CountByStudent counts the classes a student is enrolled in.
func (r *ClassRepository) CountByStudent(ctx context.Context, studentID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM class_students WHERE student_id = $1`, studentID,
	).Scan(&n)
	return n, err
}

// GetByTeacherAndName finds a class by its owner and name.
func (r *ClassRepository) GetByTeacherAndName(ctx context.Context, teacherID int, name string) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, teacher_id, created_at
		 FROM classes WHERE teacher_id = $1 AND name = $2
		 ORDER BY id LIMIT 1`, teacherID, name,
	).Scan(&c.ID, &c.Name, &c.Description, &c.TeacherID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (name, description, teacher_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.Name, c.Description, c.TeacherID,
	).Scan(&c.ID, &c.CreatedAt)
}

// Enroll links a student to a class. Enrolling twice is a no-op.
func (r *ClassRepository) Enroll(ctx context.Context, classID, studentID int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO class_students (class_id, student_id)
		 VALUES ($1, $2)
		 ON CONFLICT (class_id, student_id) DO NOTHING`,
		classID, studentID,
	)
	return err
}
