package model

import "time"

// Class represents a school class owned by one teacher.
type Class struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	TeacherID   *int      `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Enrollment links a student to a class; (ClassID, StudentID) is unique.
type Enrollment struct {
	ID        int `json:"id"`
	ClassID   int `json:"class_id"`
	StudentID int `json:"student_id"`
}

// TeacherClass is a class as listed on the teacher dashboard.
type TeacherClass struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	StudentCount int     `json:"studentCount"`
}
