package model

// AdminStats feeds the admin dashboard cards.
type AdminStats struct {
	TotalUsers      int `json:"totalUsers"`
	TotalClasses    int `json:"totalClasses"`
	TotalAttendance int `json:"totalAttendance"`
	TodayAttendance int `json:"todayAttendance"`
}

// TeacherStats feeds the teacher dashboard cards.
type TeacherStats struct {
	TotalClasses    int `json:"totalClasses"`
	TotalStudents   int `json:"totalStudents"`
	TodayAttendance int `json:"todayAttendance"`
}

// StudentStats feeds the student dashboard cards.
type StudentStats struct {
	TotalClasses        int `json:"totalClasses"`
	AttendanceRate      int `json:"attendanceRate"`
	ThisMonthAttendance int `json:"thisMonthAttendance"`
}
