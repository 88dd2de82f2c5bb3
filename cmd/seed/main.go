package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stemsi/absensi-backend/internal/config"
	"github.com/stemsi/absensi-backend/internal/database"
	"github.com/stemsi/absensi-backend/internal/logger"
	"github.com/stemsi/absensi-backend/internal/model"
	"github.com/stemsi/absensi-backend/internal/repository"
	"github.com/stemsi/absensi-backend/internal/service"
)

// demoPassword is shared by every seeded account.
const demoPassword = "password123"

type seedClass struct {
	name        string
	description string
	students    []int // indexes into students
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userService := service.NewUserService(repository.NewUserRepository(pool), cfg.BcryptCost)
	classRepo := repository.NewClassRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	fmt.Println("=== Seeding demo data ===")

	if _, err := userService.Ensure(ctx, "Administrator", "admin@sekolah.id", demoPassword, model.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin")
	}

	teacher, err := userService.Ensure(ctx, "Ibu Sari", "guru@sekolah.id", demoPassword, model.RoleTeacher)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed teacher")
	}

	names := []string{"Budi Santoso", "Siti Aminah", "Andi Pratama", "Rina Wati", "Joko Susilo"}
	students := make([]*model.User, 0, len(names))
	for i, name := range names {
		email := fmt.Sprintf("murid%d@sekolah.id", i+1)
		s, err := userService.Ensure(ctx, name, email, demoPassword, model.RoleStudent)
		if err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("Failed to seed student")
		}
		students = append(students, s)
	}
	fmt.Printf("Seeded 1 admin, 1 teacher, %d students\n", len(students))

	classes := []seedClass{
		{name: "Matematika XII", description: "Matematika wajib kelas XII", students: []int{0, 1, 2}},
		{name: "Fisika XII", description: "Fisika peminatan kelas XII", students: []int{0, 1, 2, 3, 4}},
	}

	now := time.Now()
	statuses := []model.AttendanceStatus{
		model.StatusPresent, model.StatusPresent, model.StatusPresent,
		model.StatusExcused, model.StatusPresent, model.StatusSick, model.StatusAbsent,
	}

	records := 0
	for _, sc := range classes {
		class, err := classRepo.GetByTeacherAndName(ctx, teacher.ID, sc.name)
		if errors.Is(err, repository.ErrNotFound) {
			desc := sc.description
			class = &model.Class{Name: sc.name, Description: &desc, TeacherID: &teacher.ID}
			if err := classRepo.Create(ctx, class); err != nil {
				log.Fatal().Err(err).Str("class", sc.name).Msg("Failed to create class")
			}
			fmt.Printf("Created class %q with ID: %d\n", class.Name, class.ID)
		} else if err != nil {
			log.Fatal().Err(err).Str("class", sc.name).Msg("Failed to check existing class")
		} else {
			fmt.Printf("Found existing class %q with ID: %d\n", class.Name, class.ID)
		}

		for _, idx := range sc.students {
			student := students[idx]
			if err := classRepo.Enroll(ctx, class.ID, student.ID); err != nil {
				log.Fatal().Err(err).Int("student_id", student.ID).Msg("Failed to enroll student")
			}

			// One record per day from the first of the month through today.
			for day := 1; day <= now.Day(); day++ {
				date := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
				rec := &model.AttendanceRecord{
					ClassID:   class.ID,
					StudentID: student.ID,
					Date:      date.Format(model.DateLayout),
					Status:    statuses[(day+idx)%len(statuses)],
				}
				if err := attendanceRepo.Upsert(ctx, rec); err != nil {
					log.Fatal().Err(err).Str("date", rec.Date).Msg("Failed to upsert attendance")
				}
				records++
			}
		}
	}

	fmt.Printf("\nSeed completed! %d attendance records written. Password for every account: %s\n", records, demoPassword)
}
