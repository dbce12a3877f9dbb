// Seeds a development database with a small, deterministic clinic: staff
// accounts, clinicians in the three linkage states, rooms, shift templates
// and a week of shifts. Safe to run once against an empty database.
package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clinicops/internal/config"
	"clinicops/internal/database"
	"clinicops/internal/domain"
	"clinicops/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	clinicians := repository.NewClinicianRepository(db)
	patients := repository.NewPatientRepository(db)
	rooms := repository.NewRoomRepository(db)
	shifts := repository.NewStaffShiftRepository(db)

	if existing, err := users.FindByEmail(ctx, "admin@clinic.local"); err != nil {
		log.Fatal(err)
	} else if existing != nil {
		log.Println("seed data already present, nothing to do")
		return
	}

	mustUser := func(name, email, role string) *domain.User {
		u := &domain.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash("password123"),
			Role:         domain.UserRole(role),
			IsActive:     true,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal(err)
		}
		return u
	}

	admin := mustUser("Clinic Admin", "admin@clinic.local", "admin")
	mustUser("Front Desk", "reception@clinic.local", "receptionist")
	drAdeyemi := mustUser("Tunde Adeyemi", "t.adeyemi@clinic.local", "doctor")
	mustUser("Eva Kovacs", "e.kovacs@clinic.local", "doctor")

	// Three linkage states: explicit FK, email match, no directory entry.
	seedClinicians := []domain.Clinician{
		{UserID: &drAdeyemi.ID, FirstName: "Tunde", LastName: "Adeyemi", Specialty: "Cardiology", Email: "t.adeyemi@clinic.local", IsActive: true},
		{FirstName: "Eva", LastName: "Kovacs", Specialty: "Dermatology", Email: "e.kovacs@clinic.local", IsActive: true},
		{FirstName: "Visiting", LastName: "Consultant", Specialty: "Orthopedics", IsActive: true},
	}
	for i := range seedClinicians {
		if err := clinicians.Create(ctx, &seedClinicians[i]); err != nil {
			log.Fatal(err)
		}
	}

	dob := time.Date(1987, 6, 14, 0, 0, 0, 0, time.UTC)
	seedPatients := []domain.Patient{
		{FirstName: "Maria", LastName: "Santos", DateOfBirth: &dob, Phone: "+1-555-0101"},
		{FirstName: "John", LastName: "Mbeki", Phone: "+1-555-0102"},
	}
	for i := range seedPatients {
		if err := patients.Create(ctx, &seedPatients[i]); err != nil {
			log.Fatal(err)
		}
	}

	seedRooms := []domain.Room{
		{Number: "101", Name: "Consultation A", RoomType: domain.RoomConsultation, Capacity: 3, Availability: domain.RoomAvailable},
		{Number: "102", Name: "Consultation B", RoomType: domain.RoomConsultation, Capacity: 3, Availability: domain.RoomAvailable},
		{Number: "201", Name: "Procedure Suite", RoomType: domain.RoomProcedure, Capacity: 6, Availability: domain.RoomAvailable},
	}
	for i := range seedRooms {
		if err := rooms.Create(ctx, &seedRooms[i]); err != nil {
			log.Fatal(err)
		}
	}

	templates := []domain.ShiftTemplate{
		{Name: "Morning", StartTime: "08:00", EndTime: "14:00", Color: "#4caf50", IsActive: true},
		{Name: "Evening", StartTime: "14:00", EndTime: "20:00", Color: "#2196f3", IsActive: true},
	}
	for i := range templates {
		if err := db.Table("shift_templates").Create(&templates[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	// A week of morning shifts for Dr Adeyemi starting tomorrow.
	day := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	for i := 0; i < 5; i++ {
		shift := &domain.StaffShift{
			UserID:          drAdeyemi.ID,
			ShiftTemplateID: &templates[0].ID,
			Date:            day.AddDate(0, 0, i),
			StartTime:       templates[0].StartTime,
			EndTime:         templates[0].EndTime,
			Status:          domain.ShiftScheduled,
			CreatedBy:       admin.ID,
		}
		if err := shifts.Create(ctx, shift); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("seeded %d users, %d clinicians, %d patients, %d rooms",
		4, len(seedClinicians), len(seedPatients), len(seedRooms))
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(h)
}
