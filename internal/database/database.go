package database

import (
	"log"
	"strings"

	"clinicops/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" database/sql driver used below.
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every scheduling table.
// The Postgres no-double-booking indexes are created separately because
// gorm's AutoMigrate cannot express partial unique indexes over expressions.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Clinician{},
		&domain.Patient{},
		&domain.Room{},
		&domain.ShiftTemplate{},
		&domain.StaffShift{},
		&domain.LeaveRequest{},
		&domain.Booking{},
		&domain.AuditEvent{},
	); err != nil {
		return err
	}
	return ensureExclusionConstraints(db)
}

// ensureExclusionConstraints installs the database-level safety net against
// check-then-act races: one exclusion constraint per resource axis, over the
// half-open booking interval, ignoring cancelled rows. On SQLite (dev/test)
// this is a no-op; the application-level checks are the only guard there.
func ensureExclusionConstraints(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`ALTER TABLE bookings ADD CONSTRAINT idx_no_double_booking_clinician
			EXCLUDE USING gist (clinician_id WITH =, tstzrange(start_time, end_time, '[)') WITH &&)
			WHERE (clinician_id IS NOT NULL AND status <> 'cancelled')`,
		`ALTER TABLE bookings ADD CONSTRAINT idx_no_double_booking_room
			EXCLUDE USING gist (room_id WITH =, tstzrange(start_time, end_time, '[)') WITH &&)
			WHERE (room_id IS NOT NULL AND status <> 'cancelled')`,
		`ALTER TABLE bookings ADD CONSTRAINT idx_no_double_booking_patient
			EXCLUDE USING gist (patient_id WITH =, tstzrange(start_time, end_time, '[)') WITH &&)
			WHERE (status <> 'cancelled')`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			// 42710: constraint already exists
			if strings.Contains(err.Error(), "already exists") {
				continue
			}
			return err
		}
	}
	return nil
}
