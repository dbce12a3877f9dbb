package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicops/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DuplicateIntervalError is returned when the database-level exclusion
// constraint rejects an insert that slipped past the application checks.
// The constraint is the authoritative guard against check-then-act races.
type DuplicateIntervalError struct {
	Kind domain.ResourceKind
}

func (e *DuplicateIntervalError) Error() string {
	return fmt.Sprintf("interval already booked for %s", e.Kind)
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	PatientID    int64     `gorm:"column:patient_id"`
	ClinicianID  *int64    `gorm:"column:clinician_id"`
	RoomID       *int64    `gorm:"column:room_id"`
	StartTime    time.Time `gorm:"column:start_time"`
	EndTime      time.Time `gorm:"column:end_time"`
	Status       string    `gorm:"column:status"`
	Reason       string    `gorm:"column:reason"`
	Diagnosis    string    `gorm:"column:diagnosis"`
	Treatment    string    `gorm:"column:treatment"`
	Prescription string    `gorm:"column:prescription"`
	CreatedBy    int64     `gorm:"column:created_by"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:           m.ID,
		PatientID:    m.PatientID,
		ClinicianID:  m.ClinicianID,
		RoomID:       m.RoomID,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Status:       domain.BookingStatus(m.Status),
		Reason:       m.Reason,
		Diagnosis:    m.Diagnosis,
		Treatment:    m.Treatment,
		Prescription: m.Prescription,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:           b.ID,
		PatientID:    b.PatientID,
		ClinicianID:  b.ClinicianID,
		RoomID:       b.RoomID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       string(b.Status),
		Reason:       b.Reason,
		Diagnosis:    b.Diagnosis,
		Treatment:    b.Treatment,
		Prescription: b.Prescription,
		CreatedBy:    b.CreatedBy,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func resourceColumn(kind domain.ResourceKind) (string, error) {
	switch kind {
	case domain.ResourceClinician:
		return "clinician_id", nil
	case domain.ResourceRoom:
		return "room_id", nil
	case domain.ResourcePatient:
		return "patient_id", nil
	}
	return "", fmt.Errorf("unknown resource kind %q", kind)
}

// FindOverlapping returns the non-cancelled bookings claiming the given
// resource whose interval intersects [start, end). The intervals are
// half-open, so a booking ending exactly at start does not overlap.
func (r *BookingRepository) FindOverlapping(ctx context.Context, kind domain.ResourceKind, resourceID int64, start, end time.Time, excludeID int64) ([]domain.Booking, error) {
	col, err := resourceColumn(kind)
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).
		Where(col+" = ?", resourceID).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var rows []bookingModel
	if tx := q.Order("start_time").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return mapConstraintError(tx.Error)
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// Update applies the given column values to one booking and returns the new
// row. Returns gorm.ErrRecordNotFound for an unknown id.
func (r *BookingRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Booking, error) {
	var m bookingModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}

	fields["updated_at"] = time.Now().UTC()
	if tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(fields); tx.Error != nil {
		return nil, mapConstraintError(tx.Error)
	}

	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// BookingFilter narrows List the way the admin views filter the calendar.
// Search matches the visit reason or the patient's name.
type BookingFilter struct {
	PatientID   int64
	ClinicianID int64
	Status      string
	Search      string
	DateFrom    time.Time
	DateTo      time.Time
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if f.PatientID > 0 {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.ClinicianID > 0 {
		q = q.Where("clinician_id = ?", f.ClinicianID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			"reason LIKE ? OR patient_id IN (SELECT id FROM patients WHERE first_name LIKE ? OR last_name LIKE ?)",
			like, like, like,
		)
	}
	if !f.DateFrom.IsZero() {
		q = q.Where("start_time >= ?", f.DateFrom)
	}
	if !f.DateTo.IsZero() {
		q = q.Where("end_time <= ?", f.DateTo)
	}

	var rows []bookingModel
	if tx := q.Order("start_time").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// HasFutureActiveBookingForRoom reports whether the room still has a
// non-cancelled booking starting at or after now. Used when deciding whether
// a released room may be flagged available again.
func (r *BookingRepository) HasFutureActiveBookingForRoom(ctx context.Context, roomID int64, now time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("start_time >= ?", now).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// mapConstraintError turns a Postgres unique/exclusion violation on one of
// the no-double-booking indexes into a DuplicateIntervalError naming the
// resource axis that collided. Other errors pass through unchanged.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code != "23505" && pgErr.Code != "23P01" {
		return err
	}
	switch pgErr.ConstraintName {
	case "idx_no_double_booking_clinician":
		return &DuplicateIntervalError{Kind: domain.ResourceClinician}
	case "idx_no_double_booking_room":
		return &DuplicateIntervalError{Kind: domain.ResourceRoom}
	case "idx_no_double_booking_patient":
		return &DuplicateIntervalError{Kind: domain.ResourcePatient}
	}
	return err
}
