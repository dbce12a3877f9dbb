package repository

import (
	"context"
	"time"

	"clinicops/internal/domain"

	"gorm.io/gorm"
)

type StaffShiftRepository struct {
	db *gorm.DB
}

func NewStaffShiftRepository(db *gorm.DB) *StaffShiftRepository {
	return &StaffShiftRepository{db: db}
}

func (r *StaffShiftRepository) Create(ctx context.Context, s *domain.StaffShift) error {
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	if s.Status == "" {
		s.Status = domain.ShiftScheduled
	}
	return r.db.WithContext(ctx).Table("staff_shifts").Create(s).Error
}

func (r *StaffShiftRepository) GetByID(ctx context.Context, id int64) (*domain.StaffShift, error) {
	var s domain.StaffShift
	if tx := r.db.WithContext(ctx).Table("staff_shifts").First(&s, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

// ListForUserDate returns all non-cancelled shifts the staff member holds on
// the given date.
func (r *StaffShiftRepository) ListForUserDate(ctx context.Context, userID int64, date time.Time) ([]domain.StaffShift, error) {
	var shifts []domain.StaffShift
	tx := r.db.WithContext(ctx).Table("staff_shifts").
		Where("user_id = ?", userID).
		Where("date = ?", date).
		Where("status <> ?", string(domain.ShiftCancelled)).
		Order("start_time").
		Find(&shifts)
	return shifts, tx.Error
}

// HasOverlap applies the three-way clock-time overlap test against the staff
// member's other non-cancelled shifts on the same date. Clock times are
// "HH:MM" strings and compare correctly as text.
func (r *StaffShiftRepository) HasOverlap(ctx context.Context, userID int64, date time.Time, start, end string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).Table("staff_shifts").
		Where("user_id = ?", userID).
		Where("date = ?", date).
		Where("status <> ?", string(domain.ShiftCancelled)).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var cnt int64
	if tx := q.Count(&cnt); tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

type ShiftFilter struct {
	UserID   int64
	Status   string
	DateFrom time.Time
	DateTo   time.Time
}

func (r *StaffShiftRepository) List(ctx context.Context, f ShiftFilter) ([]domain.StaffShift, error) {
	q := r.db.WithContext(ctx).Table("staff_shifts")
	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.DateFrom.IsZero() {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if !f.DateTo.IsZero() {
		q = q.Where("date <= ?", f.DateTo)
	}
	var shifts []domain.StaffShift
	tx := q.Order("date, start_time").Find(&shifts)
	return shifts, tx.Error
}

func (r *StaffShiftRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.StaffShift, error) {
	var s domain.StaffShift
	if tx := r.db.WithContext(ctx).Table("staff_shifts").First(&s, id); tx.Error != nil {
		return nil, tx.Error
	}
	fields["updated_at"] = time.Now().UTC()
	if tx := r.db.WithContext(ctx).Table("staff_shifts").Where("id = ?", id).Updates(fields); tx.Error != nil {
		return nil, tx.Error
	}
	if tx := r.db.WithContext(ctx).Table("staff_shifts").First(&s, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

// Cancel soft-deletes a shift. Returns gorm.ErrRecordNotFound for unknown ids.
func (r *StaffShiftRepository) Cancel(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Table("staff_shifts").
		Where("id = ?", id).
		Updates(map[string]any{"status": string(domain.ShiftCancelled), "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
