package repository

import (
	"context"
	"time"

	"clinicops/internal/domain"

	"gorm.io/gorm"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(ctx context.Context, lr *domain.LeaveRequest) error {
	lr.Status = domain.LeavePending
	lr.CreatedAt = time.Now().UTC()
	lr.UpdatedAt = lr.CreatedAt
	return r.db.WithContext(ctx).Table("leave_requests").Create(lr).Error
}

func (r *LeaveRepository) GetByID(ctx context.Context, id int64) (*domain.LeaveRequest, error) {
	var lr domain.LeaveRequest
	if tx := r.db.WithContext(ctx).Table("leave_requests").First(&lr, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &lr, nil
}

// HasApprovedLeaveOn reports whether the staff member has approved leave
// covering the date. Leave ranges are inclusive of both endpoints.
func (r *LeaveRepository) HasApprovedLeaveOn(ctx context.Context, userID int64, date time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Table("leave_requests").
		Where("user_id = ?", userID).
		Where("status = ?", string(domain.LeaveApproved)).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

type LeaveFilter struct {
	UserID int64
	Status string
}

func (r *LeaveRepository) List(ctx context.Context, f LeaveFilter) ([]domain.LeaveRequest, error) {
	q := r.db.WithContext(ctx).Table("leave_requests")
	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var reqs []domain.LeaveRequest
	tx := q.Order("created_at DESC").Find(&reqs)
	return reqs, tx.Error
}

// Decide records the single pending→approved/rejected transition. The guard
// on current status makes the decision idempotent-safe under races: only one
// approver wins.
func (r *LeaveRepository) Decide(ctx context.Context, id int64, status domain.LeaveStatus, approverID int64, rejectionReason string) (*domain.LeaveRequest, error) {
	now := time.Now().UTC()
	fields := map[string]any{
		"status":      string(status),
		"approved_by": approverID,
		"approved_at": now,
		"updated_at":  now,
	}
	if status == domain.LeaveRejected {
		fields["rejection_reason"] = rejectionReason
	}

	tx := r.db.WithContext(ctx).Table("leave_requests").
		Where("id = ?", id).
		Where("status = ?", string(domain.LeavePending)).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
