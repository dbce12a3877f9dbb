package roster

import (
	"context"
	"time"

	"clinicops/internal/domain"
	"clinicops/internal/repository"
)

// ClinicianStore resolves clinician records for the staff linkage lookup.
type ClinicianStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Clinician, error)
}

// UserDirectory is the staff directory the clinician linkage resolves into.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByNameLike(ctx context.Context, first, last string) (*domain.User, error)
}

type ShiftStore interface {
	Create(ctx context.Context, s *domain.StaffShift) error
	GetByID(ctx context.Context, id int64) (*domain.StaffShift, error)
	ListForUserDate(ctx context.Context, userID int64, date time.Time) ([]domain.StaffShift, error)
	HasOverlap(ctx context.Context, userID int64, date time.Time, start, end string, excludeID int64) (bool, error)
	List(ctx context.Context, f repository.ShiftFilter) ([]domain.StaffShift, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.StaffShift, error)
	Cancel(ctx context.Context, id int64) error
}

type LeaveStore interface {
	Create(ctx context.Context, lr *domain.LeaveRequest) error
	GetByID(ctx context.Context, id int64) (*domain.LeaveRequest, error)
	HasApprovedLeaveOn(ctx context.Context, userID int64, date time.Time) (bool, error)
	List(ctx context.Context, f repository.LeaveFilter) ([]domain.LeaveRequest, error)
	Decide(ctx context.Context, id int64, status domain.LeaveStatus, approverID int64, rejectionReason string) (*domain.LeaveRequest, error)
}

type TemplateStore interface {
	ListActive(ctx context.Context) ([]domain.ShiftTemplate, error)
	GetByID(ctx context.Context, id int64) (*domain.ShiftTemplate, error)
}

// AuditSink records successful mutations. Implementations must not fail the
// calling operation.
type AuditSink interface {
	Record(ctx context.Context, userID int64, action, targetType string, targetID int64, details any)
}
