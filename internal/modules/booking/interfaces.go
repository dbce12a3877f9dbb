package booking

import (
	"context"
	"time"

	"clinicops/internal/domain"
	"clinicops/internal/repository"
)

// BookingRepository is the resource calendar store.
type BookingRepository interface {
	FindOverlapping(ctx context.Context, kind domain.ResourceKind, resourceID int64, start, end time.Time, excludeID int64) ([]domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
	HasFutureActiveBookingForRoom(ctx context.Context, roomID int64, now time.Time) (bool, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	SetAvailability(ctx context.Context, id int64, state domain.RoomAvailability) error
}

// StaffConstraintChecker asks the roster whether a clinician may work the
// interval at all (shifts and approved leave).
type StaffConstraintChecker interface {
	CanWork(ctx context.Context, clinicianID int64, start, end time.Time) (bool, error)
}

type AuditSink interface {
	Record(ctx context.Context, userID int64, action, targetType string, targetID int64, details any)
}
