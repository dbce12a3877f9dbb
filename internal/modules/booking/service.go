package booking

import (
	"context"
	"errors"
	"time"

	"clinicops/internal/domain"
	"clinicops/internal/repository"

	"gorm.io/gorm"
)

// Service is the single entry point for booking mutations. Every create and
// update runs the constraint and conflict checks in a fixed order:
// clinician roster, clinician conflict, room conflict, patient conflict.
// The first failing check wins.
type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	roster   StaffConstraintChecker
	audit    AuditSink

	now func() time.Time
}

func NewService(bookings BookingRepository, rooms RoomRepository, roster StaffConstraintChecker, audit AuditSink) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		roster:   roster,
		audit:    audit,
		now:      time.Now,
	}
}

func (s *Service) CreateBooking(ctx context.Context, actorID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if req.PatientID <= 0 {
		return nil, ErrValidation
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}

	if err := s.runConflictChecks(ctx, req.ClinicianID, req.RoomID, req.PatientID, req.StartTime, req.EndTime, 0); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		PatientID:   req.PatientID,
		ClinicianID: req.ClinicianID,
		RoomID:      req.RoomID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      domain.BookingScheduled,
		Reason:      req.Reason,
		CreatedBy:   actorID,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, mapDuplicateInterval(err)
	}

	if b.RoomID != nil {
		s.applyRoomOccupancy(ctx, *b.RoomID, b.StartTime, b.Status)
	}

	s.audit.Record(ctx, actorID, "create_booking", "booking", b.ID, b)
	return b, nil
}

func (s *Service) UpdateBooking(ctx context.Context, actorID, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Status != nil {
		if err := validateTransition(current.Status, domain.BookingStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if (req.ClearClinician && req.ClinicianID != nil) || (req.ClearRoom && req.RoomID != nil) {
		return nil, ErrValidation
	}

	// Effective values after the update, for re-validation.
	effClinician := current.ClinicianID
	if req.ClearClinician {
		effClinician = nil
	} else if req.ClinicianID != nil {
		effClinician = req.ClinicianID
	}
	effRoom := current.RoomID
	if req.ClearRoom {
		effRoom = nil
	} else if req.RoomID != nil {
		effRoom = req.RoomID
	}
	effPatient := current.PatientID
	if req.PatientID != nil {
		effPatient = *req.PatientID
	}
	effStart := current.StartTime
	if req.StartTime != nil {
		effStart = *req.StartTime
	}
	effEnd := current.EndTime
	if req.EndTime != nil {
		effEnd = *req.EndTime
	}
	if !effEnd.After(effStart) {
		return nil, ErrValidation
	}

	timeChanged := req.StartTime != nil || req.EndTime != nil
	clinicianChanged := !sameRef(effClinician, current.ClinicianID)
	roomChanged := !sameRef(effRoom, current.RoomID)
	patientChanged := req.PatientID != nil && *req.PatientID != current.PatientID
	dimensionChanged := timeChanged || clinicianChanged || roomChanged || patientChanged

	// Times and resource assignments only move while the booking is still
	// scheduled. Completed and cancelled bookings accept at most outcome
	// field edits.
	if dimensionChanged && current.Status != domain.BookingScheduled {
		return nil, ErrStatusTransition
	}

	// An update touching none of the conflicting dimensions is a plain field
	// edit and skips re-validation entirely.
	if dimensionChanged {
		if err := s.runConflictChecks(ctx, effClinician, effRoom, effPatient, effStart, effEnd, id); err != nil {
			return nil, err
		}
	}

	fields := map[string]any{}
	if req.PatientID != nil {
		fields["patient_id"] = *req.PatientID
	}
	if req.ClearClinician {
		fields["clinician_id"] = nil
	} else if req.ClinicianID != nil {
		fields["clinician_id"] = *req.ClinicianID
	}
	if req.ClearRoom {
		fields["room_id"] = nil
	} else if req.RoomID != nil {
		fields["room_id"] = *req.RoomID
	}
	if req.StartTime != nil {
		fields["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		fields["end_time"] = *req.EndTime
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}
	if req.Diagnosis != nil {
		fields["diagnosis"] = *req.Diagnosis
	}
	if req.Treatment != nil {
		fields["treatment"] = *req.Treatment
	}
	if req.Prescription != nil {
		fields["prescription"] = *req.Prescription
	}
	if len(fields) == 0 {
		return current, nil
	}

	updated, err := s.bookings.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, mapDuplicateInterval(err)
	}

	// Reconcile the room occupancy hint: release a room the booking left,
	// then recompute for the room it now holds.
	if roomChanged && current.RoomID != nil {
		s.freeRoomIfIdle(ctx, *current.RoomID)
	}
	if updated.RoomID != nil {
		s.applyRoomOccupancy(ctx, *updated.RoomID, updated.StartTime, updated.Status)
	}

	s.audit.Record(ctx, actorID, "update_booking", "booking", id, map[string]any{"before": current, "after": updated})
	return updated, nil
}

// CancelBooking soft-cancels: the row stays for history but stops claiming
// its resources. Cancelling an already-cancelled booking is a no-op.
func (s *Service) CancelBooking(ctx context.Context, actorID, id int64) error {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !current.Active() {
		return nil
	}
	if current.Status == domain.BookingCompleted {
		return ErrStatusTransition
	}

	if _, err := s.bookings.Update(ctx, id, map[string]any{"status": string(domain.BookingCancelled)}); err != nil {
		return err
	}

	if current.RoomID != nil {
		s.freeRoomIfIdle(ctx, *current.RoomID)
	}

	s.audit.Record(ctx, actorID, "cancel_booking", "booking", id, nil)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}

// runConflictChecks enforces the invariant for one proposed interval.
// Clinician and room are optional; an unassigned resource cannot conflict.
// The patient axis is always checked.
func (s *Service) runConflictChecks(ctx context.Context, clinicianID, roomID *int64, patientID int64, start, end time.Time, excludeID int64) error {
	if clinicianID != nil {
		ok, err := s.roster.CanWork(ctx, *clinicianID, start, end)
		if err != nil {
			return err
		}
		if !ok {
			return ErrClinicianNotRostered
		}

		busy, err := s.hasConflict(ctx, domain.ResourceClinician, *clinicianID, start, end, excludeID)
		if err != nil {
			return err
		}
		if busy {
			return ErrClinicianBusy
		}
	}

	if roomID != nil {
		room, err := s.rooms.GetByID(ctx, *roomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrValidation
			}
			return err
		}
		// A room pulled for maintenance takes no bookings regardless of
		// what the calendar says.
		if room.Availability == domain.RoomUnavailable {
			return ErrRoomBusy
		}

		busy, err := s.hasConflict(ctx, domain.ResourceRoom, *roomID, start, end, excludeID)
		if err != nil {
			return err
		}
		if busy {
			return ErrRoomBusy
		}
	}

	busy, err := s.hasConflict(ctx, domain.ResourcePatient, patientID, start, end, excludeID)
	if err != nil {
		return err
	}
	if busy {
		return ErrPatientBusy
	}

	return nil
}

func (s *Service) hasConflict(ctx context.Context, kind domain.ResourceKind, resourceID int64, start, end time.Time, excludeID int64) (bool, error) {
	overlapping, err := s.bookings.FindOverlapping(ctx, kind, resourceID, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return len(overlapping) > 0, nil
}

// applyRoomOccupancy refreshes the room's availability hint after a booking
// touched it. Cancelled or already-started bookings release the room.
func (s *Service) applyRoomOccupancy(ctx context.Context, roomID int64, start time.Time, status domain.BookingStatus) {
	if status == domain.BookingCancelled || start.Before(s.now()) {
		s.freeRoomIfIdle(ctx, roomID)
		return
	}
	// Hint only; a failed write here must not fail the booking.
	_ = s.rooms.SetAvailability(ctx, roomID, domain.RoomOccupied)
}

// freeRoomIfIdle flags the room available again, but only when no other
// active future booking still claims it.
func (s *Service) freeRoomIfIdle(ctx context.Context, roomID int64) {
	held, err := s.bookings.HasFutureActiveBookingForRoom(ctx, roomID, s.now())
	if err != nil || held {
		return
	}
	_ = s.rooms.SetAvailability(ctx, roomID, domain.RoomAvailable)
}

func validateTransition(from, to domain.BookingStatus) error {
	switch to {
	case domain.BookingScheduled, domain.BookingCompleted, domain.BookingCancelled:
	default:
		return ErrValidation
	}
	if from == to {
		return nil
	}
	// cancelled and completed are terminal.
	if from != domain.BookingScheduled {
		return ErrStatusTransition
	}
	return nil
}

func sameRef(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// mapDuplicateInterval converts a database-level exclusion violation into
// the same conflict error the application-level check would have produced.
func mapDuplicateInterval(err error) error {
	var dup *repository.DuplicateIntervalError
	if !errors.As(err, &dup) {
		return err
	}
	switch dup.Kind {
	case domain.ResourceClinician:
		return ErrClinicianBusy
	case domain.ResourceRoom:
		return ErrRoomBusy
	case domain.ResourcePatient:
		return ErrPatientBusy
	}
	return err
}
