package roster

import (
	"context"
	"errors"
	"time"

	"clinicops/internal/config"
	"clinicops/internal/domain"
	"clinicops/internal/repository"

	"gorm.io/gorm"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

type Service struct {
	clinicians  ClinicianStore
	users       UserDirectory
	shifts      ShiftStore
	leaves      LeaveStore
	templates   TemplateStore
	audit       AuditSink
	enforcement config.ShiftEnforcement
}

func NewService(
	clinicians ClinicianStore,
	users UserDirectory,
	shifts ShiftStore,
	leaves LeaveStore,
	templates TemplateStore,
	audit AuditSink,
	enforcement config.ShiftEnforcement,
) *Service {
	return &Service{
		clinicians:  clinicians,
		users:       users,
		shifts:      shifts,
		leaves:      leaves,
		templates:   templates,
		audit:       audit,
		enforcement: enforcement,
	}
}

// CanWork answers whether the clinician may be booked for [start, end).
// A clinician with no staff directory linkage is unconstrained: the conflict
// detector still prevents double-booking, so permitting here is safe.
func (s *Service) CanWork(ctx context.Context, clinicianID int64, start, end time.Time) (bool, error) {
	clinician, err := s.clinicians.GetByID(ctx, clinicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	user, err := s.resolveUser(ctx, clinician)
	if err != nil {
		return false, err
	}
	if user == nil {
		return true, nil
	}

	date := truncateToDate(start)

	onLeave, err := s.leaves.HasApprovedLeaveOn(ctx, user.ID, date)
	if err != nil {
		return false, err
	}
	if onLeave {
		return false, nil
	}

	shifts, err := s.shifts.ListForUserDate(ctx, user.ID, date)
	if err != nil {
		return false, err
	}
	if len(shifts) == 0 {
		// No shifts on this date means unconstrained, in both modes.
		return true, nil
	}

	if s.enforcement == config.ShiftFlexible {
		return true, nil
	}

	startClock := start.Format(clockLayout)
	endClock := end.Format(clockLayout)
	for _, sh := range shifts {
		if sh.StartTime < endClock && sh.EndTime > startClock {
			return true, nil
		}
	}
	return false, nil
}

// resolveUser maps a clinician to a staff directory user: explicit foreign
// key first, then exact email, then the legacy name-substring match.
// Returns (nil, nil) when no linkage exists.
func (s *Service) resolveUser(ctx context.Context, c *domain.Clinician) (*domain.User, error) {
	if c.UserID != nil {
		u, err := s.users.GetByID(ctx, *c.UserID)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Stale link, fall through to matching.
	}

	u, err := s.users.FindByEmail(ctx, c.Email)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	return s.users.FindByNameLike(ctx, c.FirstName, c.LastName)
}

func (s *Service) CreateShift(ctx context.Context, actorID int64, req CreateShiftRequest) (*domain.StaffShift, error) {
	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}

	start, end := req.StartTime, req.EndTime
	if req.ShiftTemplateID != nil && (start == "" || end == "") {
		tpl, err := s.templates.GetByID(ctx, *req.ShiftTemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
		start, end = tpl.StartTime, tpl.EndTime
	}
	if err := validateClockRange(start, end); err != nil {
		return nil, err
	}

	overlap, err := s.shifts.HasOverlap(ctx, req.UserID, date, start, end, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrShiftConflict
	}

	shift := &domain.StaffShift{
		UserID:          req.UserID,
		ShiftTemplateID: req.ShiftTemplateID,
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		Status:          domain.ShiftScheduled,
		Notes:           req.Notes,
		CreatedBy:       actorID,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actorID, "create_shift", "shift", shift.ID, shift)
	return shift, nil
}

func (s *Service) UpdateShift(ctx context.Context, actorID, id int64, req UpdateShiftRequest) (*domain.StaffShift, error) {
	current, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	userID := current.UserID
	if req.UserID != nil {
		userID = *req.UserID
	}
	date := current.Date
	if req.Date != nil {
		date, err = time.ParseInLocation(dateLayout, *req.Date, time.UTC)
		if err != nil {
			return nil, ErrValidation
		}
	}
	start := current.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := current.EndTime
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if err := validateClockRange(start, end); err != nil {
		return nil, err
	}

	overlap, err := s.shifts.HasOverlap(ctx, userID, date, start, end, id)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrShiftConflict
	}

	fields := map[string]any{}
	if req.UserID != nil {
		fields["user_id"] = *req.UserID
	}
	if req.ShiftTemplateID != nil {
		fields["shift_template_id"] = *req.ShiftTemplateID
	}
	if req.Date != nil {
		fields["date"] = date
	}
	if req.StartTime != nil {
		fields["start_time"] = start
	}
	if req.EndTime != nil {
		fields["end_time"] = end
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) == 0 {
		return current, nil
	}

	updated, err := s.shifts.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actorID, "update_shift", "shift", id, map[string]any{"before": current, "after": updated})
	return updated, nil
}

func (s *Service) CancelShift(ctx context.Context, actorID, id int64) error {
	if err := s.shifts.Cancel(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.audit.Record(ctx, actorID, "cancel_shift", "shift", id, nil)
	return nil
}

func (s *Service) GetShift(ctx context.Context, id int64) (*domain.StaffShift, error) {
	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return shift, nil
}

func (s *Service) ListShifts(ctx context.Context, f repository.ShiftFilter) ([]domain.StaffShift, error) {
	return s.shifts.List(ctx, f)
}

func (s *Service) ListTemplates(ctx context.Context) ([]domain.ShiftTemplate, error) {
	return s.templates.ListActive(ctx)
}

func (s *Service) CreateLeave(ctx context.Context, actorID int64, req CreateLeaveRequest) (*domain.LeaveRequest, error) {
	startDate, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}
	endDate, err := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}
	if endDate.Before(startDate) {
		return nil, ErrValidation
	}

	lr := &domain.LeaveRequest{
		UserID:    req.UserID,
		LeaveType: req.LeaveType,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
	}
	if err := s.leaves.Create(ctx, lr); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actorID, "create_leave_request", "leave_request", lr.ID, lr)
	return lr, nil
}

// DecideLeave applies the single pending→approved/rejected transition.
func (s *Service) DecideLeave(ctx context.Context, approverID, id int64, req DecideLeaveRequest) (*domain.LeaveRequest, error) {
	status := domain.LeaveStatus(req.Status)
	if status != domain.LeaveApproved && status != domain.LeaveRejected {
		return nil, ErrValidation
	}

	current, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if current.Status != domain.LeavePending {
		return nil, ErrLeaveDecided
	}

	decided, err := s.leaves.Decide(ctx, id, status, approverID, req.RejectionReason)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Lost the race to another approver.
			return nil, ErrLeaveDecided
		}
		return nil, err
	}

	s.audit.Record(ctx, approverID, "decide_leave_request", "leave_request", id, decided)
	return decided, nil
}

func (s *Service) ListLeaves(ctx context.Context, f repository.LeaveFilter) ([]domain.LeaveRequest, error) {
	return s.leaves.List(ctx, f)
}

func validateClockRange(start, end string) error {
	st, err := time.Parse(clockLayout, start)
	if err != nil {
		return ErrValidation
	}
	en, err := time.Parse(clockLayout, end)
	if err != nil {
		return ErrValidation
	}
	if !en.After(st) {
		return ErrValidation
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
