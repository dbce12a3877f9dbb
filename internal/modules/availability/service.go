package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicops/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

var ErrValidation = errors.New("validation error")

type ClinicianLister interface {
	List(ctx context.Context) ([]domain.Clinician, error)
}

type RoomLister interface {
	ListBookable(ctx context.Context) ([]domain.Room, error)
}

// ScheduleChecker decides whether a clinician may work a given interval.
type ScheduleChecker interface {
	CanWork(ctx context.Context, clinicianID int64, start, end time.Time) (bool, error)
}

// BookingStore is the resource calendar the synthesizer filters against.
type BookingStore interface {
	FindOverlapping(ctx context.Context, kind domain.ResourceKind, resourceID int64, start, end time.Time, excludeID int64) ([]domain.Booking, error)
}

// Service answers the "who and what is free on this day" lookup used by the
// booking form. A clinician or room only counts as available when it is
// rostered (clinicians) and holds no booking anywhere in the window. The
// lookup is read-only and best-effort: a failing category degrades to an
// empty list rather than failing the whole lookup.
type Service struct {
	clinicians  ClinicianLister
	rooms       RoomLister
	roster      ScheduleChecker
	bookings    BookingStore
	slotMinutes int
	dayStart    string
	dayEnd      string
}

func NewService(clinicians ClinicianLister, rooms RoomLister, roster ScheduleChecker, bookings BookingStore, slotMinutes int, dayStart, dayEnd string) *Service {
	return &Service{
		clinicians:  clinicians,
		rooms:       rooms,
		roster:      roster,
		bookings:    bookings,
		slotMinutes: slotMinutes,
		dayStart:    dayStart,
		dayEnd:      dayEnd,
	}
}

// Check builds the availability picture for date. startClock and endClock
// override the configured day window when non-empty ("HH:MM").
func (s *Service) Check(ctx context.Context, date time.Time, startClock, endClock string) (*DayAvailability, error) {
	if startClock == "" {
		startClock = s.dayStart
	}
	if endClock == "" {
		endClock = s.dayEnd
	}

	startMin, err := clockToMinutes(startClock)
	if err != nil {
		return nil, ErrValidation
	}
	endMin, err := clockToMinutes(endClock)
	if err != nil {
		return nil, ErrValidation
	}
	if endMin <= startMin {
		return nil, ErrValidation
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := day.Add(time.Duration(startMin) * time.Minute)
	windowEnd := day.Add(time.Duration(endMin) * time.Minute)

	result := &DayAvailability{
		Date:       day.Format(dateLayout),
		Clinicians: []domain.Clinician{},
		Rooms:      []domain.Room{},
		Slots:      buildSlots(startMin, endMin, s.slotMinutes),
	}

	if all, err := s.clinicians.List(ctx); err == nil {
		for _, c := range all {
			ok, err := s.roster.CanWork(ctx, c.ID, windowStart, windowEnd)
			if err != nil || !ok {
				continue
			}
			free, err := s.isFree(ctx, domain.ResourceClinician, c.ID, windowStart, windowEnd)
			if err != nil || !free {
				continue
			}
			result.Clinicians = append(result.Clinicians, c)
		}
	}

	if rooms, err := s.rooms.ListBookable(ctx); err == nil {
		for _, room := range rooms {
			free, err := s.isFree(ctx, domain.ResourceRoom, room.ID, windowStart, windowEnd)
			if err != nil || !free {
				continue
			}
			result.Rooms = append(result.Rooms, room)
		}
	}

	return result, nil
}

func (s *Service) isFree(ctx context.Context, kind domain.ResourceKind, id int64, start, end time.Time) (bool, error) {
	overlapping, err := s.bookings.FindOverlapping(ctx, kind, id, start, end, 0)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

func buildSlots(startMin, endMin, step int) []Slot {
	slots := make([]Slot, 0, (endMin-startMin)/step+1)
	for m := startMin; m < endMin; m += step {
		end := m + step
		if end > endMin {
			end = endMin
		}
		slots = append(slots, Slot{
			StartTime: minutesToClock(m),
			EndTime:   minutesToClock(end),
		})
	}
	return slots
}

func clockToMinutes(clock string) (int, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
