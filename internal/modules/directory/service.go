// Package directory manages the reference data bookings point at:
// clinicians, patients and rooms.
package directory

import (
	"context"
	"errors"

	"clinicops/internal/domain"
	"clinicops/internal/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("record not found")
)

type ClinicianStore interface {
	Create(ctx context.Context, c *domain.Clinician) error
	GetByID(ctx context.Context, id int64) (*domain.Clinician, error)
	List(ctx context.Context) ([]domain.Clinician, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Clinician, error)
}

type PatientStore interface {
	Create(ctx context.Context, p *domain.Patient) error
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
}

type RoomStore interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Room, error)
}

type AuditSink interface {
	Record(ctx context.Context, userID int64, action, targetType string, targetID int64, details any)
}

type Service struct {
	clinicians ClinicianStore
	patients   PatientStore
	rooms      RoomStore
	audit      AuditSink
}

func NewService(clinicians ClinicianStore, patients PatientStore, rooms RoomStore, audit AuditSink) *Service {
	return &Service{clinicians: clinicians, patients: patients, rooms: rooms, audit: audit}
}

func (s *Service) CreateClinician(ctx context.Context, actorID int64, c *domain.Clinician) (*domain.Clinician, error) {
	if fields := validator.Validate(c); fields != nil {
		return nil, ErrValidation
	}
	c.IsActive = true
	if err := s.clinicians.Create(ctx, c); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actorID, "create_clinician", "clinician", c.ID, c)
	return c, nil
}

func (s *Service) UpdateClinician(ctx context.Context, actorID, id int64, req UpdateClinicianRequest) (*domain.Clinician, error) {
	fields := map[string]any{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Specialty != nil {
		fields["specialty"] = *req.Specialty
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.UserID != nil {
		fields["user_id"] = *req.UserID
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return nil, ErrValidation
	}

	c, err := s.clinicians.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.audit.Record(ctx, actorID, "update_clinician", "clinician", id, fields)
	return c, nil
}

func (s *Service) GetClinician(ctx context.Context, id int64) (*domain.Clinician, error) {
	c, err := s.clinicians.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ListClinicians(ctx context.Context) ([]domain.Clinician, error) {
	return s.clinicians.List(ctx)
}

func (s *Service) CreatePatient(ctx context.Context, actorID int64, p *domain.Patient) (*domain.Patient, error) {
	if fields := validator.Validate(p); fields != nil {
		return nil, ErrValidation
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actorID, "create_patient", "patient", p.ID, p)
	return p, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*domain.Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) CreateRoom(ctx context.Context, actorID int64, room *domain.Room) (*domain.Room, error) {
	if fields := validator.Validate(room); fields != nil {
		return nil, ErrValidation
	}
	if room.Availability == "" {
		room.Availability = domain.RoomAvailable
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actorID, "create_room", "room", room.ID, room)
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, actorID, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	fields := map[string]any{}
	if req.Number != nil {
		fields["number"] = *req.Number
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.RoomType != nil {
		fields["room_type"] = *req.RoomType
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.Availability != nil {
		switch domain.RoomAvailability(*req.Availability) {
		case domain.RoomAvailable, domain.RoomOccupied, domain.RoomUnavailable:
		default:
			return nil, ErrValidation
		}
		fields["availability"] = *req.Availability
	}
	if len(fields) == 0 {
		return nil, ErrValidation
	}

	room, err := s.rooms.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.audit.Record(ctx, actorID, "update_room", "room", id, fields)
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}
