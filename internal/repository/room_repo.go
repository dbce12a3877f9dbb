package repository

import (
	"context"
	"time"

	"clinicops/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	room.CreatedAt = time.Now().UTC()
	room.UpdatedAt = room.CreatedAt
	if room.Availability == "" {
		room.Availability = domain.RoomAvailable
	}
	return r.db.WithContext(ctx).Table("rooms").Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if tx := r.db.WithContext(ctx).Table("rooms").First(&room, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).Table("rooms").Order("number").Find(&rooms)
	return rooms, tx.Error
}

// ListBookable returns rooms not administratively withdrawn from service.
// Occupied rooms are included: occupancy is a cache, the conflict check
// against bookings decides.
func (r *RoomRepository) ListBookable(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).Table("rooms").
		Where("availability <> ?", string(domain.RoomUnavailable)).
		Order("number").
		Find(&rooms)
	return rooms, tx.Error
}

func (r *RoomRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Room, error) {
	var room domain.Room
	if tx := r.db.WithContext(ctx).Table("rooms").First(&room, id); tx.Error != nil {
		return nil, tx.Error
	}
	fields["updated_at"] = time.Now().UTC()
	if tx := r.db.WithContext(ctx).Table("rooms").Where("id = ?", id).Updates(fields); tx.Error != nil {
		return nil, tx.Error
	}
	if tx := r.db.WithContext(ctx).Table("rooms").First(&room, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

// SetAvailability updates only the availability hint, leaving the rest of the
// row alone so concurrent edits are not clobbered.
func (r *RoomRepository) SetAvailability(ctx context.Context, id int64, state domain.RoomAvailability) error {
	return r.db.WithContext(ctx).Table("rooms").
		Where("id = ?", id).
		Updates(map[string]any{"availability": string(state), "updated_at": time.Now().UTC()}).
		Error
}
