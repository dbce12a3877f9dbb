package domain

import "time"

// RoomAvailability is a derived, best-effort hint for list views. The
// authoritative answer is always recomputed from bookings at decision time.
type RoomAvailability string

const (
	RoomAvailable   RoomAvailability = "available"
	RoomOccupied    RoomAvailability = "occupied"
	RoomUnavailable RoomAvailability = "unavailable"
)

type RoomType string

const (
	RoomConsultation RoomType = "consultation"
	RoomExamination  RoomType = "examination"
	RoomProcedure    RoomType = "procedure"
	RoomWard         RoomType = "ward"
)

type Room struct {
	ID           int64            `json:"id"`
	Number       string           `json:"number" validate:"required"`
	Name         string           `json:"name"`
	RoomType     RoomType         `json:"room_type"`
	Capacity     int              `json:"capacity" validate:"gte=0"`
	Availability RoomAvailability `json:"availability"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
