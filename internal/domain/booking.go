package domain

import "time"

type BookingStatus string

const (
	BookingScheduled BookingStatus = "scheduled"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ResourceKind is one of the three independently-conflicting axes a booking
// occupies: the clinician's time, the room, and the patient's time.
type ResourceKind string

const (
	ResourceClinician ResourceKind = "clinician"
	ResourceRoom      ResourceKind = "room"
	ResourcePatient   ResourceKind = "patient"
)

type Booking struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id" validate:"required"`
	ClinicianID *int64    `json:"clinician_id,omitempty"`
	RoomID      *int64    `json:"room_id,omitempty"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`

	Status BookingStatus `json:"status"`
	Reason string        `json:"reason,omitempty" gorm:"type:text"`

	// Clinical outcome fields, filled in after the visit. Never consulted by
	// conflict checks.
	Diagnosis    string `json:"diagnosis,omitempty" gorm:"type:text"`
	Treatment    string `json:"treatment,omitempty" gorm:"type:text"`
	Prescription string `json:"prescription,omitempty" gorm:"type:text"`

	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Patient   *Patient   `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	Clinician *Clinician `json:"clinician,omitempty" gorm:"foreignKey:ClinicianID"`
	Room      *Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// Active reports whether the booking still claims its resources.
// Cancelled bookings are kept for history but never conflict.
func (b *Booking) Active() bool {
	return b.Status != BookingCancelled
}
