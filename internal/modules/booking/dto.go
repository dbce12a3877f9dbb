package booking

import "time"

type CreateBookingRequest struct {
	PatientID   int64     `json:"patient_id" binding:"required"`
	ClinicianID *int64    `json:"clinician_id"`
	RoomID      *int64    `json:"room_id"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Reason      string    `json:"reason"`
}

// UpdateBookingRequest carries partial field changes. Nil means "leave as
// is"; conflict checks only re-run for the dimensions that actually change.
// ClearClinician and ClearRoom unassign the optional resources, since a nil
// pointer cannot distinguish "absent" from "set to null".
type UpdateBookingRequest struct {
	PatientID      *int64     `json:"patient_id"`
	ClinicianID    *int64     `json:"clinician_id"`
	RoomID         *int64     `json:"room_id"`
	ClearClinician bool       `json:"clear_clinician,omitempty"`
	ClearRoom      bool       `json:"clear_room,omitempty"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	Status         *string    `json:"status"`
	Reason         *string    `json:"reason"`
	Diagnosis      *string    `json:"diagnosis"`
	Treatment      *string    `json:"treatment"`
	Prescription   *string    `json:"prescription"`
}
