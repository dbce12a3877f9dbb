package availability

import "clinicops/internal/domain"

// Slot is one bookable half-hour increment of the day window. The trailing
// slot is clipped when the window length is not a multiple of the slot size.
type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DayAvailability is the lookup result for one calendar day: who can see
// patients, which rooms can be booked, and the slot grid of the day window.
type DayAvailability struct {
	Date       string             `json:"date"`
	Clinicians []domain.Clinician `json:"clinicians"`
	Rooms      []domain.Room      `json:"rooms"`
	Slots      []Slot             `json:"slots"`
}
