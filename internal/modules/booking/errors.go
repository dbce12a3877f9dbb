package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("booking not found")

	// Scheduling conflicts, one per failing check, in the order the
	// coordinator runs them. The first failure wins; conflicts are never
	// aggregated.
	ErrClinicianNotRostered = errors.New("clinician is not scheduled to work or is on leave")
	ErrClinicianBusy        = errors.New("clinician is not available at this time")
	ErrRoomBusy             = errors.New("room is not available at this time")
	ErrPatientBusy          = errors.New("patient already has a booking at this time")

	ErrStatusTransition = errors.New("invalid status transition")
)

// IsConflict reports whether err is one of the scheduling conflicts a caller
// may retry with different parameters.
func IsConflict(err error) bool {
	return errors.Is(err, ErrClinicianNotRostered) ||
		errors.Is(err, ErrClinicianBusy) ||
		errors.Is(err, ErrRoomBusy) ||
		errors.Is(err, ErrPatientBusy)
}
