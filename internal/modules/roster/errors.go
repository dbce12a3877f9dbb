package roster

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrShiftConflict = errors.New("shift overlaps an existing shift for this staff member")
	ErrLeaveDecided  = errors.New("leave request already decided")
)
