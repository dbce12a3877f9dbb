package domain

import "time"

type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "scheduled"
	ShiftCancelled ShiftStatus = "cancelled"
)

// StaffShift is a staff member's committed working interval on one calendar
// date. Start and end are clock times in "HH:MM" form; Date carries the day
// at midnight UTC.
type StaffShift struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id" validate:"required"`
	ShiftTemplateID *int64      `json:"shift_template_id,omitempty"`
	Date            time.Time   `json:"schedule_date" validate:"required"`
	StartTime       string      `json:"start_time" validate:"required"`
	EndTime         string      `json:"end_time" validate:"required"`
	Status          ShiftStatus `json:"status"`
	Notes           string      `json:"notes,omitempty" gorm:"type:text"`
	CreatedBy       int64       `json:"created_by"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	User     *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Template *ShiftTemplate `json:"template,omitempty" gorm:"foreignKey:ShiftTemplateID"`
}

// ShiftTemplate is a named, reusable (start, end, color) preset for quickly
// populating shifts.
type ShiftTemplate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
	Color     string    `json:"color,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveRequest covers an inclusive date range during which the staff member
// must not be booked once approved.
type LeaveRequest struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id" validate:"required"`
	LeaveType       string      `json:"leave_type" validate:"required"`
	StartDate       time.Time   `json:"start_date" validate:"required"`
	EndDate         time.Time   `json:"end_date" validate:"required"`
	Reason          string      `json:"reason,omitempty" gorm:"type:text"`
	Status          LeaveStatus `json:"status"`
	ApprovedBy      *int64      `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time  `json:"approved_at,omitempty"`
	RejectionReason string      `json:"rejection_reason,omitempty" gorm:"type:text"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
