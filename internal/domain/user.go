package domain

import "time"

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleDoctor       UserRole = "doctor"
	RoleNurse        UserRole = "nurse"
	RoleReceptionist UserRole = "receptionist"
)

// User is a staff directory record. Clinician rows link to it either through
// an explicit foreign key or, for legacy rows, by email/name matching.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanManageBookings reports whether the role may create or modify bookings.
func (u *User) CanManageBookings() bool {
	switch u.Role {
	case RoleAdmin, RoleReceptionist, RoleDoctor:
		return true
	}
	return false
}
