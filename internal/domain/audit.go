package domain

import "time"

// AuditEvent is an append-only record of a successful mutation. Writing one
// must never fail the mutation it describes.
type AuditEvent struct {
	ID         int64     `json:"id"`
	RequestID  string    `json:"request_id"`
	UserID     int64     `json:"user_id"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   int64     `json:"target_id"`
	Details    []byte    `json:"details,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
