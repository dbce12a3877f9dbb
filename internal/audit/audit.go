package audit

import (
	"context"
	"encoding/json"
	"log"

	"clinicops/internal/domain"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, ev *domain.AuditEvent) error
}

// Recorder writes structured audit events after successful mutations.
// A failed write is logged and swallowed: auditing must never roll back or
// fail the operation it describes.
type Recorder struct {
	repo Repository
}

func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

func (r *Recorder) Record(ctx context.Context, userID int64, action, targetType string, targetID int64, details any) {
	var payload []byte
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			log.Printf("audit_marshal_failed action=%s target=%s/%d error=%q", action, targetType, targetID, err)
		} else {
			payload = b
		}
	}

	ev := &domain.AuditEvent{
		RequestID:  uuid.NewString(),
		UserID:     userID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    payload,
	}

	if err := r.repo.Insert(ctx, ev); err != nil {
		log.Printf("audit_write_failed action=%s target=%s/%d user_id=%d error=%q", action, targetType, targetID, userID, err)
	}
}
