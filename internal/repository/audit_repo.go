package repository

import (
	"context"
	"time"

	"clinicops/internal/domain"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, ev *domain.AuditEvent) error {
	ev.CreatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Table("audit_events").Create(ev).Error
}
