package repository

import (
	"context"

	"clinicops/internal/domain"

	"gorm.io/gorm"
)

type ShiftTemplateRepository struct {
	db *gorm.DB
}

func NewShiftTemplateRepository(db *gorm.DB) *ShiftTemplateRepository {
	return &ShiftTemplateRepository{db: db}
}

func (r *ShiftTemplateRepository) ListActive(ctx context.Context) ([]domain.ShiftTemplate, error) {
	var ts []domain.ShiftTemplate
	tx := r.db.WithContext(ctx).Table("shift_templates").
		Where("is_active = ?", true).
		Order("start_time").
		Find(&ts)
	return ts, tx.Error
}

func (r *ShiftTemplateRepository) GetByID(ctx context.Context, id int64) (*domain.ShiftTemplate, error) {
	var t domain.ShiftTemplate
	if tx := r.db.WithContext(ctx).Table("shift_templates").First(&t, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}
