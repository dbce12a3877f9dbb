package repository

import (
	"context"
	"time"

	"clinicops/internal/domain"

	"gorm.io/gorm"
)

type ClinicianRepository struct {
	db *gorm.DB
}

func NewClinicianRepository(db *gorm.DB) *ClinicianRepository {
	return &ClinicianRepository{db: db}
}

func (r *ClinicianRepository) Create(ctx context.Context, c *domain.Clinician) error {
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	c.IsActive = true
	return r.db.WithContext(ctx).Table("clinicians").Create(c).Error
}

func (r *ClinicianRepository) GetByID(ctx context.Context, id int64) (*domain.Clinician, error) {
	var c domain.Clinician
	if tx := r.db.WithContext(ctx).Table("clinicians").First(&c, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *ClinicianRepository) List(ctx context.Context) ([]domain.Clinician, error) {
	var cs []domain.Clinician
	tx := r.db.WithContext(ctx).Table("clinicians").
		Where("is_active = ?", true).
		Order("last_name, first_name").
		Find(&cs)
	return cs, tx.Error
}

func (r *ClinicianRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Clinician, error) {
	var c domain.Clinician
	if tx := r.db.WithContext(ctx).Table("clinicians").First(&c, id); tx.Error != nil {
		return nil, tx.Error
	}
	fields["updated_at"] = time.Now().UTC()
	if tx := r.db.WithContext(ctx).Table("clinicians").Where("id = ?", id).Updates(fields); tx.Error != nil {
		return nil, tx.Error
	}
	if tx := r.db.WithContext(ctx).Table("clinicians").First(&c, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}
