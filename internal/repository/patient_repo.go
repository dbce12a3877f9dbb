package repository

import (
	"context"
	"time"

	"clinicops/internal/domain"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) error {
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	return r.db.WithContext(ctx).Table("patients").Create(p).Error
}

func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	var p domain.Patient
	if tx := r.db.WithContext(ctx).Table("patients").First(&p, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	var ps []domain.Patient
	tx := r.db.WithContext(ctx).Table("patients").Order("last_name, first_name").Find(&ps)
	return ps, tx.Error
}
