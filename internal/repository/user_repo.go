package repository

import (
	"context"
	"errors"

	"clinicops/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if tx := r.db.WithContext(ctx).Table("users").First(&u, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

// FindByEmail returns (nil, nil) when no user carries the email, so callers
// can fall through to name matching without error plumbing.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, nil
	}
	var u domain.User
	tx := r.db.WithContext(ctx).Table("users").Where("email = ?", email).First(&u)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &u, nil
}

// FindByNameLike matches a directory user whose name contains both given
// fragments in order, the legacy fuzzy fallback for clinician rows that
// predate the explicit user link.
func (r *UserRepository) FindByNameLike(ctx context.Context, first, last string) (*domain.User, error) {
	if first == "" || last == "" {
		return nil, nil
	}
	pattern := "%" + first + "%" + last + "%"
	var u domain.User
	tx := r.db.WithContext(ctx).Table("users").Where("name LIKE ?", pattern).First(&u)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Table("users").Create(u).Error
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	tx := r.db.WithContext(ctx).Table("users").Order("name").Find(&users)
	return users, tx.Error
}
