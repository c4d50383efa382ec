// Package repository provides data access for the auth module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authModel "github.com/ithalar/team-registration/internal/auth/model"
)

// Repository defines the data access operations for admin users.
type Repository interface {
	// GetByEmail finds an admin user by email.
	GetByEmail(ctx context.Context, email string) (*authModel.AdminUser, error)

	// Create inserts a new admin user.
	Create(ctx context.Context, user *authModel.AdminUser) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new auth repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByEmail finds an admin user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*authModel.AdminUser, error) {
	var user authModel.AdminUser
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrAdminNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new admin user.
func (r *repository) Create(ctx context.Context, user *authModel.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}
