// Package model provides domain models for the auth module.
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials indicates a failed email/password check. The same
	// error covers unknown emails so responses do not leak which part failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAdminNotFound indicates that no admin user matches the email.
	ErrAdminNotFound = errors.New("admin user not found")
)

// AdminUser represents a dashboard administrator.
// Matches the admin_users table schema.
type AdminUser struct {
	ID           string    `gorm:"primaryKey;column:id;type:uuid"                            json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"       json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"           json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (AdminUser) TableName() string {
	return "admin_users"
}

// BeforeCreate assigns the identifier.
func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
