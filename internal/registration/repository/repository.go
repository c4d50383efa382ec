// Package repository provides data access for the registration module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ithalar/team-registration/internal/registration/model"
)

// Repository defines the data access operations of the registration workflow.
type Repository interface {
	// CreateTeam inserts a new team row. A name collision returns
	// model.ErrTeamExists.
	CreateTeam(ctx context.Context, team *model.Team) (*model.Team, error)

	// CreatePlayers inserts the given player rows in one batch.
	CreatePlayers(ctx context.Context, players []model.Player) error
}

type repository struct {
	db *gorm.DB
}

// New creates a registration repository. Pass a transaction handle to make
// the operations atomic.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateTeam inserts a new team row.
func (r *repository) CreateTeam(ctx context.Context, team *model.Team) (*model.Team, error) {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if isDuplicateError(err) {
			return nil, model.ErrTeamExists
		}
		return nil, err
	}
	return team, nil
}

// CreatePlayers inserts the given player rows in one batch.
func (r *repository) CreatePlayers(ctx context.Context, players []model.Player) error {
	if len(players) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&players).Error
}

// isDuplicateError checks if err is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Postgres and sqlite phrase the violation differently.
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
