// Package repository provides data access for the admin review module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	regModel "github.com/ithalar/team-registration/internal/registration/model"
)

// Repository defines the data access operations of the review workflow.
type Repository interface {
	// ListTeams returns all teams, newest first.
	ListTeams(ctx context.Context) ([]regModel.Team, error)

	// GetTeam finds a team by identifier.
	GetTeam(ctx context.Context, teamID string) (*regModel.Team, error)

	// UpdateStatus sets the status of the given team.
	UpdateStatus(ctx context.Context, teamID string, status regModel.Status) error

	// ListPlayers returns a team's players ordered by jersey number.
	ListPlayers(ctx context.Context, teamID string) ([]regModel.Player, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new review repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListTeams returns all teams ordered by creation time descending.
func (r *repository) ListTeams(ctx context.Context) ([]regModel.Team, error) {
	var teams []regModel.Team
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []regModel.Team{}
	}
	return teams, nil
}

// GetTeam finds a team by identifier.
func (r *repository) GetTeam(ctx context.Context, teamID string) (*regModel.Team, error) {
	var team regModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, regModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// UpdateStatus sets the status of the given team.
func (r *repository) UpdateStatus(ctx context.Context, teamID string, status regModel.Status) error {
	result := r.db.WithContext(ctx).
		Model(&regModel.Team{}).
		Where("id = ?", teamID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return regModel.ErrTeamNotFound
	}
	return nil
}

// ListPlayers returns a team's players ordered by jersey number ascending.
func (r *repository) ListPlayers(ctx context.Context, teamID string) ([]regModel.Player, error) {
	var players []regModel.Player
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("jersey_number ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []regModel.Player{}
	}
	return players, nil
}
