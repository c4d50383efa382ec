// Package service provides business logic for the admin review workflow.
package service

import (
	"context"

	"go.uber.org/zap"

	regModel "github.com/ithalar/team-registration/internal/registration/model"
	"github.com/ithalar/team-registration/internal/review/repository"
)

// Service defines the review workflow operations.
type Service interface {
	// ListTeams returns all registered teams, newest first.
	ListTeams(ctx context.Context) ([]regModel.Team, error)

	// SetStatus approves or rejects a team, then returns the refreshed list.
	SetStatus(ctx context.Context, teamID string, status regModel.Status) ([]regModel.Team, error)

	// TeamDetail returns one team with its roster ordered by jersey number.
	TeamDetail(ctx context.Context, teamID string) (*regModel.TeamDetail, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new review service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// ListTeams returns all registered teams, newest first.
func (s *service) ListTeams(ctx context.Context) ([]regModel.Team, error) {
	return s.repo.ListTeams(ctx)
}

// SetStatus updates the team's status and re-reads the list so the caller
// always renders store state, never an optimistic local mutation.
func (s *service) SetStatus(ctx context.Context, teamID string, status regModel.Status) ([]regModel.Team, error) {
	if !status.IsReviewDecision() {
		return nil, regModel.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, teamID, status); err != nil {
		return nil, err
	}

	s.logger.Infow("team status updated", "team_id", teamID, "status", status)
	return s.repo.ListTeams(ctx)
}

// TeamDetail returns one team with its roster. Both reads must succeed.
func (s *service) TeamDetail(ctx context.Context, teamID string) (*regModel.TeamDetail, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	players, err := s.repo.ListPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &regModel.TeamDetail{Team: *team, Players: players}, nil
}
