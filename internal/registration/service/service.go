// Package service implements the team registration submission workflow.
package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ithalar/team-registration/internal/registration/model"
	"github.com/ithalar/team-registration/internal/registration/repository"
	"github.com/ithalar/team-registration/internal/storage"
)

// Stage identifies a step of the submission workflow.
type Stage string

// Workflow stages, in execution order.
const (
	StageValidating       Stage = "validating"
	StageUploadingLogo    Stage = "uploading_logo"
	StageInsertingTeam    Stage = "inserting_team"
	StageInsertingPlayers Stage = "inserting_players"
)

// SubmissionError reports which workflow stage a submission failed in.
type SubmissionError struct {
	Stage Stage
	// Fields holds per-field messages when Stage is StageValidating.
	Fields map[string]string
	Err    error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission failed at %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("submission failed at %s", e.Stage)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// LogoUpload carries an optional logo file through the workflow.
type LogoUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Service defines the registration workflow operations.
type Service interface {
	// Submit validates the draft, uploads the optional logo, and persists the
	// team with its roster. Failures carry the stage they occurred in.
	Submit(ctx context.Context, draft *model.Draft, logo *LogoUpload) (*model.RegisterResponse, error)
}

type service struct {
	db     *gorm.DB
	store  storage.Store
	logger *zap.SugaredLogger
}

// New creates a new registration service instance.
func New(db *gorm.DB, store storage.Store, logger *zap.SugaredLogger) Service {
	return &service{db: db, store: store, logger: logger}
}

// Submit runs the full submission workflow:
// validate -> upload logo (optional) -> insert team + players atomically.
//
// The team and its players are written in one transaction, so a player-insert
// failure cannot leave an orphaned team row behind.
func (s *service) Submit(ctx context.Context, draft *model.Draft, logo *LogoUpload) (*model.RegisterResponse, error) {
	if fieldErrs := model.Validate(draft); len(fieldErrs) > 0 {
		return nil, &SubmissionError{Stage: StageValidating, Fields: fieldErrs, Err: model.ErrInvalidDraft}
	}

	logoURL := ""
	if logo != nil {
		key := storage.ObjectKey(logo.Filename)
		url, err := s.store.Upload(ctx, key, logo.ContentType, logo.Reader)
		if err != nil {
			return nil, &SubmissionError{Stage: StageUploadingLogo, Err: err}
		}
		logoURL = url
	}

	var resp *model.RegisterResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		team, err := txRepo.CreateTeam(ctx, &model.Team{
			TeamName:     strings.TrimSpace(draft.TeamName),
			ManagerName:  strings.TrimSpace(draft.ManagerName),
			ManagerPhone: strings.TrimSpace(draft.ManagerPhone),
			LogoURL:      logoURL,
			Status:       model.StatusPending,
		})
		if err != nil {
			return &SubmissionError{Stage: StageInsertingTeam, Err: err}
		}

		players, err := buildPlayers(team.ID, draft.NamedEntries())
		if err != nil {
			return &SubmissionError{Stage: StageInsertingPlayers, Err: err}
		}
		if err := txRepo.CreatePlayers(ctx, players); err != nil {
			return &SubmissionError{Stage: StageInsertingPlayers, Err: err}
		}

		resp = &model.RegisterResponse{Team: *team, Players: players}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team registered",
		"team_id", resp.Team.ID,
		"team_name", resp.Team.TeamName,
		"players", len(resp.Players),
		"has_logo", logoURL != "",
	)
	return resp, nil
}

// buildPlayers converts named roster entries into player rows. Validation has
// already rejected non-numeric jerseys; a failed conversion here means the
// draft was mutated between validation and submission.
func buildPlayers(teamID string, entries []model.RosterEntry) ([]model.Player, error) {
	players := make([]model.Player, 0, len(entries))
	for _, e := range entries {
		jersey, err := strconv.Atoi(strings.TrimSpace(e.Jersey))
		if err != nil {
			return nil, fmt.Errorf("jersey %q is not numeric: %w", e.Jersey, err)
		}
		players = append(players, model.Player{
			TeamID:       teamID,
			PlayerName:   strings.TrimSpace(e.Name),
			JerseyNumber: jersey,
			Position:     strings.TrimSpace(e.Position),
		})
	}
	return players, nil
}
