package model

import "errors"

var (
	// ErrTeamExists indicates that a team with the given name is already registered.
	ErrTeamExists = errors.New("team name already registered")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidDraft indicates that the submitted draft failed validation.
	ErrInvalidDraft = errors.New("draft failed validation")
	// ErrInvalidStatus indicates a review status outside approved/rejected.
	ErrInvalidStatus = errors.New("invalid review status")
)
