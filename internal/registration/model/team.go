// Package model provides domain models and DTOs for the registration module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the admin-controlled lifecycle state of a registered team.
type Status string

// Lifecycle values. New teams always start pending.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three lifecycle values.
func (s Status) Valid() bool {
	return s == StatusPending || s.IsReviewDecision()
}

// IsReviewDecision reports whether s is a value an admin may set on review.
func (s Status) IsReviewDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Team represents a registered team.
// Matches the teams table schema.
type Team struct {
	ID           string    `gorm:"primaryKey;column:id;type:uuid"                               json:"id"`
	TeamName     string    `gorm:"column:team_name;type:varchar(255);not null;uniqueIndex"      json:"team_name"`
	ManagerName  string    `gorm:"column:manager_name;type:varchar(255);not null"               json:"manager_name"`
	ManagerPhone string    `gorm:"column:manager_phone;type:varchar(32);not null"               json:"manager_phone"`
	LogoURL      string    `gorm:"column:logo_url;type:text;not null;default:''"                json:"logo_url"`
	Status       Status    `gorm:"column:status;type:varchar(16);not null;default:pending"      json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"    json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"    json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns the identifier and the initial pending status.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// Player represents one rostered player of a team.
// Matches the players table schema. Players are created together with their
// team and have no independent update path.
type Player struct {
	ID           string    `gorm:"primaryKey;column:id;type:uuid"                                      json:"id"`
	TeamID       string    `gorm:"column:team_id;type:uuid;not null;index:idx_players_team_id"         json:"team_id"`
	PlayerName   string    `gorm:"column:player_name;type:varchar(255);not null"                       json:"player_name"`
	JerseyNumber int       `gorm:"column:jersey_number;type:integer;not null"                          json:"jersey_number"`
	Position     string    `gorm:"column:position;type:varchar(64);not null"                           json:"position"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"           json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}

// BeforeCreate assigns the identifier.
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
