package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	regModel "github.com/ithalar/team-registration/internal/registration/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&regModel.Team{}, &regModel.Player{})
	require.NoError(t, err)

	return db
}

func seedTeam(t *testing.T, db *gorm.DB, name string, createdAt time.Time) *regModel.Team {
	team := &regModel.Team{
		TeamName:     name,
		ManagerName:  "Kumar",
		ManagerPhone: "9876543210",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	require.NoError(t, db.Create(team).Error)
	return team
}

func TestRepository_ListTeams(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered newest first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		base := time.Now().Add(-time.Hour)
		seedTeam(t, db, "Oldest", base)
		seedTeam(t, db, "Middle", base.Add(10*time.Minute))
		seedTeam(t, db, "Newest", base.Add(20*time.Minute))

		teams, err := repo.ListTeams(ctx)

		require.NoError(t, err)
		require.Len(t, teams, 3)
		assert.Equal(t, "Newest", teams[0].TeamName)
		assert.Equal(t, "Oldest", teams[2].TeamName)
	})

	t.Run("empty store returns empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		teams, err := repo.ListTeams(ctx)

		require.NoError(t, err)
		assert.NotNil(t, teams)
		assert.Empty(t, teams)
	})
}

func TestRepository_GetTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seeded := seedTeam(t, db, "Ithalar FC", time.Now())

		team, err := repo.GetTeam(ctx, seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, "Ithalar FC", team.TeamName)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		team, err := repo.GetTeam(ctx, "t-123")

		assert.Nil(t, team)
		assert.ErrorIs(t, err, regModel.ErrTeamNotFound)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updates and is visible on reload", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seeded := seedTeam(t, db, "Ithalar FC", time.Now())

		require.NoError(t, repo.UpdateStatus(ctx, seeded.ID, regModel.StatusApproved))

		teams, err := repo.ListTeams(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Equal(t, regModel.StatusApproved, teams[0].Status)
	})

	t.Run("unknown team", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		err := repo.UpdateStatus(ctx, "t-123", regModel.StatusRejected)

		assert.ErrorIs(t, err, regModel.ErrTeamNotFound)
	})
}

func TestRepository_ListPlayers(t *testing.T) {
	ctx := context.Background()

	db := setupTestDB(t)
	repo := New(db)
	team := seedTeam(t, db, "Ithalar FC", time.Now())
	other := seedTeam(t, db, "Rivals", time.Now())

	players := []regModel.Player{
		{TeamID: team.ID, PlayerName: "Nine", JerseyNumber: 9, Position: "Striker"},
		{TeamID: team.ID, PlayerName: "One", JerseyNumber: 1, Position: "Keeper"},
		{TeamID: team.ID, PlayerName: "Four", JerseyNumber: 4, Position: "Defender"},
		{TeamID: other.ID, PlayerName: "Stranger", JerseyNumber: 2, Position: "Winger"},
	}
	require.NoError(t, db.Create(&players).Error)

	got, err := repo.ListPlayers(ctx, team.ID)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 4, 9}, []int{got[0].JerseyNumber, got[1].JerseyNumber, got[2].JerseyNumber})
}
