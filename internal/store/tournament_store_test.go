package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
	"github.com/yakhltv/yakhltv-api/internal/db"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")
	database.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(database.DB), "Failed to apply migrations")

	return database
}

func TestCreateTournament(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewTournamentStore(db)
	ctx := context.Background()

	tournament := &bracket.Tournament{
		ID:        "t1",
		Name:      "YAK Cup",
		Date:      "2025-12-10",
		Format:    bracket.SingleElimination,
		TeamsJSON: `["Team A","Team B"]`,
	}
	require.NoError(t, store.CreateTournament(ctx, tournament))

	fetched, err := store.GetTournament(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, tournament.Name, fetched.Name)
	assert.Equal(t, tournament.Date, fetched.Date)
	assert.Equal(t, tournament.Format, fetched.Format)
	assert.Equal(t, tournament.TeamsJSON, fetched.TeamsJSON)
	assert.Nil(t, fetched.Teams)

	_, err = store.GetTournament(ctx, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetTournaments_OrderedByDate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewTournamentStore(db)
	ctx := context.Background()

	for _, tr := range []bracket.Tournament{
		{ID: "late", Name: "Late", Date: "2026-03-01", TeamsJSON: "[]"},
		{ID: "early", Name: "Early", Date: "2025-01-01", TeamsJSON: "[]"},
	} {
		require.NoError(t, store.CreateTournament(ctx, &tr))
	}

	tournaments, err := store.GetTournaments(ctx)
	require.NoError(t, err)
	require.Len(t, tournaments, 2)
	assert.Equal(t, "early", tournaments[0].ID)
	assert.Equal(t, "late", tournaments[1].ID)
}

func TestUpdateTournament(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewTournamentStore(db)
	ctx := context.Background()

	require.NoError(t, store.CreateTournament(ctx, &bracket.Tournament{ID: "t1", Name: "Old", TeamsJSON: "[]"}))
	require.NoError(t, store.UpdateTournament(ctx, &bracket.Tournament{
		ID: "t1", Name: "New", Date: "2025-05-05", Format: "single", TeamsJSON: `["Team C"]`,
	}))

	fetched, err := store.GetTournament(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "New", fetched.Name)
	assert.Equal(t, `["Team C"]`, fetched.TeamsJSON)
}

func TestDeleteTournamentTx_CascadesMatches(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tournaments := NewTournamentStore(db)
	matches := NewMatchStore(db)
	ctx := context.Background()

	require.NoError(t, tournaments.CreateTournament(ctx, &bracket.Tournament{ID: "t1", Name: "Cup", TeamsJSON: "[]"}))
	_, err := matches.CreateMatch(ctx, newTestMatch("m1", "t1", "Round 1"))
	require.NoError(t, err)
	_, err = matches.CreateMatch(ctx, newTestMatch("m2", "other", "Round 1"))
	require.NoError(t, err)

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, tournaments.DeleteTournamentTx(ctx, tx, "t1"))
	require.NoError(t, matches.DeleteMatchesByTournamentTx(ctx, tx, "t1"))
	require.NoError(t, tx.Commit())

	_, err = tournaments.GetTournament(ctx, "t1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	remaining, err := matches.GetMatches(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "m2", remaining[0].ID)
}
