package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
	"github.com/yakhltv/yakhltv-api/internal/store"
)

func TestCreateTournament_Defaults(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tournamentService := NewTournamentService(db, store.NewTournamentStore(db), store.NewMatchStore(db), nil)
	ctx := context.Background()

	id, err := tournamentService.CreateTournament(ctx, TournamentInput{Name: "YAK Cup"})
	require.NoError(t, err)

	tournament, err := tournamentService.GetTournament(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "YAK Cup", tournament.Name)
	assert.Equal(t, bracket.SingleElimination, tournament.Format)
	assert.Equal(t, "[]", tournament.TeamsJSON)
	assert.Equal(t, []string{}, tournament.Teams)
}

func TestUpdateTournament_StoresTeams(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tournamentService := NewTournamentService(db, store.NewTournamentStore(db), store.NewMatchStore(db), nil)
	ctx := context.Background()

	id, err := tournamentService.CreateTournament(ctx, TournamentInput{Name: "YAK Cup"})
	require.NoError(t, err)

	require.NoError(t, tournamentService.UpdateTournament(ctx, id, TournamentInput{
		Name:   "YAK Cup 2025",
		Date:   "2025-12-10",
		Format: "single",
		Teams:  []string{"Team A", "Team B"},
	}))

	tournament, err := tournamentService.GetTournament(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "YAK Cup 2025", tournament.Name)
	assert.Equal(t, `["Team A","Team B"]`, tournament.TeamsJSON)
	assert.Equal(t, []string{"Team A", "Team B"}, tournament.Teams)

	require.NoError(t, tournamentService.UpdateTournament(ctx, id, TournamentInput{Name: "YAK Cup 2025"}))
	tournament, err = tournamentService.GetTournament(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "[]", tournament.TeamsJSON)

	list, err := tournamentService.GetTournaments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Teams)
}

func TestGetTournament_BrokenTeamsJSON(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tournamentService := NewTournamentService(db, store.NewTournamentStore(db), store.NewMatchStore(db), nil)

	_, err := db.Exec(`INSERT INTO tournaments (id, name, teams_json) VALUES ('broken', 'Broken', '{oops')`)
	require.NoError(t, err)

	_, err = tournamentService.GetTournament(context.Background(), "broken")
	assert.Error(t, err)
}

func TestDeleteTournament_RemovesMatches(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	matches := store.NewMatchStore(db)
	tournamentService := NewTournamentService(db, store.NewTournamentStore(db), matches, nil)
	matchService := NewMatchService(matches, NewAdvancementEngine(matches, nil))
	ctx := context.Background()

	keep, err := tournamentService.CreateTournament(ctx, TournamentInput{Name: "Keep"})
	require.NoError(t, err)
	drop, err := tournamentService.CreateTournament(ctx, TournamentInput{Name: "Drop"})
	require.NoError(t, err)

	_, err = matchService.CreateMatch(ctx, MatchInput{TournamentID: drop})
	require.NoError(t, err)
	_, err = matchService.CreateMatch(ctx, MatchInput{TournamentID: drop, Stage: "Final"})
	require.NoError(t, err)
	kept, err := matchService.CreateMatch(ctx, MatchInput{TournamentID: keep})
	require.NoError(t, err)

	bracketData, err := tournamentService.GetBracket(ctx, drop)
	require.NoError(t, err)
	assert.Len(t, bracketData.Matches, 2)
	require.Len(t, bracketData.Rounds, 2)
	assert.Equal(t, "Round 1", bracketData.Rounds[0].Stage)
	assert.Equal(t, "Final", bracketData.Rounds[1].Stage)

	require.NoError(t, tournamentService.DeleteTournament(ctx, drop))

	_, err = tournamentService.GetTournament(ctx, drop)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = tournamentService.GetBracket(ctx, drop)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	all, err := matchService.GetMatches(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept, all[0].ID)
}
