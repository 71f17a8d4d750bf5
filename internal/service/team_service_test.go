package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakhltv/yakhltv-api/internal/store"
	"github.com/yakhltv/yakhltv-api/internal/utils"
)

func TestCreateTeam_IDDefaultsToName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	teamService := NewTeamService(store.NewTeamStore(db))
	ctx := context.Background()

	id, err := teamService.CreateTeam(ctx, TeamInput{Name: "Team A", Country: "RU"})
	require.NoError(t, err)
	assert.Equal(t, "Team A", id)

	id, err = teamService.CreateTeam(ctx, TeamInput{ID: "vitality", Name: "Team Vitality"})
	require.NoError(t, err)
	assert.Equal(t, "vitality", id)

	team, err := teamService.GetTeam(ctx, "vitality")
	require.NoError(t, err)
	assert.Equal(t, "Team Vitality", team.Name)
	assert.Equal(t, "", team.Country)

	_, err = teamService.CreateTeam(ctx, TeamInput{Country: "SE"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreatePlayer_RatingDefaults(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	teamService := NewTeamService(store.NewTeamStore(db))
	ctx := context.Background()

	defaulted, err := teamService.CreatePlayer(ctx, PlayerInput{Name: "rookie"})
	require.NoError(t, err)
	rated, err := teamService.CreatePlayer(ctx, PlayerInput{Name: "s1mple", Team: "Team A", Rating: utils.Ptr(1.78)})
	require.NoError(t, err)

	players, err := teamService.GetPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, rated, players[0].ID)
	assert.Equal(t, 1.78, players[0].Rating)
	assert.Equal(t, 1.0, players[0].KD)
	assert.Equal(t, defaulted, players[1].ID)
	assert.Equal(t, 1.0, players[1].Rating)

	require.NoError(t, teamService.UpdatePlayer(ctx, defaulted, PlayerInput{Name: "rookie", Team: "Team B", Rating: utils.Ptr(2.1)}))
	players, err = teamService.GetPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaulted, players[0].ID)
	assert.Equal(t, "Team B", players[0].Team)
}

func TestCreateNews(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	newsService := NewNewsService(store.NewNewsStore(db))
	newsService.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	_, err := newsService.CreateNews(ctx, NewsInput{Summary: "no title"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	id, err := newsService.CreateNews(ctx, NewsInput{Title: "Major announced"})
	require.NoError(t, err)

	news, err := newsService.GetNews(ctx)
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, id, news[0].ID)
	assert.Equal(t, "2025-12-10T18:30:00.000Z", news[0].Date)
	assert.Equal(t, "", news[0].Summary)

	require.NoError(t, newsService.DeleteNews(ctx, id))
	news, err = newsService.GetNews(ctx)
	require.NoError(t, err)
	assert.Empty(t, news)
}
