package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
	"github.com/yakhltv/yakhltv-api/internal/store"
	"github.com/yakhltv/yakhltv-api/internal/utils"
)

const defaultRating = 1.0

type TeamService struct {
	store *store.TeamStore
}

func NewTeamService(store *store.TeamStore) *TeamService {
	return &TeamService{store: store}
}

type TeamInput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type PlayerInput struct {
	Name   string   `json:"name"`
	Team   string   `json:"team"`
	Rating *float64 `json:"rating"`
}

func (s *TeamService) GetTeams(ctx context.Context) ([]bracket.Team, error) {
	return s.store.GetTeams(ctx)
}

func (s *TeamService) GetTeam(ctx context.Context, id string) (*bracket.Team, error) {
	return s.store.GetTeam(ctx, id)
}

// CreateTeam uses the team name as its id unless one is given.
func (s *TeamService) CreateTeam(ctx context.Context, input TeamInput) (string, error) {
	id := utils.FirstNonEmpty(input.ID, input.Name)
	if id == "" {
		return "", fmt.Errorf("%w: team id or name is required", ErrInvalidInput)
	}

	team := bracket.Team{ID: id, Name: input.Name, Country: input.Country}
	if err := s.store.CreateTeam(ctx, &team); err != nil {
		return "", err
	}
	return id, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id string, input TeamInput) error {
	return s.store.UpdateTeam(ctx, &bracket.Team{ID: id, Name: input.Name, Country: input.Country})
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	return s.store.DeleteTeam(ctx, id)
}

func (s *TeamService) GetPlayers(ctx context.Context) ([]bracket.Player, error) {
	return s.store.GetPlayers(ctx)
}

func (s *TeamService) CreatePlayer(ctx context.Context, input PlayerInput) (string, error) {
	player := bracket.Player{
		ID:     uuid.NewString(),
		Name:   input.Name,
		Team:   input.Team,
		Rating: ratingOrDefault(input.Rating),
		KD:     1.0,
	}
	if err := s.store.CreatePlayer(ctx, &player); err != nil {
		return "", err
	}
	return player.ID, nil
}

func (s *TeamService) UpdatePlayer(ctx context.Context, id string, input PlayerInput) error {
	return s.store.UpdatePlayer(ctx, &bracket.Player{
		ID:     id,
		Name:   input.Name,
		Team:   input.Team,
		Rating: ratingOrDefault(input.Rating),
	})
}

func (s *TeamService) DeletePlayer(ctx context.Context, id string) error {
	return s.store.DeletePlayer(ctx, id)
}

// A missing or zero rating falls back to the default.
func ratingOrDefault(rating *float64) float64 {
	if r := utils.OrZero(rating); r != 0 {
		return r
	}
	return defaultRating
}
