package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
	"github.com/yakhltv/yakhltv-api/internal/store"
	"github.com/yakhltv/yakhltv-api/internal/utils"
)

type TournamentService struct {
	db      *sqlx.DB
	store   *store.TournamentStore
	matches *store.MatchStore
	order   bracket.StageOrder
}

func NewTournamentService(db *sqlx.DB, store *store.TournamentStore, matches *store.MatchStore, order bracket.StageOrder) *TournamentService {
	if len(order) == 0 {
		order = bracket.DefaultStageOrder
	}
	return &TournamentService{db: db, store: store, matches: matches, order: order}
}

type TournamentInput struct {
	Name   string   `json:"name"`
	Date   string   `json:"date"`
	Format string   `json:"format"`
	Teams  []string `json:"teams"`
}

type BracketData struct {
	Tournament *bracket.Tournament `json:"tournament"`
	Matches    []bracket.Match     `json:"-"`
	Rounds     []bracket.Round     `json:"rounds"`
}

func (s *TournamentService) GetTournaments(ctx context.Context) ([]bracket.Tournament, error) {
	return s.store.GetTournaments(ctx)
}

// GetTournament returns the tournament with its team list decoded.
func (s *TournamentService) GetTournament(ctx context.Context, id string) (*bracket.Tournament, error) {
	tournament, err := s.store.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	teams := []string{}
	if tournament.TeamsJSON != "" {
		if err := json.Unmarshal([]byte(tournament.TeamsJSON), &teams); err != nil {
			return nil, fmt.Errorf("failed to decode teams of tournament %s: %w", id, err)
		}
	}
	tournament.Teams = teams
	return tournament, nil
}

func (s *TournamentService) GetBracket(ctx context.Context, id string) (*BracketData, error) {
	tournament, err := s.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	matches, err := s.matches.GetMatchesByTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BracketData{
		Tournament: tournament,
		Matches:    matches,
		Rounds:     bracket.GroupByStage(s.order, matches),
	}, nil
}

func (s *TournamentService) CreateTournament(ctx context.Context, input TournamentInput) (string, error) {
	tournament := bracket.Tournament{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Date:      input.Date,
		Format:    bracket.TournamentFormat(utils.FirstNonEmpty(input.Format, string(bracket.SingleElimination))),
		TeamsJSON: "[]",
	}
	if err := s.store.CreateTournament(ctx, &tournament); err != nil {
		return "", err
	}
	return tournament.ID, nil
}

func (s *TournamentService) UpdateTournament(ctx context.Context, id string, input TournamentInput) error {
	teams := input.Teams
	if teams == nil {
		teams = []string{}
	}
	teamsJSON, err := json.Marshal(teams)
	if err != nil {
		return err
	}

	return s.store.UpdateTournament(ctx, &bracket.Tournament{
		ID:        id,
		Name:      input.Name,
		Date:      input.Date,
		Format:    bracket.TournamentFormat(input.Format),
		TeamsJSON: string(teamsJSON),
	})
}

// DeleteTournament removes the tournament together with all of its matches.
func (s *TournamentService) DeleteTournament(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.store.DeleteTournamentTx(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	if err := s.matches.DeleteMatchesByTournamentTx(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to delete tournament matches: %w", err)
	}

	return tx.Commit()
}
