package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
)

const (
	createMatchQuery = `
		INSERT INTO matches (id, tournament_id, team1, team2, stage, time, status, score, maps_json)
		VALUES (:id, :tournament_id, :team1, :team2, :stage, :time, :status, :score, :maps_json)
	`
	// rowid keeps insertion order, so the first open match is the oldest one
	findOpenSlotMatchQuery = `
		SELECT * FROM matches
		WHERE tournament_id = ? AND stage = ?
		AND (team1 IS NULL OR team1 = '' OR team1 = 'TBD'
			OR team2 IS NULL OR team2 = '' OR team2 = 'TBD')
		ORDER BY rowid ASC
		LIMIT 1
	`
	updateMatchResultQuery = `UPDATE matches SET score = ?, status = ?, maps_json = ? WHERE id = ?`
)

type MatchStore struct {
	db *sqlx.DB
}

func NewMatchStore(db *sqlx.DB) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) CreateMatch(ctx context.Context, match *bracket.Match) (string, error) {
	if match.ID == "" {
		return "", errors.New("match id is required")
	}
	if _, err := s.db.NamedExecContext(ctx, createMatchQuery, match); err != nil {
		return "", err
	}
	return match.ID, nil
}

func (s *MatchStore) GetMatch(ctx context.Context, id string) (*bracket.Match, error) {
	var match bracket.Match
	if err := s.db.GetContext(ctx, &match, "SELECT * FROM matches WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *MatchStore) GetMatches(ctx context.Context) ([]bracket.Match, error) {
	matches := []bracket.Match{}
	err := s.db.SelectContext(ctx, &matches, "SELECT * FROM matches ORDER BY time ASC, rowid ASC")
	return matches, err
}

func (s *MatchStore) GetMatchesByTournament(ctx context.Context, tournamentID string) ([]bracket.Match, error) {
	matches := []bracket.Match{}
	err := s.db.SelectContext(ctx, &matches, "SELECT * FROM matches WHERE tournament_id = ? ORDER BY rowid ASC", tournamentID)
	return matches, err
}

// FindOpenSlotMatch returns the first match of the stage that still has an unfilled slot,
// or nil when there is none.
func (s *MatchStore) FindOpenSlotMatch(ctx context.Context, tournamentID, stage string) (*bracket.Match, error) {
	var match bracket.Match
	err := s.db.GetContext(ctx, &match, findOpenSlotMatchQuery, tournamentID, stage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *MatchStore) FillSlot(ctx context.Context, matchID string, slot bracket.SlotName, team bracket.Slot) error {
	var query string
	switch slot {
	case bracket.SlotTeam1:
		query = "UPDATE matches SET team1 = ? WHERE id = ?"
	case bracket.SlotTeam2:
		query = "UPDATE matches SET team2 = ? WHERE id = ?"
	default:
		return fmt.Errorf("unknown slot %q", slot)
	}
	_, err := s.db.ExecContext(ctx, query, team, matchID)
	return err
}

func (s *MatchStore) UpdateResult(ctx context.Context, id, score string, status bracket.MatchStatus, mapsJSON string) error {
	_, err := s.db.ExecContext(ctx, updateMatchResultQuery, score, status, mapsJSON, id)
	return err
}

func (s *MatchStore) DeleteMatch(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM matches WHERE id = ?", id)
	return err
}

func (s *MatchStore) DeleteMatchesByTournamentTx(ctx context.Context, tx *sqlx.Tx, tournamentID string) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM matches WHERE tournament_id = ?", tournamentID)
	return err
}
