package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
)

type TournamentStore struct {
	db *sqlx.DB
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

func (s *TournamentStore) CreateTournament(ctx context.Context, tournament *bracket.Tournament) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO tournaments (id, name, date, format, teams_json)
        VALUES (:id, :name, :date, :format, :teams_json)`, tournament)
	return err
}

func (s *TournamentStore) UpdateTournament(ctx context.Context, tournament *bracket.Tournament) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE tournaments SET
		name = :name, date = :date, format = :format, teams_json = :teams_json
		WHERE id = :id`, tournament)
	return err
}

func (s *TournamentStore) GetTournament(ctx context.Context, id string) (*bracket.Tournament, error) {
	var tournament bracket.Tournament
	if err := s.db.GetContext(ctx, &tournament, "SELECT * FROM tournaments WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentStore) GetTournaments(ctx context.Context) ([]bracket.Tournament, error) {
	tournaments := []bracket.Tournament{}
	err := s.db.SelectContext(ctx, &tournaments, "SELECT * FROM tournaments ORDER BY date ASC")
	return tournaments, err
}

func (s *TournamentStore) DeleteTournamentTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM tournaments WHERE id = ?", id)
	return err
}
