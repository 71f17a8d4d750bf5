package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
)

const (
	createTeamQuery = `INSERT INTO teams (id, name, country) VALUES (:id, :name, :country)`
	updateTeamQuery = `UPDATE teams SET name = :name, country = :country WHERE id = :id`

	createPlayerQuery = `
		INSERT INTO players (id, name, team, rating, kd) VALUES
		(:id, :name, :team, :rating, :kd)
	`
	updatePlayerQuery = `
		UPDATE players SET
		name = :name,
		team = :team,
		rating = :rating
		WHERE id = :id
	`
)

type TeamStore struct {
	db *sqlx.DB
}

func NewTeamStore(db *sqlx.DB) *TeamStore {
	return &TeamStore{db: db}
}

func (s *TeamStore) CreateTeam(ctx context.Context, team *bracket.Team) error {
	_, err := s.db.NamedExecContext(ctx, createTeamQuery, team)
	return err
}

func (s *TeamStore) UpdateTeam(ctx context.Context, team *bracket.Team) error {
	_, err := s.db.NamedExecContext(ctx, updateTeamQuery, team)
	return err
}

func (s *TeamStore) GetTeam(ctx context.Context, id string) (*bracket.Team, error) {
	var team bracket.Team
	if err := s.db.GetContext(ctx, &team, "SELECT * FROM teams WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamStore) GetTeams(ctx context.Context) ([]bracket.Team, error) {
	teams := []bracket.Team{}
	err := s.db.SelectContext(ctx, &teams, "SELECT * FROM teams ORDER BY name ASC")
	return teams, err
}

func (s *TeamStore) DeleteTeam(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM teams WHERE id = ?", id)
	return err
}

func (s *TeamStore) CreatePlayer(ctx context.Context, player *bracket.Player) error {
	_, err := s.db.NamedExecContext(ctx, createPlayerQuery, player)
	return err
}

// UpdatePlayer leaves kd untouched.
func (s *TeamStore) UpdatePlayer(ctx context.Context, player *bracket.Player) error {
	_, err := s.db.NamedExecContext(ctx, updatePlayerQuery, player)
	return err
}

func (s *TeamStore) GetPlayers(ctx context.Context) ([]bracket.Player, error) {
	players := []bracket.Player{}
	err := s.db.SelectContext(ctx, &players, "SELECT * FROM players ORDER BY rating DESC")
	return players, err
}

func (s *TeamStore) DeletePlayer(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	return err
}
