package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var demoTeams = []struct{ ID, Name, Country string }{
	{"Team A", "Team A", "RU"},
	{"Team B", "Team B", "US"},
	{"Team C", "Team C", "SE"},
}

// The demo player and tournament use fixed ids so repeated seeding stays a no-op.
const (
	demoPlayerID     = "seed-player-s1mple"
	demoTournamentID = "seed-tournament-yak-cup-2025"
)

// Seed inserts the demo teams, player and tournament. Existing rows are left alone.
func Seed(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	teamIDs := make([]string, 0, len(demoTeams))
	for _, t := range demoTeams {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO teams (id, name, country) VALUES (?, ?, ?)`, t.ID, t.Name, t.Country); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
		teamIDs = append(teamIDs, t.ID)
	}

	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO players (id, name, team, rating, kd) VALUES (?, ?, ?, ?, ?)`,
		demoPlayerID, "s1mple", "Team A", 1.78, 1.35); err != nil {
		return fmt.Errorf("seed player: %w", err)
	}

	teamsJSON, err := json.Marshal(teamIDs)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO tournaments (id, name, date, format, teams_json) VALUES (?, ?, ?, ?, ?)`,
		demoTournamentID, "YAK Cup 2025", "2025-12-10", "single", string(teamsJSON)); err != nil {
		return fmt.Errorf("seed tournament: %w", err)
	}

	return tx.Commit()
}
