package bracket

type TournamentFormat string

const SingleElimination TournamentFormat = "single"

type Tournament struct {
	ID     string           `db:"id" json:"id"`
	Name   string           `db:"name" json:"name"`
	Date   string           `db:"date" json:"date"`
	Format TournamentFormat `db:"format" json:"format"`

	// Raw JSON array of team ids, decoded into Teams on the detail view
	TeamsJSON string   `db:"teams_json" json:"teams_json"`
	Teams     []string `db:"-" json:"teams,omitempty"`
}
