package bracket

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type MatchStatus string

const MatchTBD MatchStatus = "TBD"

// TBD marks a slot that has not been decided yet.
const TBD = "TBD"

// TimeLayout matches the ISO timestamps the frontend already stores in match.time.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

type SlotName string

const (
	SlotTeam1 SlotName = "team1"
	SlotTeam2 SlotName = "team2"
)

// Slot is one of the two team positions of a match: either empty or holding a team id.
// The zero value is an empty slot. Null, "" and "TBD" all read back as empty.
type Slot struct {
	teamID string
}

func EmptySlot() Slot {
	return Slot{}
}

func TeamSlot(id string) Slot {
	if id == TBD {
		return Slot{}
	}
	return Slot{teamID: id}
}

func (s Slot) IsEmpty() bool {
	return s.teamID == ""
}

func (s Slot) String() string {
	if s.IsEmpty() {
		return TBD
	}
	return s.teamID
}

func (s *Slot) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = EmptySlot()
	case string:
		*s = TeamSlot(v)
	case []byte:
		*s = TeamSlot(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Slot", src)
	}
	return nil
}

// Empty slots are persisted as the "TBD" sentinel.
func (s Slot) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	var v *string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("slot must be a string or null: %w", err)
	}
	if v == nil {
		*s = EmptySlot()
		return nil
	}
	*s = TeamSlot(*v)
	return nil
}

type Match struct {
	ID           string `db:"id" json:"id"`
	TournamentID string `db:"tournament_id" json:"tournament_id"`

	Team1 Slot   `db:"team1" json:"team1"`
	Team2 Slot   `db:"team2" json:"team2"`
	Stage string `db:"stage" json:"stage"`

	Time     string      `db:"time" json:"time"`
	Status   MatchStatus `db:"status" json:"status"`
	Score    string      `db:"score" json:"score"`
	MapsJSON string      `db:"maps_json" json:"maps_json"`
}

// OpenSlot returns the first unfilled slot, team1 before team2.
func (m *Match) OpenSlot() (SlotName, bool) {
	switch {
	case m.Team1.IsEmpty():
		return SlotTeam1, true
	case m.Team2.IsEmpty():
		return SlotTeam2, true
	}
	return "", false
}
