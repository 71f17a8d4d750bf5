package bracket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotScan(t *testing.T) {
	testCases := []struct {
		name  string
		src   any
		empty bool
		team  string
	}{
		{name: "null", src: nil, empty: true},
		{name: "empty string", src: "", empty: true},
		{name: "TBD sentinel", src: "TBD", empty: true},
		{name: "team", src: "Team A", team: "Team A"},
		{name: "bytes", src: []byte("Team B"), team: "Team B"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var s Slot
			require.NoError(t, s.Scan(tc.src))
			assert.Equal(t, tc.empty, s.IsEmpty())
			if !tc.empty {
				assert.Equal(t, tc.team, s.String())
			} else {
				assert.Equal(t, TBD, s.String())
			}
		})
	}

	var s Slot
	assert.Error(t, s.Scan(42))
}

func TestSlotValue(t *testing.T) {
	v, err := EmptySlot().Value()
	require.NoError(t, err)
	assert.Equal(t, "TBD", v)

	v, err = TeamSlot("Team A").Value()
	require.NoError(t, err)
	assert.Equal(t, "Team A", v)
}

func TestSlotJSON(t *testing.T) {
	var payload struct {
		Team1 Slot `json:"team1"`
		Team2 Slot `json:"team2"`
		Team3 Slot `json:"team3"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"team1":"Team A","team2":null}`), &payload))
	assert.Equal(t, TeamSlot("Team A"), payload.Team1)
	assert.True(t, payload.Team2.IsEmpty())
	assert.True(t, payload.Team3.IsEmpty())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"team1":"Team A","team2":"TBD","team3":"TBD"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"team1":7}`), &payload))
}

func TestMatchOpenSlot(t *testing.T) {
	m := &Match{}
	slot, ok := m.OpenSlot()
	assert.True(t, ok)
	assert.Equal(t, SlotTeam1, slot)

	m.Team1 = TeamSlot("Team A")
	slot, ok = m.OpenSlot()
	assert.True(t, ok)
	assert.Equal(t, SlotTeam2, slot)

	m.Team2 = TeamSlot("Team B")
	_, ok = m.OpenSlot()
	assert.False(t, ok)
}
