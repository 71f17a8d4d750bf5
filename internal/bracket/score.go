package bracket

import (
	"strings"
)

// Score holds both sides as decimal digits without leading zeros, so scores of any
// length compare exactly.
type Score struct {
	Team1 string
	Team2 string
}

// ParseScore reads scores like "2-1". Each side is the leading integer of its trimmed
// part and falls back to 0. ok is false when there are fewer than two parts.
func ParseScore(s string) (Score, bool) {
	parts := strings.Split(s, "-")
	if len(parts) < 2 {
		return Score{}, false
	}
	return Score{
		Team1: leadingDigits(parts[0]),
		Team2: leadingDigits(parts[1]),
	}, true
}

// Team1Wins is strict, so a draw goes to team2.
func (s Score) Team1Wins() bool {
	return compareDigits(s.Team1, s.Team2) > 0
}

// Winner returns the slot holding the winning side of m.
func (s Score) Winner(m *Match) Slot {
	if s.Team1Wins() {
		return m.Team1
	}
	return m.Team2
}

func leadingDigits(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if digits := strings.TrimLeft(s[:end], "0"); digits != "" {
		return digits
	}
	return "0"
}

// compareDigits orders two normalized digit strings numerically.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	return strings.Compare(a, b)
}
