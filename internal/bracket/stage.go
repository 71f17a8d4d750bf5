package bracket

import (
	"fmt"
	"strings"
)

// StageOrder lists single-elimination stages from the earliest round to the final.
type StageOrder []string

var DefaultStageOrder = StageOrder{"Round 1", "Quarterfinals", "Semifinals", "Final"}

// Index returns the position of stage in the order, or -1 when the stage is not listed.
func (o StageOrder) Index(stage string) int {
	for i, s := range o {
		if s == stage {
			return i
		}
	}
	return -1
}

func (o StageOrder) IsFinal(stage string) bool {
	return len(o) > 0 && o[len(o)-1] == stage
}

// Next returns the stage following stage. ok is false for unlisted stages and the final.
func (o StageOrder) Next(stage string) (next string, ok bool) {
	idx := o.Index(stage)
	if idx == -1 || idx+1 >= len(o) {
		return "", false
	}
	return o[idx+1], true
}

// ParseStageOrder reads a comma separated list such as "Round 1,Semifinals,Final".
func ParseStageOrder(s string) (StageOrder, error) {
	var order StageOrder
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		stage := strings.TrimSpace(part)
		if stage == "" {
			continue
		}
		if seen[stage] {
			return nil, fmt.Errorf("stage %q listed twice", stage)
		}
		seen[stage] = true
		order = append(order, stage)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("stage order is empty")
	}
	return order, nil
}
