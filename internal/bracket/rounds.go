package bracket

import "sort"

// Round holds the matches of one stage in insertion order.
type Round struct {
	Stage   string  `json:"stage"`
	Matches []Match `json:"matches"`
}

// GroupByStage splits matches into rounds following the stage order. Stages the order
// does not know come last, sorted by name.
func GroupByStage(order StageOrder, matches []Match) []Round {
	byStage := make(map[string][]Match)
	var unknown []string

	for _, m := range matches {
		if _, exists := byStage[m.Stage]; !exists && order.Index(m.Stage) == -1 {
			unknown = append(unknown, m.Stage)
		}
		byStage[m.Stage] = append(byStage[m.Stage], m)
	}

	sort.Strings(unknown)

	rounds := make([]Round, 0, len(byStage))
	for _, stage := range append(append([]string{}, order...), unknown...) {
		if ms, ok := byStage[stage]; ok {
			rounds = append(rounds, Round{Stage: stage, Matches: ms})
		}
	}
	return rounds
}
