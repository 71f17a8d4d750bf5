package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
)

// MatchStore is the part of the match table the advancement engine needs.
type MatchStore interface {
	FindOpenSlotMatch(ctx context.Context, tournamentID, stage string) (*bracket.Match, error)
	CreateMatch(ctx context.Context, match *bracket.Match) (string, error)
	FillSlot(ctx context.Context, matchID string, slot bracket.SlotName, team bracket.Slot) error
	GetMatch(ctx context.Context, id string) (*bracket.Match, error)
}

type AdvancementOutcome int

const (
	Advanced AdvancementOutcome = iota
	Skipped
	Failed
)

func (o AdvancementOutcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("AdvancementOutcome(%d)", int(o))
}

type SkipReason string

const (
	SkipNoScore        SkipReason = "no score"
	SkipMalformedScore SkipReason = "malformed score"
	SkipUnknownStage   SkipReason = "unknown stage"
	SkipFinalStage     SkipReason = "final stage"
	SkipMatchNotFound  SkipReason = "match not found"
)

type AdvancementResult struct {
	Outcome AdvancementOutcome
	Reason  SkipReason
	Err     error

	Winner    bracket.Slot
	NextStage string

	// Downstream match that received the winner
	MatchID string
	Slot    bracket.SlotName
	Created bool
}

func skipped(reason SkipReason) AdvancementResult {
	return AdvancementResult{Outcome: Skipped, Reason: reason}
}

// AdvancementEngine moves the winner of a scored match into the next stage of the
// same tournament. The open-slot lookup and the write that follows are not atomic,
// so two simultaneous results for the same stage can both pick the same slot.
type AdvancementEngine struct {
	store MatchStore
	order bracket.StageOrder
	now   func() time.Time
	newID func() string
}

func NewAdvancementEngine(store MatchStore, order bracket.StageOrder) *AdvancementEngine {
	if len(order) == 0 {
		order = bracket.DefaultStageOrder
	}
	return &AdvancementEngine{
		store: store,
		order: order,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// AdvanceByID loads the stored match and advances its winner.
func (e *AdvancementEngine) AdvanceByID(ctx context.Context, matchID string) AdvancementResult {
	match, err := e.store.GetMatch(ctx, matchID)
	if errors.Is(err, sql.ErrNoRows) {
		return skipped(SkipMatchNotFound)
	}
	if err != nil {
		return AdvancementResult{Outcome: Failed, Err: fmt.Errorf("failed to get match: %w", err)}
	}
	return e.Advance(ctx, match)
}

func (e *AdvancementEngine) Advance(ctx context.Context, match *bracket.Match) AdvancementResult {
	if match == nil || match.Score == "" {
		return skipped(SkipNoScore)
	}

	score, ok := bracket.ParseScore(match.Score)
	if !ok {
		return skipped(SkipMalformedScore)
	}
	winner := score.Winner(match)

	if e.order.Index(match.Stage) == -1 {
		return skipped(SkipUnknownStage)
	}
	if e.order.IsFinal(match.Stage) {
		return skipped(SkipFinalStage)
	}
	nextStage, _ := e.order.Next(match.Stage)

	result := AdvancementResult{Outcome: Advanced, Winner: winner, NextStage: nextStage}

	next, err := e.store.FindOpenSlotMatch(ctx, match.TournamentID, nextStage)
	if err != nil {
		return failed(result, fmt.Errorf("failed to find open %s match: %w", nextStage, err))
	}

	if next != nil {
		// A match returned with both slots taken is a stale read; it falls through to
		// creating another match in the same stage.
		if slot, ok := next.OpenSlot(); ok {
			if err := e.store.FillSlot(ctx, next.ID, slot, winner); err != nil {
				return failed(result, fmt.Errorf("failed to fill %s of match %s: %w", slot, next.ID, err))
			}
			result.MatchID = next.ID
			result.Slot = slot
			return result
		}
	}

	id, err := e.store.CreateMatch(ctx, &bracket.Match{
		ID:           e.newID(),
		TournamentID: match.TournamentID,
		Team1:        winner,
		Team2:        bracket.EmptySlot(),
		Stage:        nextStage,
		Time:         e.now().UTC().Format(bracket.TimeLayout),
		Status:       bracket.MatchTBD,
		Score:        "",
		MapsJSON:     "[]",
	})
	if err != nil {
		return failed(result, fmt.Errorf("failed to create %s match: %w", nextStage, err))
	}
	result.MatchID = id
	result.Slot = bracket.SlotTeam1
	result.Created = true
	return result
}

func failed(result AdvancementResult, err error) AdvancementResult {
	result.Outcome = Failed
	result.Err = err
	return result
}
