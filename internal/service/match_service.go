package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
	"github.com/yakhltv/yakhltv-api/internal/store"
	"github.com/yakhltv/yakhltv-api/internal/utils"
)

const defaultStage = "Round 1"

type MatchService struct {
	store  *store.MatchStore
	engine *AdvancementEngine
}

func NewMatchService(store *store.MatchStore, engine *AdvancementEngine) *MatchService {
	return &MatchService{store: store, engine: engine}
}

type MatchInput struct {
	TournamentID string       `json:"tournament_id"`
	Team1        bracket.Slot `json:"team1"`
	Team2        bracket.Slot `json:"team2"`
	Stage        string       `json:"stage"`
	Time         string       `json:"time"`
}

type ResultInput struct {
	Score    ScoreText       `json:"score"`
	Status   string          `json:"status"`
	MapsJSON json.RawMessage `json:"maps_json"`
}

// ScoreText is a score as sent by clients. Bare JSON numbers are kept as their text.
type ScoreText string

func (t *ScoreText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case string(data) == "null":
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = ScoreText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("score must be a string or a number: %w", err)
	}
	*t = ScoreText(n.String())
	return nil
}

func (s *MatchService) GetMatch(ctx context.Context, id string) (*bracket.Match, error) {
	return s.store.GetMatch(ctx, id)
}

func (s *MatchService) GetMatches(ctx context.Context) ([]bracket.Match, error) {
	return s.store.GetMatches(ctx)
}

func (s *MatchService) CreateMatch(ctx context.Context, input MatchInput) (string, error) {
	match := bracket.Match{
		ID:           uuid.NewString(),
		TournamentID: input.TournamentID,
		Team1:        input.Team1,
		Team2:        input.Team2,
		Stage:        utils.FirstNonEmpty(input.Stage, defaultStage),
		Time:         utils.FirstNonEmpty(input.Time, time.Now().UTC().Format(bracket.TimeLayout)),
		Status:       bracket.MatchTBD,
		Score:        "",
		MapsJSON:     "[]",
	}
	return s.store.CreateMatch(ctx, &match)
}

// RecordResult stores score, status and map details, then advances the winner when a
// score was given. Only the result write can fail; advancement problems are logged and
// reported through the returned result.
func (s *MatchService) RecordResult(ctx context.Context, id string, input ResultInput) (AdvancementResult, error) {
	mapsJSON, err := normalizeMapsJSON(input.MapsJSON)
	if err != nil {
		return AdvancementResult{}, fmt.Errorf("%w: maps_json: %v", ErrInvalidInput, err)
	}
	status := bracket.MatchStatus(utils.FirstNonEmpty(input.Status, string(bracket.MatchTBD)))

	score := string(input.Score)
	if err := s.store.UpdateResult(ctx, id, score, status, mapsJSON); err != nil {
		return AdvancementResult{}, fmt.Errorf("failed to update match result: %w", err)
	}

	if score == "" {
		return skipped(SkipNoScore), nil
	}

	result := s.engine.AdvanceByID(ctx, id)
	switch result.Outcome {
	case Failed:
		slog.Error("bracket advancement failed", "match_id", id, "error", result.Err)
	case Skipped:
		slog.Debug("bracket advancement skipped", "match_id", id, "reason", result.Reason)
	case Advanced:
		slog.Info("winner advanced", "match_id", id, "winner", result.Winner.String(),
			"next_stage", result.NextStage, "next_match_id", result.MatchID, "slot", result.Slot, "created", result.Created)
	}
	return result, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, id string) error {
	return s.store.DeleteMatch(ctx, id)
}

// Falsy values (missing, null, "", 0, false) become an empty map list.
func normalizeMapsJSON(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", `""`, "0", "false":
		return "[]", nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", err
	}
	return buf.String(), nil
}
