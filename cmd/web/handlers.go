package main

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yakhltv/yakhltv-api/internal/auth"
	"github.com/yakhltv/yakhltv-api/internal/httputil"
	"github.com/yakhltv/yakhltv-api/internal/service"
)

func (app *application) health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "mode": "api_demo"})
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Password string `json:"password"`
	}
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	if input.Password == "" {
		httputil.BadRequest(w, "no password", nil)
		return
	}

	token, role, err := app.auth.Login(input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			httputil.Unauthorized(w, "invalid password", nil)
			return
		}
		httputil.InternalServerError(w, "Failed to log in", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"token": token, "role": role})
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		httputil.NotFound(w, "not found", err)
	case errors.Is(err, service.ErrInvalidInput):
		httputil.BadRequest(w, err.Error(), err)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}

func (app *application) listTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := app.teams.GetTeams(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to get teams", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, teams)
}

func (app *application) getTeam(w http.ResponseWriter, r *http.Request) {
	team, err := app.teams.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "Failed to get team", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, team)
}

func (app *application) createTeam(w http.ResponseWriter, r *http.Request) {
	var input service.TeamInput
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	id, err := app.teams.CreateTeam(r.Context(), input)
	if err != nil {
		writeServiceError(w, "Failed to create team", err)
		return
	}
	httputil.Created(w, id)
}

func (app *application) updateTeam(w http.ResponseWriter, r *http.Request) {
	var input service.TeamInput
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	if err := app.teams.UpdateTeam(r.Context(), chi.URLParam(r, "id"), input); err != nil {
		writeServiceError(w, "Failed to update team", err)
		return
	}
	httputil.OK(w)
}

func (app *application) deleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := app.teams.DeleteTeam(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "Failed to delete team", err)
		return
	}
	httputil.OK(w)
}

func (app *application) listPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := app.teams.GetPlayers(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to get players", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, players)
}

func (app *application) createPlayer(w http.ResponseWriter, r *http.Request) {
	var input service.PlayerInput
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	id, err := app.teams.CreatePlayer(r.Context(), input)
	if err != nil {
		writeServiceError(w, "Failed to create player", err)
		return
	}
	httputil.Created(w, id)
}

func (app *application) updatePlayer(w http.ResponseWriter, r *http.Request) {
	var input service.PlayerInput
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	if err := app.teams.UpdatePlayer(r.Context(), chi.URLParam(r, "id"), input); err != nil {
		writeServiceError(w, "Failed to update player", err)
		return
	}
	httputil.OK(w)
}

func (app *application) deletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := app.teams.DeletePlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "Failed to delete player", err)
		return
	}
	httputil.OK(w)
}

func (app *application) listTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := app.tournaments.GetTournaments(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to get tournaments", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournaments)
}

func (app *application) getTournament(w http.ResponseWriter, r *http.Request) {
	tournament, err := app.tournaments.GetTournament(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "Failed to get tournament", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournament)
}

func (app *application) getTournamentMatches(w http.ResponseWriter, r *http.Request) {
	data, err := app.tournaments.GetBracket(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "Failed to get tournament matches", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, data.Matches)
}

func (app *application) getTournamentBracket(w http.ResponseWriter, r *http.Request) {
	data, err := app.tournaments.GetBracket(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "Failed to get tournament bracket", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, data)
}

func (app *application) createTournament(w http.ResponseWriter, r *http.Request) {
	var input service.TournamentInput
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	id, err := app.tournaments.CreateTournament(r.Context(), input)
	if err != nil {
		writeServiceError(w, "Failed to create tournament", err)
		return
	}
	httputil.Created(w, id)
}

func (app *application) updateTournament(w http.ResponseWriter, r *http.Request) {
	var input service.TournamentInput
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	if err := app.tournaments.UpdateTournament(r.Context(), chi.URLParam(r, "id"), input); err != nil {
		writeServiceError(w, "Failed to update tournament", err)
		return
	}
	httputil.OK(w)
}

func (app *application) deleteTournament(w http.ResponseWriter, r *http.Request) {
	if err := app.tournaments.DeleteTournament(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "Failed to delete tournament", err)
		return
	}
	httputil.OK(w)
}

func (app *application) listMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := app.matches.GetMatches(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to get matches", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, matches)
}

func (app *application) getMatch(w http.ResponseWriter, r *http.Request) {
	match, err := app.matches.GetMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "Failed to get match", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, match)
}

func (app *application) createMatch(w http.ResponseWriter, r *http.Request) {
	var input service.MatchInput
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	id, err := app.matches.CreateMatch(r.Context(), input)
	if err != nil {
		writeServiceError(w, "Failed to create match", err)
		return
	}
	httputil.Created(w, id)
}

// updateMatchResult reports success once the result is stored, whatever happens to
// the bracket advancement that follows.
func (app *application) updateMatchResult(w http.ResponseWriter, r *http.Request) {
	var input service.ResultInput
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	id := chi.URLParam(r, "id")
	result, err := app.matches.RecordResult(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, "Failed to update match", err)
		return
	}
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		slog.Info("match result recorded", "match_id", id, "role", claims.Role, "advancement", result.Outcome.String())
	}
	httputil.OK(w)
}

func (app *application) deleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := app.matches.DeleteMatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "Failed to delete match", err)
		return
	}
	httputil.OK(w)
}

func (app *application) listNews(w http.ResponseWriter, r *http.Request) {
	news, err := app.news.GetNews(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to get news", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, news)
}

func (app *application) createNews(w http.ResponseWriter, r *http.Request) {
	var input service.NewsInput
	if err := httputil.ReadJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	id, err := app.news.CreateNews(r.Context(), input)
	if err != nil {
		writeServiceError(w, "Failed to create news", err)
		return
	}
	httputil.Created(w, id)
}

func (app *application) deleteNews(w http.ResponseWriter, r *http.Request) {
	if err := app.news.DeleteNews(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "Failed to delete news", err)
		return
	}
	httputil.OK(w)
}
