package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/yakhltv/yakhltv-api/internal/auth"
	"github.com/yakhltv/yakhltv-api/internal/config"
	"github.com/yakhltv/yakhltv-api/internal/middleware"
	"github.com/yakhltv/yakhltv-api/internal/service"
	"github.com/yakhltv/yakhltv-api/internal/store"
)

type application struct {
	tournaments *service.TournamentService
	matches     *service.MatchService
	teams       *service.TeamService
	news        *service.NewsService
	auth        *auth.Authenticator

	staticDir   string
	corsOrigins []string
}

func newApplication(dbConn *sqlx.DB, cfg *config.Config, authenticator *auth.Authenticator) *application {
	matchStore := store.NewMatchStore(dbConn)
	engine := service.NewAdvancementEngine(matchStore, cfg.StageOrder)

	return &application{
		tournaments: service.NewTournamentService(dbConn, store.NewTournamentStore(dbConn), matchStore, cfg.StageOrder),
		matches:     service.NewMatchService(matchStore, engine),
		teams:       service.NewTeamService(store.NewTeamStore(dbConn)),
		news:        service.NewNewsService(store.NewNewsStore(dbConn)),
		auth:        authenticator,
		staticDir:   cfg.StaticDir,
		corsOrigins: cfg.CORSOrigins,
	}
}

func newRouter(app *application) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.health)
		r.Post("/login", app.login)

		r.Get("/teams", app.listTeams)
		r.Get("/teams/{id}", app.getTeam)
		r.Get("/players", app.listPlayers)
		r.Get("/tournaments", app.listTournaments)
		r.Get("/tournaments/{id}", app.getTournament)
		r.Get("/tournaments/{id}/matches", app.getTournamentMatches)
		r.Get("/tournaments/{id}/bracket", app.getTournamentBracket)
		r.Get("/matches", app.listMatches)
		r.Get("/matches/{id}", app.getMatch)
		r.Get("/news", app.listNews)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireEditor(app.auth.Tokens()))

			r.Post("/teams", app.createTeam)
			r.Put("/teams/{id}", app.updateTeam)
			r.Delete("/teams/{id}", app.deleteTeam)

			r.Post("/players", app.createPlayer)
			r.Put("/players/{id}", app.updatePlayer)
			r.Delete("/players/{id}", app.deletePlayer)

			r.Post("/tournaments", app.createTournament)
			r.Put("/tournaments/{id}", app.updateTournament)
			r.Delete("/tournaments/{id}", app.deleteTournament)

			r.Post("/matches", app.createMatch)
			r.Put("/matches/{id}", app.updateMatchResult)
			r.Delete("/matches/{id}", app.deleteMatch)

			r.Post("/news", app.createNews)
			r.Delete("/news/{id}", app.deleteNews)
		})
	})

	// Serve the frontend
	r.Handle("/*", http.FileServer(http.Dir(app.staticDir)))

	return r
}
