package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scoresheet/internal/services/scoring"
	"github.com/mcoot/scoresheet/internal/services/sheet"
	"github.com/mcoot/scoresheet/internal/web/handler"
	"github.com/mcoot/scoresheet/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	SheetController sheet.ControllerInterface
	ScoringService  scoring.ServiceInterface
	StaticDir       string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	sheetHandler := handler.NewSheetHandler(cfg.SheetController, cfg.ScoringService, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Every page works on the browser's own sheet
	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Flash())
	pages.Use(middleware.ActiveSheet(cfg.SheetController, cfg.Logger))

	pages.HandleFunc("/", sheetHandler.View).Methods(http.MethodGet)

	// Setup
	pages.HandleFunc("/players", sheetHandler.AddPlayer).Methods(http.MethodPost)
	pages.HandleFunc("/players/{id}/remove", sheetHandler.RemovePlayer).Methods(http.MethodPost)

	// Game
	pages.HandleFunc("/game/start", sheetHandler.StartGame).Methods(http.MethodPost)
	pages.HandleFunc("/game/rounds", sheetHandler.AddRound).Methods(http.MethodPost)
	pages.HandleFunc("/game/scores", sheetHandler.UpdateScores).Methods(http.MethodPost)
	pages.HandleFunc("/game/reset", sheetHandler.ResetGame).Methods(http.MethodPost)

	return r
}
