package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scoresheet/internal/api/apierr"
	"github.com/mcoot/scoresheet/internal/api/handler"
	"github.com/mcoot/scoresheet/internal/api/middleware"
	"github.com/mcoot/scoresheet/internal/api/response"
	"github.com/mcoot/scoresheet/internal/services/scoring"
	"github.com/mcoot/scoresheet/internal/services/sheet"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	SheetController sheet.ControllerInterface
	ScoringService  scoring.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sheetHandler := handler.NewSheetHandler(cfg.SheetController, cfg.ScoringService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.JSONOnly)
	api.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Sheet routes
	sheets := api.PathPrefix("/sheets").Subrouter()
	sheets.HandleFunc("", sheetHandler.Create).Methods(http.MethodPost)
	sheets.HandleFunc("/{code}", sheetHandler.Get).Methods(http.MethodGet)
	sheets.HandleFunc("/{code}", sheetHandler.Delete).Methods(http.MethodDelete)
	sheets.HandleFunc("/{code}/standings", sheetHandler.Standings).Methods(http.MethodGet)

	// Player routes
	sheets.HandleFunc("/{code}/players", sheetHandler.AddPlayer).Methods(http.MethodPost)
	sheets.HandleFunc("/{code}/players/{player_id}", sheetHandler.RemovePlayer).Methods(http.MethodDelete)
	sheets.HandleFunc("/{code}/players/{player_id}/scores/{round}", sheetHandler.UpdateScore).Methods(http.MethodPut)

	// Game routes
	sheets.HandleFunc("/{code}/game", sheetHandler.StartGame).Methods(http.MethodPost)
	sheets.HandleFunc("/{code}/game", sheetHandler.ResetGame).Methods(http.MethodDelete)
	sheets.HandleFunc("/{code}/rounds", sheetHandler.AddRound).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewMethodNotAllowedError())
}
