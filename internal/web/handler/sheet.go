package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/scoresheet/internal/model"
	"github.com/mcoot/scoresheet/internal/services/scoring"
	"github.com/mcoot/scoresheet/internal/services/sheet"
	"github.com/mcoot/scoresheet/internal/web/middleware"
	"github.com/mcoot/scoresheet/internal/web/templates/components"
	"github.com/mcoot/scoresheet/internal/web/templates/layout"
	"github.com/mcoot/scoresheet/internal/web/templates/pages"
)

// SheetHandler handles the score sheet page and its actions
type SheetHandler struct {
	sheetController sheet.ControllerInterface
	scoringService  scoring.ServiceInterface
	logger          *slog.Logger
}

// NewSheetHandler creates a new SheetHandler
func NewSheetHandler(sheetController sheet.ControllerInterface, scoringService scoring.ServiceInterface, logger *slog.Logger) *SheetHandler {
	return &SheetHandler{
		sheetController: sheetController,
		scoringService:  scoringService,
		logger:          logger,
	}
}

// View renders the score sheet in its current state
func (h *SheetHandler) View(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSheet(r.Context())
	if s == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.SheetData{
		PageData: layout.PageData{
			Title: "Score Sheet",
			Flash: middleware.GetFlash(r.Context()),
		},
		Code: string(s.Code),
	}
	if s.GameStarted() {
		table := h.scoreTable(s)
		data.Table = &table
	} else {
		setup := setupData(s)
		data.Setup = &setup
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Sheet(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// AddPlayer handles the add player form
func (h *SheetHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSheet(r.Context())

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		h.redirect(w, r)
		return
	}

	updated, err := h.sheetController.AddPlayer(r.Context(), s.Code, r.FormValue("name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if len(updated.Players) > len(s.Players) {
		added := updated.Players[len(updated.Players)-1]
		middleware.SetFlash(w, middleware.FlashSuccess, added.Name+" added")
	}
	h.redirect(w, r)
}

// RemovePlayer handles removing a player during setup
func (h *SheetHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSheet(r.Context())
	id := model.PlayerID(mux.Vars(r)["id"])

	updated, err := h.sheetController.RemovePlayer(r.Context(), s.Code, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if removed := s.Player(id); removed != nil && updated.Player(id) == nil {
		middleware.SetFlash(w, middleware.FlashInfo, removed.Name+" removed")
	}
	h.redirect(w, r)
}

// StartGame handles starting the game
func (h *SheetHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSheet(r.Context())

	updated, err := h.sheetController.StartGame(r.Context(), s.Code)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if updated.GameStarted() && !s.GameStarted() {
		middleware.SetFlash(w, middleware.FlashSuccess, "Game started")
	}
	h.redirect(w, r)
}

// AddRound handles adding a round of zero scores
func (h *SheetHandler) AddRound(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSheet(r.Context())

	if _, err := h.sheetController.AddRound(r.Context(), s.Code); err != nil {
		h.fail(w, r, err)
		return
	}
	h.redirect(w, r)
}

// UpdateScores handles the score table form. htmx requests get the
// re-rendered table back; plain form posts are redirected.
func (h *SheetHandler) UpdateScores(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSheet(r.Context())

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		h.redirect(w, r)
		return
	}

	updated, err := h.sheetController.UpdateScores(r.Context(), s.Code, scoreEntries(r.PostForm))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if !isHTMX(r) || !updated.GameStarted() {
		h.redirect(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.ScoreTable(h.scoreTable(updated)).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ResetGame handles "New Game": scores are cleared and players kept
func (h *SheetHandler) ResetGame(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSheet(r.Context())

	if _, err := h.sheetController.ResetGame(r.Context(), s.Code); err != nil {
		h.fail(w, r, err)
		return
	}

	middleware.SetFlash(w, middleware.FlashInfo, "New game")
	h.redirect(w, r)
}

// redirect sends the browser back to the sheet. htmx requests navigate
// client side.
func (h *SheetHandler) redirect(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *SheetHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrSheetNotFound) {
		// Sheet expired mid-request; the next page load starts a new one
		middleware.ClearSheetCookie(w)
		middleware.SetFlash(w, middleware.FlashError, "Sheet expired, starting a new one")
		h.redirect(w, r)
		return
	}

	h.logger.Error("sheet action failed",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (h *SheetHandler) scoreTable(s *model.Sheet) components.ScoreTableData {
	medals := h.scoringService.Medals(s)

	columns := make([]components.PlayerColumn, 0, len(s.Players))
	for _, p := range s.Players {
		columns = append(columns, components.PlayerColumn{
			ID:     string(p.ID),
			Name:   p.Name,
			Scores: p.Scores,
			Total:  p.Total,
			Medal:  medals[p.ID],
		})
	}

	return components.ScoreTableData{
		Columns: columns,
		Rounds:  s.RoundCount(),
	}
}

func setupData(s *model.Sheet) components.SetupData {
	players := make([]components.SetupPlayer, 0, len(s.Players))
	for _, p := range s.Players {
		players = append(players, components.SetupPlayer{
			ID:   string(p.ID),
			Name: p.Name,
		})
	}
	return components.SetupData{
		Players:  players,
		CanStart: s.CanStart(),
	}
}

// scoreEntries collects the score:<round>:<playerID> fields of the score
// table form. Fields that don't follow that shape are ignored.
func scoreEntries(form map[string][]string) []sheet.ScoreEntry {
	entries := make([]sheet.ScoreEntry, 0, len(form))
	for key, values := range form {
		rest, ok := strings.CutPrefix(key, components.ScoreFieldPrefix)
		if !ok || len(values) == 0 {
			continue
		}
		roundStr, playerID, ok := strings.Cut(rest, ":")
		if !ok || playerID == "" {
			continue
		}
		round, err := strconv.Atoi(roundStr)
		if err != nil {
			continue
		}
		entries = append(entries, sheet.ScoreEntry{
			PlayerID: model.PlayerID(playerID),
			Round:    round,
			Value:    values[0],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Round != entries[j].Round {
			return entries[i].Round < entries[j].Round
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	return entries
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
