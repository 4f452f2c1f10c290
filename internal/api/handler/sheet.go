package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/scoresheet/internal/api/request"
	"github.com/mcoot/scoresheet/internal/api/response"
	"github.com/mcoot/scoresheet/internal/model"
	"github.com/mcoot/scoresheet/internal/services/scoring"
	"github.com/mcoot/scoresheet/internal/services/sheet"
)

// DefaultStandingsTop is the number of standings returned when top is not given
const DefaultStandingsTop = model.MedalCount

// SheetHandler handles sheet endpoints
type SheetHandler struct {
	sheetController sheet.ControllerInterface
	scoringService  scoring.ServiceInterface
}

// NewSheetHandler creates a new sheet handler
func NewSheetHandler(sheetController sheet.ControllerInterface, scoringService scoring.ServiceInterface) *SheetHandler {
	return &SheetHandler{
		sheetController: sheetController,
		scoringService:  scoringService,
	}
}

// Create handles POST /api/v1/sheets
func (h *SheetHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.sheetController.CreateSheet(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeSheet(w, http.StatusCreated, s)
}

// Get handles GET /api/v1/sheets/{code}
func (h *SheetHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.sheetController.GetSheet(r.Context(), sheetCode(r))
	h.respond(w, s, err)
}

// Delete handles DELETE /api/v1/sheets/{code}
func (h *SheetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sheetController.DeleteSheet(r.Context(), sheetCode(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// AddPlayer handles POST /api/v1/sheets/{code}/players
func (h *SheetHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	s, err := h.sheetController.AddPlayer(r.Context(), sheetCode(r), req.Name)
	h.respond(w, s, err)
}

// RemovePlayer handles DELETE /api/v1/sheets/{code}/players/{player_id}
func (h *SheetHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	s, err := h.sheetController.RemovePlayer(r.Context(), sheetCode(r), playerID(r))
	h.respond(w, s, err)
}

// StartGame handles POST /api/v1/sheets/{code}/game
func (h *SheetHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	s, err := h.sheetController.StartGame(r.Context(), sheetCode(r))
	h.respond(w, s, err)
}

// ResetGame handles DELETE /api/v1/sheets/{code}/game
func (h *SheetHandler) ResetGame(w http.ResponseWriter, r *http.Request) {
	s, err := h.sheetController.ResetGame(r.Context(), sheetCode(r))
	h.respond(w, s, err)
}

// AddRound handles POST /api/v1/sheets/{code}/rounds
func (h *SheetHandler) AddRound(w http.ResponseWriter, r *http.Request) {
	s, err := h.sheetController.AddRound(r.Context(), sheetCode(r))
	h.respond(w, s, err)
}

// UpdateScore handles PUT /api/v1/sheets/{code}/players/{player_id}/scores/{round}.
// The round is 0-based.
func (h *SheetHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	round, err := strconv.Atoi(mux.Vars(r)["round"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("round must be an integer"))
		return
	}

	var req request.UpdateScoreRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	s, err := h.sheetController.UpdateScore(r.Context(), sheetCode(r), playerID(r), round, string(req.Value))
	h.respond(w, s, err)
}

// Standings handles GET /api/v1/sheets/{code}/standings?top=N
func (h *SheetHandler) Standings(w http.ResponseWriter, r *http.Request) {
	top := DefaultStandingsTop
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteError(w, NewInvalidRequestError("top must be a non-negative integer"))
			return
		}
		top = n
	}

	s, err := h.sheetController.GetSheet(r.Context(), sheetCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	var leader *string
	if id := h.scoringService.Leader(s); id != "" {
		l := string(id)
		leader = &l
	}

	response.JSON(w, http.StatusOK, response.StandingsResponse{
		Code:      string(s.Code),
		Leader:    leader,
		Standings: response.StandingsFromModel(h.scoringService.Standings(s, top)),
	})
}

// respond writes the sheet, or the error if there is one
func (h *SheetHandler) respond(w http.ResponseWriter, s *model.Sheet, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeSheet(w, http.StatusOK, s)
}

func (h *SheetHandler) writeSheet(w http.ResponseWriter, status int, s *model.Sheet) {
	response.JSON(w, status, response.SheetFromModel(
		s,
		h.scoringService.Medals(s),
		h.scoringService.Standings(s, DefaultStandingsTop),
	))
}

func sheetCode(r *http.Request) model.SheetCode {
	return model.SheetCode(mux.Vars(r)["code"])
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["player_id"])
}

// decodeBody decodes a JSON request body. An empty body decodes to the zero value.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return NewInvalidRequestError("Invalid JSON body")
	}
	return nil
}
