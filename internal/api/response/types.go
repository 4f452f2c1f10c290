package response

import (
	"time"

	"github.com/mcoot/scoresheet/internal/model"
)

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}

// Player represents a player column on a sheet
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Scores []int  `json:"scores"`
	Total  int    `json:"total"`
	Medal  string `json:"medal,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player, medal model.Medal) Player {
	scores := p.Scores
	if scores == nil {
		scores = []int{}
	}
	return Player{
		ID:     string(p.ID),
		Name:   p.Name,
		Scores: scores,
		Total:  p.Total,
		Medal:  string(medal),
	}
}

// Standing represents a ranked position
type Standing struct {
	Position int    `json:"position"` // 1-based
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Medal    string `json:"medal,omitempty"`
}

// StandingFromModel converts model.Standing
func StandingFromModel(s model.Standing) Standing {
	return Standing{
		Position: s.Position + 1,
		PlayerID: string(s.Player.ID),
		Name:     s.Player.Name,
		Total:    s.Player.Total,
		Medal:    string(s.Medal),
	}
}

// StandingsFromModel converts a slice of model.Standing
func StandingsFromModel(standings []model.Standing) []Standing {
	out := make([]Standing, len(standings))
	for i, s := range standings {
		out[i] = StandingFromModel(s)
	}
	return out
}

// Sheet represents a score sheet in API responses
type Sheet struct {
	Code        string     `json:"code"`
	State       string     `json:"state"`
	GameStarted bool       `json:"game_started"`
	CanStart    bool       `json:"can_start"`
	RoundCount  int        `json:"round_count"`
	Players     []Player   `json:"players"`
	Standings   []Standing `json:"standings"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SheetFromModel converts model.Sheet. Medals and standings are computed by
// the scoring service and passed in.
func SheetFromModel(s *model.Sheet, medals map[model.PlayerID]model.Medal, standings []model.Standing) Sheet {
	players := make([]Player, len(s.Players))
	for i, p := range s.Players {
		players[i] = PlayerFromModel(p, medals[p.ID])
	}

	return Sheet{
		Code:        string(s.Code),
		State:       string(s.State),
		GameStarted: s.GameStarted(),
		CanStart:    s.CanStart(),
		RoundCount:  s.RoundCount(),
		Players:     players,
		Standings:   StandingsFromModel(standings),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// StandingsResponse is the response for the standings endpoint
type StandingsResponse struct {
	Code      string     `json:"code"`
	Leader    *string    `json:"leader"`
	Standings []Standing `json:"standings"`
}
