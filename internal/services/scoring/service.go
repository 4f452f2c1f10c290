package scoring

import (
	"github.com/mcoot/scoresheet/internal/model"
)

// Service ranks the players on a sheet and hands out medals
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Standings returns the top n players with their positions and medals.
// Medals go by position alone, so a player tied with third place but
// ranked fourth gets none.
func (s *Service) Standings(sheet *model.Sheet, n int) []model.Standing {
	ranked := sheet.RankedTop(n)
	standings := make([]model.Standing, 0, len(ranked))
	for i, p := range ranked {
		standings = append(standings, model.Standing{
			Position: i,
			Player:   p,
			Medal:    model.MedalForPosition(i),
		})
	}
	return standings
}

// Medals maps each medal-holding player to their medal
func (s *Service) Medals(sheet *model.Sheet) map[model.PlayerID]model.Medal {
	medals := make(map[model.PlayerID]model.Medal, model.MedalCount)
	for _, st := range s.Standings(sheet, model.MedalCount) {
		medals[st.Player.ID] = st.Medal
	}
	return medals
}

// MedalFor returns the medal held by a player, or MedalNone
func (s *Service) MedalFor(sheet *model.Sheet, id model.PlayerID) model.Medal {
	return s.Medals(sheet)[id]
}

// Leader returns the single highest scorer, or empty string on a tie or an
// empty sheet
func (s *Service) Leader(sheet *model.Sheet) model.PlayerID {
	ranked := sheet.RankedTop(len(sheet.Players))
	if len(ranked) == 0 {
		return ""
	}

	if len(ranked) > 1 && ranked[1].Total == ranked[0].Total {
		return "" // Tie
	}

	return ranked[0].ID
}

// Interface for dependency injection
type ServiceInterface interface {
	Standings(sheet *model.Sheet, n int) []model.Standing
	Medals(sheet *model.Sheet) map[model.PlayerID]model.Medal
	MedalFor(sheet *model.Sheet, id model.PlayerID) model.Medal
	Leader(sheet *model.Sheet) model.PlayerID
}

var _ ServiceInterface = (*Service)(nil)
