package model

import (
	"sort"
	"strings"
	"time"
)

// SheetCode is a short human-readable identifier for a score sheet
type SheetCode string

// SheetState represents the current phase of a sheet
type SheetState string

const (
	SheetStateSetup      SheetState = "setup"       // Players can be added and removed
	SheetStateInProgress SheetState = "in_progress" // Scores are being entered
)

// MinPlayers is the number of players needed to start a game
const MinPlayers = 2

// Sheet is a score sheet: the players at the table and their per-round scores.
//
// All mutating methods are total: an operation that is not valid in the
// current state, or whose input doesn't identify anything, leaves the sheet
// unchanged and reports false. None of them return errors.
type Sheet struct {
	Code      SheetCode
	State     SheetState
	Players   []Player // Insertion order, never reordered by ranking
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSheet creates an empty sheet in the setup state
func NewSheet(code SheetCode, now time.Time) *Sheet {
	return &Sheet{
		Code:      code,
		State:     SheetStateSetup,
		Players:   []Player{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GameStarted returns true once the game is in progress
func (s *Sheet) GameStarted() bool {
	return s.State == SheetStateInProgress
}

// CanStart returns true if StartGame would succeed
func (s *Sheet) CanStart() bool {
	return !s.GameStarted() && len(s.Players) >= MinPlayers
}

// Player returns the player with the given ID, or nil if not found
func (s *Sheet) Player(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// AddPlayer appends a player during setup. Blank names and duplicate IDs are ignored.
func (s *Sheet) AddPlayer(id PlayerID, name string) bool {
	name = strings.TrimSpace(name)
	if s.GameStarted() || name == "" || id == "" || s.Player(id) != nil {
		return false
	}

	s.Players = append(s.Players, Player{
		ID:     id,
		Name:   name,
		Scores: []int{},
		Total:  0,
	})
	return true
}

// RemovePlayer removes a player during setup
func (s *Sheet) RemovePlayer(id PlayerID) bool {
	if s.GameStarted() {
		return false
	}

	for i, p := range s.Players {
		if p.ID == id {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			return true
		}
	}
	return false
}

// StartGame moves to the in-progress state with a first round of zeroes
func (s *Sheet) StartGame() bool {
	if !s.CanStart() {
		return false
	}

	s.State = SheetStateInProgress
	for i := range s.Players {
		s.Players[i].Scores = []int{0}
		s.Players[i].recomputeTotal()
	}
	return true
}

// AddRound appends a zero score for every player
func (s *Sheet) AddRound() bool {
	if !s.GameStarted() {
		return false
	}

	for i := range s.Players {
		s.Players[i].Scores = append(s.Players[i].Scores, 0)
	}
	return true
}

// UpdateScore sets a player's score for a round from raw input.
// Unparseable input counts as 0.
func (s *Sheet) UpdateScore(id PlayerID, roundIndex int, raw string) bool {
	if !s.GameStarted() {
		return false
	}
	if roundIndex < 0 || roundIndex >= s.RoundCount() {
		return false
	}

	player := s.Player(id)
	if player == nil || roundIndex >= len(player.Scores) {
		return false
	}

	player.Scores[roundIndex] = ParseScore(raw)
	player.recomputeTotal()
	return true
}

// ResetGame clears all scores and returns to setup, keeping the players
func (s *Sheet) ResetGame() bool {
	for i := range s.Players {
		s.Players[i].clear()
	}
	s.State = SheetStateSetup
	return true
}

// RoundCount returns the number of rounds played so far
func (s *Sheet) RoundCount() int {
	rounds := 0
	for _, p := range s.Players {
		if len(p.Scores) > rounds {
			rounds = len(p.Scores)
		}
	}
	return rounds
}

// RankedTop returns copies of the top n players by total, highest first.
// Equal totals keep their insertion order.
func (s *Sheet) RankedTop(n int) []Player {
	if n <= 0 {
		return []Player{}
	}

	ranked := make([]Player, len(s.Players))
	copy(ranked, s.Players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Clone returns a deep copy of the sheet
func (s *Sheet) Clone() *Sheet {
	c := *s
	c.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		p.Scores = append([]int{}, p.Scores...)
		c.Players[i] = p
	}
	return &c
}
