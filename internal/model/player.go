package model

// PlayerID uniquely identifies a player within a sheet
type PlayerID string

// Player is a participant on a score sheet
type Player struct {
	ID     PlayerID
	Name   string // Trimmed, never empty
	Scores []int  // One entry per round; empty before the game starts
	Total  int    // Always the sum of Scores
}

// recomputeTotal re-derives Total from Scores
func (p *Player) recomputeTotal() {
	total := 0
	for _, s := range p.Scores {
		total += s
	}
	p.Total = total
}

// clear returns the player to the pre-game state
func (p *Player) clear() {
	p.Scores = []int{}
	p.Total = 0
}

// Score returns the score for a round, or 0 if the round doesn't exist
func (p *Player) Score(roundIndex int) int {
	if roundIndex < 0 || roundIndex >= len(p.Scores) {
		return 0
	}
	return p.Scores[roundIndex]
}
