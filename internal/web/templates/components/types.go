package components

import (
	"fmt"
	"strconv"

	"github.com/mcoot/scoresheet/internal/model"
)

// SetupPlayer is one entry in the setup player list
type SetupPlayer struct {
	ID   string
	Name string
}

// SetupData is the view of a sheet still in setup
type SetupData struct {
	Players  []SetupPlayer
	CanStart bool
}

// PlayerColumn is one player's column in the score table
type PlayerColumn struct {
	ID     string
	Name   string
	Scores []int
	Total  int
	Medal  model.Medal
}

// Score returns the score for a round, or 0 if the column is short
func (c PlayerColumn) Score(round int) int {
	if round < 0 || round >= len(c.Scores) {
		return 0
	}
	return c.Scores[round]
}

// ScoreTableData is the view of a sheet in progress
type ScoreTableData struct {
	Columns []PlayerColumn
	Rounds  int
}

// ScoreFieldPrefix starts the name of every score input
const ScoreFieldPrefix = "score:"

// ScoreFieldName is the form field for a player's score in a 0-based round
func ScoreFieldName(round int, playerID string) string {
	return fmt.Sprintf("%s%d:%s", ScoreFieldPrefix, round, playerID)
}

func scoreFieldValue(score int) string {
	if score == 0 {
		return ""
	}
	return strconv.Itoa(score)
}

func roundLabel(round int) string {
	return "Round " + strconv.Itoa(round+1)
}

func removePlayerURL(id string) string {
	return "/players/" + id + "/remove"
}
