package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Sheet:
		o.printSheet(v)
	case StandingsResult:
		o.printStandings(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Scores []int  `json:"scores"`
	Total  int    `json:"total"`
	Medal  string `json:"medal,omitempty"`
}

// Standing response type
type Standing struct {
	Position int    `json:"position"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Medal    string `json:"medal,omitempty"`
}

// Sheet response type
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

// StandingsResult response type
type StandingsResult struct {
	Code      string     `json:"code"`
	Leader    *string    `json:"leader"`
	Standings []Standing `json:"standings"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
	Server string `json:"server,omitempty"`
}

// Player returns the player with the given ID, or nil
func (s Sheet) Player(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

func (o *Output) printSheet(s Sheet) {
	_, _ = fmt.Fprintf(o.w, "Sheet: %s\n", s.Code)
	_, _ = fmt.Fprintf(o.w, "State: %s\n", s.State)

	if !s.GameStarted {
		_, _ = fmt.Fprintf(o.w, "Players (%d):\n", len(s.Players))
		for _, p := range s.Players {
			_, _ = fmt.Fprintf(o.w, "  - %s (%s)\n", p.Name, p.ID)
		}
		if s.CanStart {
			_, _ = fmt.Fprintln(o.w, "Ready to start: scoresheet game start")
		}
		return
	}

	_, _ = fmt.Fprintf(o.w, "Rounds: %d\n\n", s.RoundCount)

	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	header := []string{"PLAYER", "ID"}
	for r := 1; r <= s.RoundCount; r++ {
		header = append(header, "R"+strconv.Itoa(r))
	}
	header = append(header, "TOTAL", "MEDAL")
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, p := range s.Players {
		row := []string{p.Name, p.ID}
		for r := 0; r < s.RoundCount; r++ {
			score := 0
			if r < len(p.Scores) {
				score = p.Scores[r]
			}
			row = append(row, strconv.Itoa(score))
		}
		row = append(row, strconv.Itoa(p.Total), p.Medal)
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

func (o *Output) printStandings(s StandingsResult) {
	_, _ = fmt.Fprintf(o.w, "Standings for %s:\n", s.Code)
	for _, st := range s.Standings {
		medal := ""
		if st.Medal != "" {
			medal = " [" + st.Medal + "]"
		}
		_, _ = fmt.Fprintf(o.w, "  %d. %s: %d points%s\n", st.Position, st.Name, st.Total, medal)
	}
	if s.Leader == nil {
		return
	}
	leader := *s.Leader
	for _, st := range s.Standings {
		if st.PlayerID == leader {
			leader = st.Name
		}
	}
	_, _ = fmt.Fprintf(o.w, "Leader: %s\n", leader)
}

func (o *Output) printHealthResult(h HealthResult) {
	if h.Server != "" {
		_, _ = fmt.Fprintf(o.w, "Server: %s\n", h.Server)
	}
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
